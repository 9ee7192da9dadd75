package graph

// Graph is an in-memory collection of triples plus a namespace-prefix table.
// Triples are kept in insertion order; the graph is append-only.
type Graph struct {
	triples []Triple
	spIndex map[spKey][]int
	ns      *Namespaces
}

type spKey struct {
	subject   string
	predicate IRI
}

// New returns an empty graph with an empty prefix table.
func New() *Graph {
	return &Graph{
		spIndex: make(map[spKey][]int),
		ns:      NewNamespaces(),
	}
}

// Add appends a triple. Duplicate triples are kept; callers that need set
// semantics should check Has first.
func (g *Graph) Add(t Triple) {
	key := spKey{subject: t.Subject.key(), predicate: t.Predicate}
	g.spIndex[key] = append(g.spIndex[key], len(g.triples))
	g.triples = append(g.triples, t)
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the triples in insertion order. The returned slice is
// shared with the graph and must not be modified.
func (g *Graph) Triples() []Triple { return g.triples }

// Namespaces returns the graph's prefix table.
func (g *Graph) Namespaces() *Namespaces { return g.ns }

// Objects returns all objects of triples with the given subject and
// predicate, in insertion order.
func (g *Graph) Objects(subject Term, predicate IRI) []Term {
	indices := g.spIndex[spKey{subject: subject.key(), predicate: predicate}]
	objects := make([]Term, 0, len(indices))
	for _, i := range indices {
		objects = append(objects, g.triples[i].Object)
	}
	return objects
}

// Literals returns the literal objects of triples with the given subject and
// predicate, in insertion order. Non-literal objects are skipped.
func (g *Graph) Literals(subject Term, predicate IRI) []Literal {
	var literals []Literal
	for _, o := range g.Objects(subject, predicate) {
		if lit, ok := o.(Literal); ok {
			literals = append(literals, lit)
		}
	}
	return literals
}

// IRIObjects returns the IRI objects of triples with the given subject and
// predicate, in insertion order. Blank nodes and literals are skipped.
func (g *Graph) IRIObjects(subject Term, predicate IRI) []IRI {
	var iris []IRI
	for _, o := range g.Objects(subject, predicate) {
		if iri, ok := o.(IRI); ok {
			iris = append(iris, iri)
		}
	}
	return iris
}

// Subjects returns the distinct subjects of triples with the given predicate
// and object, in first-occurrence order.
func (g *Graph) Subjects(predicate IRI, object Term) []Term {
	var subjects []Term
	seen := make(map[string]bool)
	objectKey := object.key()
	for _, t := range g.triples {
		if t.Predicate != predicate || t.Object.key() != objectKey {
			continue
		}
		key := t.Subject.key()
		if seen[key] {
			continue
		}
		seen[key] = true
		subjects = append(subjects, t.Subject)
	}
	return subjects
}

// Has reports whether the graph contains the given triple.
func (g *Graph) Has(subject Term, predicate IRI, object Term) bool {
	objectKey := object.key()
	for _, i := range g.spIndex[spKey{subject: subject.key(), predicate: predicate}] {
		if g.triples[i].Object.key() == objectKey {
			return true
		}
	}
	return false
}

// UsedBindings returns the registered bindings whose namespace compacts at
// least one IRI term of the graph, in registration order.
func (g *Graph) UsedBindings() []Binding {
	used := make(map[string]bool)
	mark := func(t Term) {
		iri, ok := t.(IRI)
		if !ok {
			return
		}
		if q, ok := g.ns.QName(iri); ok {
			prefix, _, _ := cutQName(q)
			used[prefix] = true
		}
	}
	for _, t := range g.triples {
		mark(t.Subject)
		mark(IRI(t.Predicate))
		mark(t.Object)
		if lit, ok := t.Object.(Literal); ok && lit.Datatype != "" {
			mark(lit.Datatype)
		}
	}

	var bindings []Binding
	for _, b := range g.ns.Bindings() {
		if used[b.Prefix] {
			bindings = append(bindings, b)
		}
	}
	return bindings
}
