// Package graph provides the in-memory triple graph used by the conversion
// pipeline: terms, triples, a subject/predicate index, and an ordered
// namespace-prefix table with compact-name resolution.
package graph

// Term is a node of an RDF graph: an IRI, a blank node, or a literal.
type Term interface {
	// String returns the lexical form of the term: the IRI text, the blank
	// node identifier, or the literal value.
	String() string

	// key returns a form that is unique across term kinds, used by the
	// graph index.
	key() string
}

// IRI identifies a resource.
type IRI string

func (i IRI) String() string { return string(i) }

func (i IRI) key() string { return "i\x00" + string(i) }

// BlankNode is an anonymous node scoped to a single document.
type BlankNode string

func (b BlankNode) String() string { return string(b) }

func (b BlankNode) key() string { return "b\x00" + string(b) }

// Literal is a scalar value, optionally tagged with a language code or a
// datatype IRI.
type Literal struct {
	Value    string
	Lang     string
	Datatype IRI
}

func (l Literal) String() string { return l.Value }

func (l Literal) key() string {
	return "l\x00" + l.Lang + "\x00" + string(l.Datatype) + "\x00" + l.Value
}

// Triple is one (subject, predicate, object) statement. Subjects are IRIs or
// blank nodes; objects may additionally be literals.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}
