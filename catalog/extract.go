package catalog

import (
	"sort"
	"strings"

	"github.com/c360studio/ontocat/graph"
	"github.com/c360studio/ontocat/vocabulary"
)

// preferredLang is the language tag preferred when selecting display
// literals.
const preferredLang = "en"

// Ontology extracts the graph's ontology header. When a graph declares more
// than one owl:Ontology subject the first in insertion order is used.
func Ontology(g *graph.Graph) Header {
	subjects := g.Subjects(graph.IRI(vocabulary.RDFType), graph.IRI(vocabulary.OWLOntology))
	if len(subjects) == 0 {
		return Header{}
	}
	ont := subjects[0]

	var header Header
	if iri, ok := ont.(graph.IRI); ok {
		header.IRI = string(iri)
	}
	if title, ok := preferLang(g.Literals(ont, graph.IRI(vocabulary.DCTitle))); ok {
		header.Title = title.Value
	}
	if desc, ok := preferLang(g.Literals(ont, graph.IRI(vocabulary.DCDescription))); ok {
		header.Description = desc.Value
	}
	return header
}

// Classes extracts one descriptor per owl:Class subject, sorted by
// (lowercased label, qname). The ordering is stable across runs; the
// rendered catalogue relies on it.
func Classes(g *graph.Graph) []Class {
	ns := g.Namespaces()
	subjects := g.Subjects(graph.IRI(vocabulary.RDFType), graph.IRI(vocabulary.OWLClass))

	classes := make([]Class, 0, len(subjects))
	for _, s := range subjects {
		qname := compactTerm(ns, s)
		classes = append(classes, Class{
			IRI:         s.String(),
			QName:       qname,
			Label:       displayLabel(g, s, qname),
			Definitions: literalValues(g.Literals(s, graph.IRI(vocabulary.SKOSDefinition))),
			Comments:    literalValues(g.Literals(s, graph.IRI(vocabulary.RDFSComment))),
			Examples:    literalValues(g.Literals(s, graph.IRI(vocabulary.SKOSExample))),
			SubClassOf:  compactIRIs(ns, g.IRIObjects(s, graph.IRI(vocabulary.RDFSSubClassOf))),
		})
	}

	sort.SliceStable(classes, func(i, j int) bool {
		li, lj := strings.ToLower(classes[i].Label), strings.ToLower(classes[j].Label)
		if li != lj {
			return li < lj
		}
		return classes[i].QName < classes[j].QName
	})
	return classes
}

// Properties extracts one descriptor per subject asserted as an object,
// datatype, or generic property. A subject carrying several kind assertions
// is classified by the first match in the order ObjectProperty,
// DatatypeProperty, Property. Inverse relations are symmetric: an
// owl:inverseOf assertion in either direction appears in both descriptors.
func Properties(g *graph.Graph) []Property {
	ns := g.Namespaces()
	rdfType := graph.IRI(vocabulary.RDFType)

	var subjects []graph.Term
	seen := make(map[string]bool)
	for _, class := range []string{
		vocabulary.OWLObjectProperty,
		vocabulary.OWLDatatypeProperty,
		vocabulary.RDFProperty,
	} {
		for _, s := range g.Subjects(rdfType, graph.IRI(class)) {
			if seen[s.String()] {
				continue
			}
			seen[s.String()] = true
			subjects = append(subjects, s)
		}
	}

	properties := make([]Property, 0, len(subjects))
	for _, s := range subjects {
		qname := compactTerm(ns, s)
		properties = append(properties, Property{
			IRI:           s.String(),
			QName:         qname,
			Label:         displayLabel(g, s, qname),
			Kind:          propertyKind(g, s),
			Comments:      literalValues(g.Literals(s, graph.IRI(vocabulary.RDFSComment))),
			Domain:        compactIRIs(ns, g.IRIObjects(s, graph.IRI(vocabulary.RDFSDomain))),
			Range:         compactIRIs(ns, g.IRIObjects(s, graph.IRI(vocabulary.RDFSRange))),
			SubPropertyOf: compactIRIs(ns, g.IRIObjects(s, graph.IRI(vocabulary.RDFSSubPropertyOf))),
			Inverses:      inverses(g, s),
		})
	}

	sort.SliceStable(properties, func(i, j int) bool {
		li, lj := strings.ToLower(properties[i].Label), strings.ToLower(properties[j].Label)
		if li != lj {
			return li < lj
		}
		return properties[i].QName < properties[j].QName
	})
	return properties
}

// propertyKind resolves the kind tag of a property subject.
func propertyKind(g *graph.Graph, s graph.Term) PropertyKind {
	rdfType := graph.IRI(vocabulary.RDFType)
	if g.Has(s, rdfType, graph.IRI(vocabulary.OWLObjectProperty)) {
		return KindObjectProperty
	}
	if g.Has(s, rdfType, graph.IRI(vocabulary.OWLDatatypeProperty)) {
		return KindDatatypeProperty
	}
	return KindProperty
}

// inverses collects the compact names of a property's inverses from
// owl:inverseOf assertions in both directions, deduplicated and sorted.
func inverses(g *graph.Graph, s graph.Term) []string {
	inverseOf := graph.IRI(vocabulary.OWLInverseOf)
	ns := g.Namespaces()

	seen := make(map[graph.IRI]bool)
	var names []string
	add := func(iri graph.IRI) {
		if seen[iri] {
			return
		}
		seen[iri] = true
		names = append(names, ns.Compact(iri))
	}

	for _, o := range g.IRIObjects(s, inverseOf) {
		add(o)
	}
	for _, subj := range g.Subjects(inverseOf, s) {
		if iri, ok := subj.(graph.IRI); ok {
			add(iri)
		}
	}

	sort.Strings(names)
	return names
}

// displayLabel selects the display label of a subject: the
// language-preferred rdfs:label, falling back to the compact name.
func displayLabel(g *graph.Graph, s graph.Term, qname string) string {
	if label, ok := preferLang(g.Literals(s, graph.IRI(vocabulary.RDFSLabel))); ok {
		return label.Value
	}
	return qname
}

// preferLang selects a literal from values, preferring the preferred
// language tag and falling back to the first-encountered literal.
func preferLang(values []graph.Literal) (graph.Literal, bool) {
	if len(values) == 0 {
		return graph.Literal{}, false
	}
	for _, v := range values {
		if v.Lang == preferredLang {
			return v, true
		}
	}
	return values[0], true
}

func literalValues(values []graph.Literal) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Value)
	}
	return out
}

func compactIRIs(ns *graph.Namespaces, iris []graph.IRI) []string {
	out := make([]string, 0, len(iris))
	for _, iri := range iris {
		out = append(out, ns.Compact(iri))
	}
	return out
}

// compactTerm returns the compact name of a subject term. Blank nodes keep
// their identifier.
func compactTerm(ns *graph.Namespaces, t graph.Term) string {
	if iri, ok := t.(graph.IRI); ok {
		return ns.Compact(iri)
	}
	return t.String()
}
