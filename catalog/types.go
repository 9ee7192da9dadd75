// Package catalog derives the read-only catalogue views of a parsed
// ontology graph: the ontology header, class and property descriptors, and
// the table of namespace prefixes the graph actually uses.
package catalog

// Header summarizes the top-level ontology declaration of a graph. Empty
// fields mean the graph does not provide the value.
type Header struct {
	IRI         string
	Title       string
	Description string
}

// Class describes one owl:Class subject.
type Class struct {
	IRI         string
	QName       string
	Label       string
	Definitions []string
	Comments    []string
	Examples    []string
	SubClassOf  []string
}

// PropertyKind tags how a property relates subjects to values.
type PropertyKind string

const (
	// KindObjectProperty marks a property whose values are resources.
	KindObjectProperty PropertyKind = "ObjectProperty"

	// KindDatatypeProperty marks a property whose values are literals.
	KindDatatypeProperty PropertyKind = "DatatypeProperty"

	// KindProperty marks a generic rdf:Property.
	KindProperty PropertyKind = "Property"
)

// Property describes one property subject. Domain, Range, SubPropertyOf and
// Inverses hold compact names.
type Property struct {
	IRI           string
	QName         string
	Label         string
	Kind          PropertyKind
	Comments      []string
	Domain        []string
	Range         []string
	SubPropertyOf []string
	Inverses      []string
}

// Prefix is one namespace table row of the catalogue. The empty default
// prefix is rendered as a literal colon.
type Prefix struct {
	Prefix    string
	Namespace string
}
