// Package vocabulary provides the W3C vocabulary IRIs used by the conversion
// pipeline, together with the common prefix table that is bound to every
// loaded graph.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - SKOS: https://www.w3.org/TR/skos-reference/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
package vocabulary

import "github.com/c360studio/ontocat/graph"

// Namespace IRIs for the vocabularies the catalogue understands.
const (
	RDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	OWL     = "http://www.w3.org/2002/07/owl#"
	SKOS    = "http://www.w3.org/2004/02/skos/core#"
	DCTerms = "http://purl.org/dc/terms/"
	XSD     = "http://www.w3.org/2001/XMLSchema#"
)

// RDF terms.
const (
	// RDFType asserts the class of a resource.
	RDFType = RDF + "type"

	// RDFProperty is the generic property class.
	RDFProperty = RDF + "Property"

	// RDFLangString is the datatype of language-tagged literals.
	RDFLangString = RDF + "langString"
)

// RDF Schema terms.
const (
	// RDFSLabel provides a human-readable name for a resource.
	RDFSLabel = RDFS + "label"

	// RDFSComment provides a human-readable description.
	RDFSComment = RDFS + "comment"

	// RDFSSubClassOf relates a class to its parent class.
	RDFSSubClassOf = RDFS + "subClassOf"

	// RDFSSubPropertyOf relates a property to its parent property.
	RDFSSubPropertyOf = RDFS + "subPropertyOf"

	// RDFSDomain states the class of a property's subjects.
	RDFSDomain = RDFS + "domain"

	// RDFSRange states the class of a property's values.
	RDFSRange = RDFS + "range"
)

// OWL terms.
const (
	// OWLOntology marks the top-level ontology declaration.
	OWLOntology = OWL + "Ontology"

	// OWLClass marks a class declaration.
	OWLClass = OWL + "Class"

	// OWLObjectProperty marks a property whose values are resources.
	OWLObjectProperty = OWL + "ObjectProperty"

	// OWLDatatypeProperty marks a property whose values are literals.
	OWLDatatypeProperty = OWL + "DatatypeProperty"

	// OWLInverseOf relates a property to its inverse.
	OWLInverseOf = OWL + "inverseOf"
)

// SKOS terms.
const (
	// SKOSDefinition provides a formal definition of a concept.
	SKOSDefinition = SKOS + "definition"

	// SKOSExample provides a usage example for a concept.
	SKOSExample = SKOS + "example"
)

// Dublin Core terms.
const (
	// DCTitle provides the name given to the resource.
	DCTitle = DCTerms + "title"

	// DCDescription provides an account of the resource.
	DCDescription = DCTerms + "description"
)

// XSD datatypes.
const (
	// XSDString is the default datatype of plain literals.
	XSDString = XSD + "string"
)

// CommonBindings returns the prefix table registered on every graph after
// parsing. Source-declared prefixes always win over these.
func CommonBindings() []graph.Binding {
	return []graph.Binding{
		{Prefix: "rdf", Namespace: RDF},
		{Prefix: "rdfs", Namespace: RDFS},
		{Prefix: "owl", Namespace: OWL},
		{Prefix: "skos", Namespace: SKOS},
		{Prefix: "dcterms", Namespace: DCTerms},
	}
}
