package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontocat/graph"
	"github.com/c360studio/ontocat/vocabulary"
)

func TestRDFXMLOutput(t *testing.T) {
	out, err := RDFXML(zooGraph())
	require.NoError(t, err)
	xml := string(out)

	assert.Contains(t, xml, `<?xml version="1.0" encoding="utf-8"?>`)
	assert.Contains(t, xml, `xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`)
	assert.Contains(t, xml, `<rdf:Description rdf:about="http://example.org/zoo#Animal">`)
	assert.Contains(t, xml, `<rdf:type rdf:resource="http://www.w3.org/2002/07/owl#Class"/>`)
	assert.Contains(t, xml, `<rdfs:label xml:lang="en">Animal</rdfs:label>`)
	assert.Contains(t, xml, "</rdf:RDF>")
}

func TestRDFXMLGeneratesPrefixes(t *testing.T) {
	g := graph.New() // nothing registered
	g.Add(graph.Triple{
		Subject:   graph.IRI("http://example.org/zoo#Animal"),
		Predicate: graph.IRI("http://other.org/ns#related"),
		Object:    graph.IRI("http://example.org/zoo#Plant"),
	})

	out, err := RDFXML(g)
	require.NoError(t, err)
	xml := string(out)
	assert.Contains(t, xml, `xmlns:ns1="http://other.org/ns#"`)
	assert.Contains(t, xml, `<ns1:related rdf:resource="http://example.org/zoo#Plant"/>`)
}

func TestRDFXMLBlankNodes(t *testing.T) {
	g := graph.New()
	g.Add(graph.Triple{
		Subject:   graph.BlankNode("b0"),
		Predicate: graph.IRI(vocabulary.RDFSComment),
		Object:    graph.Literal{Value: "anonymous"},
	})
	g.Add(graph.Triple{
		Subject:   graph.IRI("http://example.org/zoo#Animal"),
		Predicate: graph.IRI(vocabulary.RDFSSubClassOf),
		Object:    graph.BlankNode("b0"),
	})

	out, err := RDFXML(g)
	require.NoError(t, err)
	xml := string(out)
	assert.Contains(t, xml, `<rdf:Description rdf:nodeID="b0">`)
	assert.Contains(t, xml, `rdf:nodeID="b0"/>`)
}

func TestRDFXMLEscapesContent(t *testing.T) {
	g := graph.New()
	g.Add(graph.Triple{
		Subject:   graph.IRI("http://example.org/zoo#Animal"),
		Predicate: graph.IRI(vocabulary.RDFSComment),
		Object:    graph.Literal{Value: "cats & <dogs>"},
	})

	out, err := RDFXML(g)
	require.NoError(t, err)
	assert.Contains(t, string(out), "cats &amp; &lt;dogs&gt;")
}

func TestRDFXMLUnusablePredicate(t *testing.T) {
	g := graph.New()
	g.Add(graph.Triple{
		Subject:   graph.IRI("http://example.org/zoo#Animal"),
		Predicate: graph.IRI("http://example.org/zoo#"),
		Object:    graph.Literal{Value: "x"},
	})

	_, err := RDFXML(g)
	require.Error(t, err)

	var serErr *SerializationError
	require.ErrorAs(t, err, &serErr)
	assert.Equal(t, FormatRDFXML, serErr.Format)
}
