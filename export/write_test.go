package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontocat/export"
	"github.com/c360studio/ontocat/graph"
	"github.com/c360studio/ontocat/ingest"
	"github.com/c360studio/ontocat/vocabulary"
)

func classGraph() *graph.Graph {
	g := graph.New()
	g.Namespaces().Bind("ex", "http://example.org/zoo#")
	g.Namespaces().Bind("owl", vocabulary.OWL)
	g.Namespaces().Bind("rdfs", vocabulary.RDFS)
	g.Add(graph.Triple{
		Subject:   graph.IRI("http://example.org/zoo#Animal"),
		Predicate: graph.IRI(vocabulary.RDFType),
		Object:    graph.IRI(vocabulary.OWLClass),
	})
	g.Add(graph.Triple{
		Subject:   graph.IRI("http://example.org/zoo#Animal"),
		Predicate: graph.IRI(vocabulary.RDFSLabel),
		Object:    graph.Literal{Value: "Animal", Lang: "en"},
	})
	return g
}

func TestWriteAll(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "deployment", "core")

	artifacts, err := export.WriteAll(classGraph(), destDir, "zoo")
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	assert.Equal(t, export.FormatTurtle, artifacts[0].Format)
	assert.Equal(t, filepath.Join(destDir, "zoo.ttl"), artifacts[0].Path)
	assert.Equal(t, filepath.Join(destDir, "zoo.jsonld"), artifacts[1].Path)
	assert.Equal(t, filepath.Join(destDir, "zoo.owl"), artifacts[2].Path)

	for _, a := range artifacts {
		info, err := os.Stat(a.Path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

// The Turtle output must parse back to the same triples.
func TestTurtleRoundTrip(t *testing.T) {
	g := classGraph()

	data, err := export.Turtle(g)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "zoo.ttl")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	parsed, err := ingest.Load(path)
	require.NoError(t, err)

	require.Equal(t, g.Len(), parsed.Len())
	for _, tr := range g.Triples() {
		assert.True(t, parsed.Has(tr.Subject, tr.Predicate, tr.Object), "missing triple %v", tr)
	}

	ns, ok := parsed.Namespaces().Lookup("ex")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/zoo#", ns)
}

// The RDF/XML output must parse back to the same triples.
func TestRDFXMLRoundTrip(t *testing.T) {
	g := classGraph()

	data, err := export.RDFXML(g)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "zoo.owl")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	parsed, err := ingest.Load(path)
	require.NoError(t, err)

	require.Equal(t, g.Len(), parsed.Len())
	for _, tr := range g.Triples() {
		assert.True(t, parsed.Has(tr.Subject, tr.Predicate, tr.Object), "missing triple %v", tr)
	}
}
