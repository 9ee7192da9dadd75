package export

import (
	"bytes"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"

	"github.com/c360studio/ontocat/graph"
)

// JSONLD serializes the graph as JSON-LD through the quad jsonld writer.
// Output ordering follows the writer and is not guaranteed to be
// byte-stable across runs.
func JSONLD(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	w := jsonld.NewWriter(&buf)

	for _, t := range g.Triples() {
		q := quad.Quad{
			Subject:   toQuadValue(t.Subject),
			Predicate: quad.IRI(t.Predicate),
			Object:    toQuadValue(t.Object),
		}
		if err := w.WriteQuad(q); err != nil {
			_ = w.Close()
			return nil, &SerializationError{Format: FormatJSONLD, Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &SerializationError{Format: FormatJSONLD, Err: err}
	}
	return buf.Bytes(), nil
}

// toQuadValue converts a graph term into a quad value.
func toQuadValue(t graph.Term) quad.Value {
	switch v := t.(type) {
	case graph.IRI:
		return quad.IRI(string(v))
	case graph.BlankNode:
		return quad.BNode(string(v))
	case graph.Literal:
		if v.Lang != "" {
			return quad.LangString{Value: quad.String(v.Value), Lang: v.Lang}
		}
		if v.Datatype != "" {
			return quad.TypedString{Value: quad.String(v.Value), Type: quad.IRI(v.Datatype)}
		}
		return quad.String(v.Value)
	default:
		return quad.String(t.String())
	}
}
