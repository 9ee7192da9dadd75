package ingest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anglo-korean/rdf"
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"

	"github.com/c360studio/ontocat/graph"
	"github.com/c360studio/ontocat/vocabulary"
)

// Load reads the ontology source file at path into a graph. The format is
// detected from the file extension; see DetectFormat. Decoder failures are
// reported as *ParseError.
func Load(path string) (*graph.Graph, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	g := graph.New()

	// Source-declared prefixes are bound first so they win over the
	// common set.
	for _, b := range ScanPrefixes(data, format) {
		g.Namespaces().Bind(b.Prefix, b.Namespace)
	}

	switch format {
	case FormatJSONLD:
		err = decodeJSONLD(g, data)
	default:
		err = decodeTriples(g, data, format)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	for _, b := range vocabulary.CommonBindings() {
		g.Namespaces().Bind(b.Prefix, b.Namespace)
	}
	bindDefaultPrefix(g)

	return g, nil
}

// decodeTriples parses Turtle or RDF/XML input with the rdf triple decoder.
func decodeTriples(g *graph.Graph, data []byte, format Format) error {
	var rdfFormat rdf.Format
	switch format {
	case FormatTurtle:
		rdfFormat = rdf.Turtle
	case FormatRDFXML:
		rdfFormat = rdf.RDFXML
	default:
		return fmt.Errorf("no triple decoder for format %s", format)
	}

	dec := rdf.NewTripleDecoder(bytes.NewReader(data), rdfFormat)
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		subject := fromRDFTerm(t.Subj)
		predicate, ok := fromRDFTerm(t.Pred).(graph.IRI)
		if !ok {
			continue
		}
		g.Add(graph.Triple{
			Subject:   subject,
			Predicate: predicate,
			Object:    fromRDFTerm(t.Obj),
		})
	}
}

// fromRDFTerm converts an rdf library term into a graph term.
func fromRDFTerm(t rdf.Term) graph.Term {
	switch v := t.(type) {
	case rdf.IRI:
		return graph.IRI(v.String())
	case rdf.Blank:
		return graph.BlankNode(strings.TrimPrefix(v.String(), "_:"))
	case rdf.Literal:
		lit := graph.Literal{Value: v.String(), Lang: v.Lang()}
		if dt := v.DataType.String(); dt != "" && dt != vocabulary.XSDString && dt != vocabulary.RDFLangString {
			lit.Datatype = graph.IRI(dt)
		}
		return lit
	default:
		return graph.Literal{Value: t.String()}
	}
}

// decodeJSONLD parses JSON-LD input with the quad jsonld reader.
func decodeJSONLD(g *graph.Graph, data []byte) error {
	r := jsonld.NewReader(bytes.NewReader(data))
	for {
		q, err := r.ReadQuad()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		predicate, ok := fromQuadValue(q.Predicate).(graph.IRI)
		if !ok {
			continue
		}
		g.Add(graph.Triple{
			Subject:   fromQuadValue(q.Subject),
			Predicate: predicate,
			Object:    fromQuadValue(q.Object),
		})
	}
}

// fromQuadValue converts a quad value into a graph term.
func fromQuadValue(v quad.Value) graph.Term {
	switch value := v.(type) {
	case quad.IRI:
		return graph.IRI(string(value))
	case quad.BNode:
		return graph.BlankNode(string(value))
	case quad.LangString:
		return graph.Literal{Value: string(value.Value), Lang: value.Lang}
	case quad.TypedString:
		lit := graph.Literal{Value: string(value.Value)}
		if dt := string(value.Type); dt != vocabulary.XSDString {
			lit.Datatype = graph.IRI(dt)
		}
		return lit
	case quad.String:
		return graph.Literal{Value: string(value)}
	default:
		return graph.Literal{Value: fmt.Sprint(value.Native())}
	}
}

// bindDefaultPrefix derives the default (empty-prefix) namespace from the
// graph's ontology IRI, appending "#" unless the IRI already ends in "#" or
// "/". An existing default binding is kept.
func bindDefaultPrefix(g *graph.Graph) {
	subjects := g.Subjects(graph.IRI(vocabulary.RDFType), graph.IRI(vocabulary.OWLOntology))
	if len(subjects) == 0 {
		return
	}
	iri, ok := subjects[0].(graph.IRI)
	if !ok {
		return
	}
	ns := string(iri)
	if !strings.HasSuffix(ns, "#") && !strings.HasSuffix(ns, "/") {
		ns += "#"
	}
	g.Namespaces().Bind("", ns)
}
