package ingest

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/ontocat/graph"
)

// The triple decoders do not surface the prefix declarations of the source
// document, so they are scanned out of the raw bytes before parsing. A graph
// keeps source prefixes over the common set (first registration wins).

// turtlePrefixRe matches Turtle "@prefix p: <iri> ." and SPARQL-style
// "PREFIX p: <iri>" directives, including the empty prefix.
var turtlePrefixRe = regexp.MustCompile(`(?mi)^\s*@?prefix\s+([^:\s<>]*):\s*<([^>]+)>`)

// ScanPrefixes extracts the prefix declarations of a source document. The
// result preserves declaration order; unusable declarations are skipped.
func ScanPrefixes(data []byte, format Format) []graph.Binding {
	switch format {
	case FormatTurtle:
		return scanTurtlePrefixes(data)
	case FormatRDFXML:
		return scanXMLPrefixes(data)
	case FormatJSONLD:
		return scanJSONLDPrefixes(data)
	default:
		return nil
	}
}

func scanTurtlePrefixes(data []byte) []graph.Binding {
	var bindings []graph.Binding
	for _, m := range turtlePrefixRe.FindAllSubmatch(data, -1) {
		bindings = append(bindings, graph.Binding{
			Prefix:    string(m[1]),
			Namespace: string(m[2]),
		})
	}
	return bindings
}

// scanXMLPrefixes collects the xmlns declarations of the document's root
// element.
func scanXMLPrefixes(data []byte) []graph.Binding {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		var bindings []graph.Binding
		for _, attr := range start.Attr {
			switch {
			case attr.Name.Space == "xmlns":
				bindings = append(bindings, graph.Binding{
					Prefix:    attr.Name.Local,
					Namespace: attr.Value,
				})
			case attr.Name.Space == "" && attr.Name.Local == "xmlns":
				bindings = append(bindings, graph.Binding{Namespace: attr.Value})
			}
		}
		return bindings
	}
}

// scanJSONLDPrefixes collects the string-valued entries of a top-level
// @context object.
func scanJSONLDPrefixes(data []byte) []graph.Binding {
	var doc struct {
		Context map[string]json.RawMessage `json:"@context"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	keys := make([]string, 0, len(doc.Context))
	for key := range doc.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var bindings []graph.Binding
	for _, key := range keys {
		if strings.HasPrefix(key, "@") {
			continue
		}
		var ns string
		if err := json.Unmarshal(doc.Context[key], &ns); err != nil {
			continue
		}
		if strings.HasSuffix(ns, "#") || strings.HasSuffix(ns, "/") {
			bindings = append(bindings, graph.Binding{Prefix: key, Namespace: ns})
		}
	}
	return bindings
}
