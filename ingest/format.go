// Package ingest loads ontology source files into triple graphs. The
// serialization format is determined strictly from the file extension;
// after parsing, the common vocabulary prefixes and a default prefix derived
// from the ontology IRI are bound without overwriting source-declared ones.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported input serialization.
type Format string

const (
	// FormatTurtle parses Terse RDF Triple Language input.
	FormatTurtle Format = "turtle"

	// FormatJSONLD parses JSON-LD input.
	FormatJSONLD Format = "json-ld"

	// FormatRDFXML parses RDF/XML input.
	FormatRDFXML Format = "rdf-xml"
)

// formatByExt maps filename extensions to parse formats.
var formatByExt = map[string]Format{
	".ttl":    FormatTurtle,
	".jsonld": FormatJSONLD,
	".json":   FormatJSONLD,
	".owl":    FormatRDFXML,
	".rdf":    FormatRDFXML,
	".xml":    FormatRDFXML,
}

// DetectFormat determines the parse format for path from its extension.
// It returns ErrUnsupportedFormat for extensions outside the fixed mapping.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formatByExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, ext, path)
	}
	return format, nil
}
