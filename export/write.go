package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/c360studio/ontocat/graph"
)

// Artifact is one written serialization output.
type Artifact struct {
	Format Format
	Path   string
}

// WriteAll serializes the graph in every supported format and writes
// <base>.ttl, <base>.jsonld and <base>.owl under destDir, creating the
// directory tree if absent. Artifacts are returned in the order written.
func WriteAll(g *graph.Graph, destDir, base string) ([]Artifact, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", destDir, err)
	}

	encoders := []struct {
		format Format
		encode func(*graph.Graph) ([]byte, error)
	}{
		{FormatTurtle, Turtle},
		{FormatJSONLD, JSONLD},
		{FormatRDFXML, RDFXML},
	}

	artifacts := make([]Artifact, 0, len(encoders))
	for _, enc := range encoders {
		data, err := enc.encode(g)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(destDir, base+enc.format.Ext())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		artifacts = append(artifacts, Artifact{Format: enc.format, Path: path})
	}
	return artifacts, nil
}
