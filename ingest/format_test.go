package ingest

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"ontology/src/core.ttl", FormatTurtle},
		{"core.jsonld", FormatJSONLD},
		{"core.json", FormatJSONLD},
		{"core.owl", FormatRDFXML},
		{"core.rdf", FormatRDFXML},
		{"core.xml", FormatRDFXML},
		{"CORE.TTL", FormatTurtle}, // extension match is case-insensitive
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if err != nil {
				t.Fatalf("DetectFormat(%s) failed: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%s) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetectFormatUnsupported(t *testing.T) {
	for _, path := range []string{"notes.txt", "core.n3", "core"} {
		if _, err := DetectFormat(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("DetectFormat(%s) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}
