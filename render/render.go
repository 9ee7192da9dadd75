// Package render produces the human-readable HTML catalogue of an ontology
// through a Jinja-compatible template.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"

	"github.com/c360studio/ontocat/catalog"
)

// TemplateError reports a missing template file or a rendering failure.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Data carries the named values handed to the catalogue template.
type Data struct {
	Ontology   catalog.Header
	Classes    []catalog.Class
	Properties []catalog.Property
	Prefixes   []catalog.Prefix
	BaseName   string
	SourcePath string
}

// HTML renders the template at templatePath with data and writes the result
// to outPath, creating parent directories as needed.
func HTML(templatePath string, data Data, outPath string) error {
	if _, err := os.Stat(templatePath); err != nil {
		return &TemplateError{Template: templatePath, Err: err}
	}

	tpl, err := pongo2.FromFile(templatePath)
	if err != nil {
		return &TemplateError{Template: templatePath, Err: err}
	}

	out, err := tpl.ExecuteBytes(pongo2.Context{
		"ontology":    data.Ontology,
		"classes":     data.Classes,
		"properties":  data.Properties,
		"prefixes":    data.Prefixes,
		"base_name":   data.BaseName,
		"source_path": data.SourcePath,
	})
	if err != nil {
		return &TemplateError{Template: templatePath, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(outPath), err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
