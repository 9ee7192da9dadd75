package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/c360studio/ontocat/catalog"
	"github.com/c360studio/ontocat/config"
	"github.com/c360studio/ontocat/export"
	"github.com/c360studio/ontocat/ingest"
	"github.com/c360studio/ontocat/render"
)

// Pipeline converts ontology source files into deployment artifacts.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a pipeline for cfg. A nil logger falls back to slog.Default.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// basis returns the configured basis extension without a leading dot,
// lowercased.
func (p *Pipeline) basis() string {
	return strings.ToLower(strings.TrimPrefix(p.cfg.Basis, "."))
}

// Run converts every discovered source file in order. The first failing
// file aborts the run; ErrNoInputFiles is returned when nothing under the
// source root matches the basis.
func (p *Pipeline) Run() error {
	basis := p.basis()
	files, err := Discover(p.cfg.SourceDir, basis)
	if err != nil {
		return err
	}

	p.logger.Info("converting ontologies",
		"count", len(files),
		"source", p.cfg.SourceDir,
		"basis", "."+basis)

	for _, rel := range files {
		if err := p.Convert(rel); err != nil {
			return fmt.Errorf("convert %s: %w", rel, err)
		}
	}

	p.logger.Info("conversion complete", "deployment", p.cfg.DeploymentDir)
	return nil
}

// Convert runs one source file, given relative to the source root, through
// load, serialize, extract and render. Artifacts land under the deployment
// root in the file's relative directory.
func (p *Pipeline) Convert(rel string) error {
	p.logger.Info("converting", "file", rel)

	g, err := ingest.Load(filepath.Join(p.cfg.SourceDir, rel))
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	destDir := filepath.Join(p.cfg.DeploymentDir, filepath.Dir(rel))

	artifacts, err := export.WriteAll(g, destDir, base)
	if err != nil {
		return err
	}
	for _, a := range artifacts {
		p.logger.Info("wrote artifact", "format", string(a.Format), "path", a.Path)
	}

	data := render.Data{
		Ontology:   catalog.Ontology(g),
		Classes:    catalog.Classes(g),
		Properties: catalog.Properties(g),
		Prefixes:   catalog.UsedPrefixes(g),
		BaseName:   base,
		SourcePath: rel,
	}
	htmlPath := filepath.Join(destDir, base+".html")
	if err := render.HTML(p.cfg.Template, data, htmlPath); err != nil {
		return err
	}
	p.logger.Info("wrote artifact", "format", "html", "path", htmlPath)

	return nil
}
