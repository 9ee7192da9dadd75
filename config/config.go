// Package config provides configuration loading and management for ontocat.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfigFile is the name of the project-level config file, looked up
// in the working directory when no --config flag is given.
const ProjectConfigFile = "ontocat.yaml"

// Config represents the complete ontocat configuration.
type Config struct {
	// SourceDir contains the ontology source files.
	SourceDir string `yaml:"source_dir"`
	// DeploymentDir receives the generated artifacts.
	DeploymentDir string `yaml:"deployment_dir"`
	// Basis is the file extension (without dot) that selects source files.
	Basis string `yaml:"basis"`
	// Template is the path of the Jinja-compatible HTML catalogue template.
	Template string `yaml:"template"`
	// Watch keeps the process running and re-converts files on change.
	Watch bool `yaml:"watch"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SourceDir:     "ontology/src",
		DeploymentDir: "ontology/deployment",
		Basis:         "ttl",
		Template:      "templates/ontology.html.j2",
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source_dir is required")
	}
	if c.DeploymentDir == "" {
		return fmt.Errorf("deployment_dir is required")
	}
	if c.Basis == "" {
		return fmt.Errorf("basis is required")
	}
	if c.Template == "" {
		return fmt.Errorf("template is required")
	}
	return nil
}

// Merge overlays the non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.SourceDir != "" {
		c.SourceDir = other.SourceDir
	}
	if other.DeploymentDir != "" {
		c.DeploymentDir = other.DeploymentDir
	}
	if other.Basis != "" {
		c.Basis = other.Basis
	}
	if other.Template != "" {
		c.Template = other.Template
	}
	if other.Watch {
		c.Watch = true
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}
