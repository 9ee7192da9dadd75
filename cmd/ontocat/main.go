// Package main provides the ontocat binary entry point.
// Ontocat converts ontology source files into deployment artifacts: Turtle,
// JSON-LD and RDF/XML serializations plus a human-readable HTML catalogue.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontocat/config"
	"github.com/c360studio/ontocat/pipeline"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontocat"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, pipeline.ErrNoInputFiles) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		flagCfg    config.Config
	)

	cmd := &cobra.Command{
		Use:   "ontocat",
		Short: "Ontology conversion and catalogue tool",
		Long: `Ontocat scans a source directory for ontology files matching the basis
extension, parses each one into a triple graph, and writes Turtle, JSON-LD
and RDF/XML serializations plus an HTML catalogue into the deployment
directory, mirroring the source directory structure.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, logLevel, &flagCfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&flagCfg.SourceDir, "source-dir", "", "Directory containing ontology source files")
	cmd.Flags().StringVar(&flagCfg.DeploymentDir, "deployment-dir", "", "Directory to write generated artifacts")
	cmd.Flags().StringVar(&flagCfg.Basis, "basis", "", "File extension (without dot) that selects source files")
	cmd.Flags().StringVar(&flagCfg.Template, "template", "", "HTML catalogue template path")
	cmd.Flags().BoolVar(&flagCfg.Watch, "watch", false, "Keep running and re-convert files on change")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(cmd *cobra.Command, configPath, logLevel string, flagCfg *config.Config) error {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.DefaultConfig()
	switch {
	case configPath != "":
		fileCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.Merge(fileCfg)
	default:
		// The project config file is optional.
		if fileCfg, err := config.LoadFromFile(config.ProjectConfigFile); err == nil {
			logger.Debug("loaded project config", "path", config.ProjectConfigFile)
			cfg.Merge(fileCfg)
		}
	}
	cfg.Merge(flagCfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	p := pipeline.New(cfg, logger)

	if cfg.Watch {
		// Convert everything once, then keep watching. An empty source
		// tree is fine in watch mode.
		if err := p.Run(); err != nil && !errors.Is(err, pipeline.ErrNoInputFiles) {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return p.Watch(ctx)
	}

	return p.Run()
}
