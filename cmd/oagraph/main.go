// Package main provides the oagraph binary entry point.
// oagraph inspects Open Annotation records, derives their base description,
// and stores base records in NATS.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/oagraph/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "oagraph"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
}

// setup loads configuration and installs the default logger.
func (g *globals) setup(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	bootstrap := newLogger(stderr, g.logLevel, "text")

	cfg, err := config.NewLoader(bootstrap).Load(g.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}

	logger := newLogger(stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func rootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Open Annotation graph tool",
		Long: `oagraph works with Open Annotation records held as RDF statements.

It provides:
- Inspection of an annotation's identifier, motivations, body text and targets
- Derivation of the base record (the annotation without body and target subgraphs)
- JSON-LD serialization against the OA or IIIF context document
- Storage of base records in a NATS KV bucket`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		versionCmd(),
		contextsCmd(g),
		inspectCmd(g),
		baseCmd(g),
		storeCmd(g),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// newLogger builds a handler for the given level and format.
func newLogger(w io.Writer, levelName, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(levelName)}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
