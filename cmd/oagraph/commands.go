package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/c360studio/oagraph/annotation"
	"github.com/c360studio/oagraph/config"
	"github.com/c360studio/oagraph/export"
	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/storage"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

func contextsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "List the configured JSON-LD context documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return printContexts(cmd.OutOrStdout(), cfg)
		},
	}
}

func printContexts(w io.Writer, cfg *config.Config) error {
	names := []string{config.ContextOA, config.ContextIIIF}
	sort.Strings(names)
	for _, name := range names {
		url, err := cfg.ContextURL(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == cfg.Contexts.Default {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-5s %s\n", marker, name, url)
	}
	return nil
}

// Summary is the inspect output for one annotation.
type Summary struct {
	ID          string   `json:"id,omitempty"`
	HasID       bool     `json:"has_id"`
	Motivations []string `json:"motivations"`
	BodyChars   []string `json:"body_chars"`
	Bodies      []string `json:"bodies"`
	Targets     []string `json:"targets"`
	AnnotatedAt string   `json:"annotated_at,omitempty"`
	Statements  int      `json:"statements"`
}

// Summarize runs the annotation queries against g.
func Summarize(g *annotation.Graph) Summary {
	s := Summary{
		Motivations: g.MotivatedBy(),
		BodyChars:   g.BodyChars(),
		Bodies:      g.PredicateURLs(oa.HasBody),
		Targets:     g.PredicateURLs(oa.HasTarget),
		Statements:  g.Store().Size(),
	}
	s.ID, s.HasID = g.IDAsURL()
	s.AnnotatedAt, _ = g.AnnotatedAt()
	return s
}

func inspectCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <record.json>",
		Short: "Summarize an annotation record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := loadRecordFile(args[0])
			if err != nil {
				return err
			}

			summary := Summarize(newAnnotationGraph(store, cfg, logger))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}

func baseCmd(g *globals) *cobra.Command {
	var (
		contextName string
		formatName  string
	)

	cmd := &cobra.Command{
		Use:   "base <record.json>",
		Short: "Print the base record of an annotation",
		Long: `Removes the body and target subgraphs of an annotation, gives a blank
annotation root the null relative IRI, and prints what remains.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			store, err := loadRecordFile(args[0])
			if err != nil {
				return err
			}

			ag := newAnnotationGraph(store, cfg, logger)
			if err := BaseRecord(ag); err != nil {
				return err
			}

			out, err := render(ag, cfg, format, contextName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&contextName, "context", "", "JSON-LD context (oa, iiif; default from config)")
	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.FormatJSONLD), "Output format (jsonld, turtle, ntriples)")

	return cmd
}

func storeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "store <record.json>",
		Short: "Store the base record of an annotation in NATS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := loadRecordFile(args[0])
			if err != nil {
				return err
			}

			ag := newAnnotationGraph(store, cfg, logger)
			if err := BaseRecord(ag); err != nil {
				return err
			}

			ctx := cmd.Context()
			app, err := NewApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close(ctx)

			id, err := app.Store(ctx, ag.Store())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
}

// BaseRecord reduces g to its base record in place.
func BaseRecord(g *annotation.Graph) error {
	g.MakeNullRelativeURIOutOfBlankNode()
	if err := g.RemoveNonBaseStatements(); err != nil {
		return fmt.Errorf("derive base record: %w", err)
	}
	return nil
}

func render(g *annotation.Graph, cfg *config.Config, format export.Format, contextName string) (string, error) {
	if format != export.FormatJSONLD {
		return export.Serialize(g.Store(), format)
	}
	url, err := cfg.ContextURL(contextName)
	if err != nil {
		return "", err
	}
	return g.JSONLD(url)
}

func newAnnotationGraph(store rdf.Store, cfg *config.Config, logger *slog.Logger) *annotation.Graph {
	return annotation.New(store,
		annotation.WithLogger(logger),
		annotation.WithMaxDepth(cfg.Closure.MaxDepth))
}

// loadRecordFile reads an annotation record written in the storage format.
func loadRecordFile(path string) (*rdf.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	rec, err := storage.DecodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec.Graph(), nil
}
