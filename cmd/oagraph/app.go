package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/oagraph/config"
	"github.com/c360studio/oagraph/graph"
	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/storage"
)

// App wires the NATS connection to annotation storage and publishing.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	client *natsclient.Client
	store  *storage.Store
}

// NewApp connects to NATS and opens the annotation bucket.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	client, err := connectToNATS(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	js, err := client.JetStream()
	if err != nil {
		client.Close(ctx)
		return nil, fmt.Errorf("get jetstream: %w", err)
	}

	store, err := storage.NewStore(ctx, js,
		storage.WithBucket(cfg.NATS.Bucket),
		storage.WithLogger(logger))
	if err != nil {
		client.Close(ctx)
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	if cfg.NATS.Publish {
		if err := graph.EnsureGraphStream(ctx, client); err != nil {
			client.Close(ctx)
			return nil, err
		}
		logger.Debug("Graph stream ready", "stream", graph.GraphStream)
	}

	return &App{cfg: cfg, logger: logger, client: client, store: store}, nil
}

// Store persists a base record and, when enabled, publishes it to the graph.
func (a *App) Store(ctx context.Context, base rdf.Store) (storage.RecordID, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.store.Create(ctx, base)
	if err != nil {
		return storage.RecordID{}, err
	}
	a.logger.Info("Stored base record", "id", id.String(), "statements", base.Size())

	if a.cfg.NATS.Publish {
		if err := graph.PublishAnnotation(ctx, a.client, id.ID, base); err != nil {
			// The record is stored; publishing is best effort.
			a.logger.Warn("Failed to publish annotation", "id", id.String(), "error", err)
		}
	}
	return id, nil
}

// Close releases the NATS connection.
func (a *App) Close(ctx context.Context) {
	if a.client != nil {
		a.client.Close(ctx)
	}
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.NATS.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.NATS.Timeout)
	}
	return context.WithCancel(ctx)
}

func connectToNATS(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*natsclient.Client, error) {
	natsURL := cfg.NATS.URL

	// Environment variable override takes precedence
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		natsURL = envURL
	} else if envURL := os.Getenv("OAGRAPH_NATS_URL"); envURL != "" {
		natsURL = envURL
	}

	logger.Info("Connecting to NATS", "url", natsURL)

	client, err := natsclient.NewClient(natsURL,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(3),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, natsURL)
	}

	timeout := cfg.NATS.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	connCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		client.Close(ctx)
		return nil, wrapNATSError(err, natsURL)
	}

	logger.Info("Connected to NATS", "url", natsURL)
	return client, nil
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

To start NATS:
  docker run -p 4222:4222 nats -js

Or set NATS_URL environment variable to point to your NATS server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
