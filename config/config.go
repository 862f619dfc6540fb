// Package config provides configuration loading and management for oagraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/oagraph/vocabulary/oa"
)

// Context names accepted by ContextConfig.Default and ContextURL.
const (
	ContextOA   = "oa"
	ContextIIIF = "iiif"
)

// Config represents the complete oagraph configuration
type Config struct {
	Contexts ContextConfig `yaml:"contexts"`
	Closure  ClosureConfig `yaml:"closure"`
	NATS     NATSConfig    `yaml:"nats"`
	Log      LogConfig     `yaml:"log"`
}

// ContextConfig configures the JSON-LD context documents
type ContextConfig struct {
	// Annotation is the Open Annotation context identifier
	Annotation string `yaml:"annotation"`
	// IIIF is the IIIF Presentation context identifier
	IIIF string `yaml:"iiif"`
	// Default is the context used when none is requested ("oa" or "iiif")
	Default string `yaml:"default"`
}

// ClosureConfig bounds subgraph traversal
type ClosureConfig struct {
	// MaxDepth is the deepest level a closure may descend. Zero or negative
	// means unbounded, which is the default. A layer that sets zero leaves the
	// value from a lower layer in place; use -1 to lift a lower layer's bound.
	MaxDepth int `yaml:"max_depth"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// Bucket is the KV bucket holding annotation records
	Bucket string `yaml:"bucket"`
	// Timeout bounds connection and storage calls
	Timeout time.Duration `yaml:"timeout"`
	// Publish sends stored records to the knowledge graph as well. The GRAPH
	// stream is created on connect when no stream by that name exists.
	Publish bool `yaml:"publish"`
}

// LogConfig configures the process logger
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
	// Format is text or json
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Contexts: ContextConfig{
			Annotation: oa.DatedContextURL,
			IIIF:       oa.IIIFContextURL,
			Default:    ContextOA,
		},
		NATS: NATSConfig{
			URL:     "nats://localhost:4222",
			Bucket:  "OA_ANNOTATIONS",
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Contexts.Annotation == "" {
		return fmt.Errorf("contexts.annotation is required")
	}
	if c.Contexts.IIIF == "" {
		return fmt.Errorf("contexts.iiif is required")
	}
	if c.Contexts.Default != ContextOA && c.Contexts.Default != ContextIIIF {
		return fmt.Errorf("contexts.default must be %q or %q", ContextOA, ContextIIIF)
	}
	if c.NATS.Timeout < 0 {
		return fmt.Errorf("nats.timeout must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

// ContextURL resolves a context name to its identifier. An empty name
// selects the configured default.
func (c *Config) ContextURL(name string) (string, error) {
	if name == "" {
		name = c.Contexts.Default
	}
	switch name {
	case ContextOA:
		return c.Contexts.Annotation, nil
	case ContextIIIF:
		return c.Contexts.IIIF, nil
	default:
		return "", fmt.Errorf("unknown context %q (want %q or %q)", name, ContextOA, ContextIIIF)
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Contexts
	if other.Contexts.Annotation != "" {
		c.Contexts.Annotation = other.Contexts.Annotation
	}
	if other.Contexts.IIIF != "" {
		c.Contexts.IIIF = other.Contexts.IIIF
	}
	if other.Contexts.Default != "" {
		c.Contexts.Default = other.Contexts.Default
	}

	// Closure
	if other.Closure.MaxDepth != 0 {
		c.Closure.MaxDepth = other.Closure.MaxDepth
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Bucket != "" {
		c.NATS.Bucket = other.NATS.Bucket
	}
	if other.NATS.Timeout != 0 {
		c.NATS.Timeout = other.NATS.Timeout
	}
	if other.NATS.Publish {
		c.NATS.Publish = true
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}
