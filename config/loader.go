package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "oagraph.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/oagraph"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
	// workDir is where the project config search starts (cwd when empty)
	workDir string
	// homeDir overrides the user home directory (os.UserHomeDir when empty)
	homeDir string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithWorkDir starts the project config search at dir.
func WithWorkDir(dir string) LoaderOption {
	return func(l *Loader) { l.workDir = dir }
}

// WithHomeDir reads the user config relative to dir.
func WithHomeDir(dir string) LoaderOption {
	return func(l *Loader) { l.homeDir = dir }
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/oagraph/config.yaml)
// 3. Project config (oagraph.yaml in current or parent directories)
// 4. The explicit file, if path is not empty
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	// Load user config
	if userConfigPath := l.userConfigPath(); userConfigPath != "" {
		if userConfig, err := loadLayer(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	// Load project config
	projectConfigPath := l.findProjectConfig()
	if projectConfigPath != "" {
		if projectConfig, err := loadLayer(projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
			config.Merge(projectConfig)
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	// Explicit file must exist
	if path != "" {
		explicit, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config file", slog.String("path", path))
		config.Merge(explicit)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return fmt.Errorf("no home directory for user config")
	}

	if _, err := os.Stat(userConfigPath); err == nil {
		return nil // Already exists
	}

	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home := l.homeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for oagraph.yaml in the work directory and its parents
func (l *Loader) findProjectConfig() string {
	dir := l.workDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadLayer reads a config file without applying defaults, so that only the
// keys it sets take precedence when merged.
func loadLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var layer Config
	if err := yaml.Unmarshal(data, &layer); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &layer, nil
}
