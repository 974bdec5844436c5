// Package config loads the twisty configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the contents of ~/.twisty/config.yaml.
type Config struct {
	Version int    `yaml:"version"`
	DBPath  string `yaml:"db_path"`

	// MaxOrder overrides the bound used when deriving move orders.
	MaxOrder int    `yaml:"max_order"`
	LogLevel string `yaml:"log_level"`

	// PuzzleFiles are extra puzzle descriptors loaded next to the built-in
	// catalog. Relative paths are resolved against the config file.
	PuzzleFiles []string `yaml:"puzzle_files"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Version: 1, LogLevel: "warn"}
}

// DefaultPath returns ~/.twisty/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".twisty", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file is not an error and
// yields Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported config.yaml version: %d", cfg.Version)
	}
	if cfg.MaxOrder < 0 {
		return nil, fmt.Errorf("max_order must not be negative, got %d", cfg.MaxOrder)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i, f := range cfg.PuzzleFiles {
		if !filepath.IsAbs(f) {
			cfg.PuzzleFiles[i] = filepath.Join(dir, f)
		}
	}

	return cfg, nil
}

// Level returns the configured log level. An empty level means warn.
func (c *Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.WarnLevel, nil
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
