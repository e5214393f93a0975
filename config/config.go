// Package config provides configuration loading and management for the
// grounding toolchain.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete toolchain configuration.
type Config struct {
	Grounding GroundingConfig `yaml:"grounding"`
	Sources   SourcesConfig   `yaml:"sources"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GroundingConfig configures lexical index construction.
type GroundingConfig struct {
	// Prefixes lists the namespaces to build the index over.
	Prefixes []string `yaml:"prefixes"`

	// IdentifiersAreNames lists namespaces whose bare identifiers are
	// human-readable tokens and should be indexed as matchable text.
	IdentifiersAreNames []string `yaml:"identifiers_are_names"`
}

// SourcesConfig configures where lexical data comes from.
type SourcesConfig struct {
	// Paths lists YAML namespace-dump files to load.
	Paths []string `yaml:"paths"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	known := make(map[string]bool, len(c.Grounding.Prefixes))
	for _, p := range c.Grounding.Prefixes {
		known[p] = true
	}
	for _, p := range c.Grounding.IdentifiersAreNames {
		if !known[p] {
			return fmt.Errorf("grounding.identifiers_are_names contains %q which is not in grounding.prefixes", p)
		}
	}
	return nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.Grounding.Prefixes) > 0 {
		c.Grounding.Prefixes = other.Grounding.Prefixes
	}
	if len(other.Grounding.IdentifiersAreNames) > 0 {
		c.Grounding.IdentifiersAreNames = other.Grounding.IdentifiersAreNames
	}
	if len(other.Sources.Paths) > 0 {
		c.Sources.Paths = other.Sources.Paths
	}
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
}

// SlogLevel maps the configured level name to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
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

// LoadFromFile loads configuration from a YAML file.
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
