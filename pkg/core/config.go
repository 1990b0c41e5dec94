package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the odoo-sort-go configuration, loaded from
// .osort.yaml the same way glint's Config is loaded from .glint.yaml.
type Config struct {
	Version  int            `yaml:"version"`
	Settings SettingsConfig `yaml:"settings"`
}

// SettingsConfig contains the options exposed by sortengine.Sort (spec.md
// §6's library entry point) plus the directory-walk exclusions.
type SettingsConfig struct {
	SortFields        bool     `yaml:"sort_fields"`
	Exclude           []string `yaml:"exclude"`
	OnUnknownEncoding string   `yaml:"on_unknown_encoding,omitempty"`
	OnDecodingError   string   `yaml:"on_decoding_error,omitempty"`
	OnParseError      string   `yaml:"on_parse_error,omitempty"`
	OnUnresolved      string   `yaml:"on_unresolved,omitempty"`
	OnWildcardImport  string   `yaml:"on_wildcard_import,omitempty"`
}

// DefaultConfig returns the default configuration: every policy raises,
// fields keep their original order, and the usual non-source directories
// are excluded from a directory walk.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Settings: SettingsConfig{
			SortFields: false,
			Exclude: []string{
				".git/**",
				"**/__pycache__/**",
				"**/*.pyc",
				"**/migrations/**",
			},
			OnUnknownEncoding: "raise",
			OnDecodingError:   "raise",
			OnParseError:      "raise",
			OnUnresolved:      "raise",
			OnWildcardImport:  "raise",
		},
	}
}

// LoadConfig loads configuration from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// FindConfig searches for .osort.yaml in the directory and its parents.
func FindConfig(startDir string) (string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ".osort.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		configPath = filepath.Join(dir, "osort.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadConfigWithDefaults loads config and merges with defaults.
func LoadConfigWithDefaults(projectRoot string) (*Config, error) {
	cfg := DefaultConfig()

	configPath, err := FindConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		projectCfg, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = MergeConfigs(cfg, projectCfg)
	}

	return cfg, nil
}

// MergeConfigs merges two configs, with override taking precedence.
func MergeConfigs(base, override *Config) *Config {
	result := &Config{
		Version:  base.Version,
		Settings: base.Settings,
	}
	if override.Version != 0 {
		result.Version = override.Version
	}
	if len(override.Settings.Exclude) > 0 {
		result.Settings.Exclude = override.Settings.Exclude
	}
	if override.Settings.OnUnknownEncoding != "" {
		result.Settings.OnUnknownEncoding = override.Settings.OnUnknownEncoding
	}
	if override.Settings.OnDecodingError != "" {
		result.Settings.OnDecodingError = override.Settings.OnDecodingError
	}
	if override.Settings.OnParseError != "" {
		result.Settings.OnParseError = override.Settings.OnParseError
	}
	if override.Settings.OnUnresolved != "" {
		result.Settings.OnUnresolved = override.Settings.OnUnresolved
	}
	if override.Settings.OnWildcardImport != "" {
		result.Settings.OnWildcardImport = override.Settings.OnWildcardImport
	}
	// SortFields has no zero-value sentinel distinct from "unset"; an
	// explicit override file always wins for it.
	result.Settings.SortFields = override.Settings.SortFields

	return result
}

// ShouldExclude checks if a path should be excluded based on glob patterns.
func (c *Config) ShouldExclude(path string) bool {
	for _, pattern := range c.Settings.Exclude {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}
