// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied by MergeWithDefaults when neither the config file nor a flag sets a value
const (
	DefaultCorpusPath = "data/careers.csv"
	DefaultStrategy   = "similarity"
	DefaultTopK       = 5
	DefaultDetail     = "deep"
	DefaultOutDir     = "results"
	DefaultPrefix     = "recs"
	DefaultPort       = 8080
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or are provided via CLI flags.
type Config struct {
	// Paths
	Corpus string `json:"corpus,omitempty"`  // Path to the career CSV
	OutDir string `json:"out_dir,omitempty"` // Directory for exported results
	Prefix string `json:"prefix,omitempty"`  // Export filename prefix

	// Ranking
	Strategy string `json:"strategy,omitempty"` // containment, overlap or similarity
	TopK     int    `json:"top_k,omitempty"`    // Number of careers returned
	Detail   string `json:"detail,omitempty"`   // deep or short advice

	// Server
	Port       int    `json:"port,omitempty"`
	HistoryDSN string `json:"history_dsn,omitempty"` // postgres:// URL or SQLite file path

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print boxed summaries
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Corpus:   DefaultCorpusPath,
		OutDir:   DefaultOutDir,
		Prefix:   DefaultPrefix,
		Strategy: DefaultStrategy,
		TopK:     DefaultTopK,
		Detail:   DefaultDetail,
		Port:     DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Strategy {
	case "", "containment", "overlap", "similarity":
	default:
		return fmt.Errorf("config error: unknown strategy %q", c.Strategy)
	}

	switch c.Detail {
	case "", "deep", "short":
	default:
		return fmt.Errorf("config error: 'detail' must be deep or short, got %q", c.Detail)
	}

	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Corpus != "" {
		if _, err := os.Stat(c.Corpus); os.IsNotExist(err) {
			return fmt.Errorf("config error: corpus file not found: %s", c.Corpus)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Corpus == "" {
		result.Corpus = defaults.Corpus
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Prefix == "" {
		result.Prefix = defaults.Prefix
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.Detail == "" {
		result.Detail = defaults.Detail
	}
	if result.HistoryDSN == "" {
		result.HistoryDSN = defaults.HistoryDSN
	}

	// Int fields: use default if zero
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
