// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultDataFile is where analysis state is persisted when no data file
// is configured.
const DefaultDataFile = "prep_data.json"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Persistence
	DataFile     string `json:"data_file,omitempty"`     // Path to the JSON data file (local storage)
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL (serve mode)
	HistoryLimit int    `json:"history_limit,omitempty"` // Max analysis records retained

	// Server
	Port int `json:"port,omitempty"` // HTTP port for serve mode

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed analysis output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv returns a Config built from PREP_* environment variables.
// Unset variables leave the corresponding field at its zero value.
func FromEnv() Config {
	cfg := Config{
		DataFile:    os.Getenv("PREP_DATA_FILE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if raw := os.Getenv("PREP_HISTORY_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.HistoryLimit = n
		}
	}
	if raw := os.Getenv("PREP_PORT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config error: 'history_limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataFile == "" {
		result.DataFile = defaults.DataFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.HistoryLimit == 0 {
		result.HistoryLimit = defaults.HistoryLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
