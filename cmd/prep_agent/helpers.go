package main

import (
	"context"
	"fmt"

	"github.com/prepstack/placement-prep/internal/config"
	"github.com/prepstack/placement-prep/internal/store"
)

var (
	configPath  string
	dataFile    string
	databaseURL string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "Path to the JSON data file (default prep_data.json)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed output")
}

// resolveConfig merges configuration sources. Precedence: flags, then config
// file, then PREP_* environment variables, then built-in defaults.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		DataFile:    dataFile,
		DatabaseURL: databaseURL,
		Verbose:     verbose,
	}

	merged := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(config.FromEnv())
	merged = merged.MergeWithDefaults(config.Config{
		DataFile:     config.DefaultDataFile,
		HistoryLimit: store.DefaultHistoryLimit,
		Port:         8080,
	})

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openStore opens the configured persistence backend: PostgreSQL when a
// database URL is set, the local JSON data file otherwise. The returned
// closer is a no-op for the file backend.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return pg, pg.Close, nil
	}
	return store.NewFileStore(cfg.DataFile), func() {}, nil
}

// openHistory is the common prelude for commands that work with saved
// analyses.
func openHistory(ctx context.Context) (*store.HistoryStore, func(), error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store.NewHistoryStore(st, cfg.HistoryLimit), closeStore, nil
}
