// Package config loads the server configuration from a YAML file, laid
// over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for the queens HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// MaxBoardSize caps the board size accepted by the API. The search
	// cost grows steeply with size, so unbounded requests are rejected.
	MaxBoardSize int `yaml:"max_board_size"`

	// PersistentHistory makes new sessions keep their solution history
	// across requests by default.
	PersistentHistory bool `yaml:"persistent_history"`

	// SearchPastDuplicates makes new sessions enumerate distinct
	// solutions by default. Only meaningful with PersistentHistory.
	SearchPastDuplicates bool `yaml:"search_past_duplicates"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         ":8080",
		MaxBoardSize: 12,
	}
}

// Load reads the configuration file at path over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	if c.MaxBoardSize < 1 {
		return fmt.Errorf("config: max_board_size must be at least 1, got %d", c.MaxBoardSize)
	}
	if c.SearchPastDuplicates && !c.PersistentHistory {
		return fmt.Errorf("config: search_past_duplicates requires persistent_history")
	}
	return nil
}
