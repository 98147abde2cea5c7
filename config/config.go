// Package config holds the directory and naming defaults for a run.
// Defaults match the repository's data layout; a YAML file can override
// any of them.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Config is the run configuration.
type Config struct {
	// RawDir is where snapshot HTML files land.
	RawDir string `yaml:"rawDir"`
	// ProcessedDir is where extracted CSV files are written.
	ProcessedDir string `yaml:"processedDir"`
	// Pattern is the glob matching snapshot filenames.
	Pattern string `yaml:"pattern"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		RawDir:       "data/raw",
		ProcessedDir: "data/processed",
		Pattern:      "actioneer-*.html",
	}
}

// Load reads a YAML config file over the defaults. An empty path just
// returns the defaults; a missing or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
