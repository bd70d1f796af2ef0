/*
Package config handles loading and saving toolbox-search configuration.

Configuration is stored in ~/.toolbox-search.json. Every field is optional;
missing values fall back to the defaults from NewConfig.

Schema:
  {
    "catalogPath": "~/tools/catalog.yaml",
    "historyPath": "~/.toolbox-search/history.db",
    "scoring": {
      "matchThreshold": 0.6,
      "fallbackThreshold": 0.3,
      "fieldWeights": {"name": 3, "category": 2, "tags": 1.5, "description": 1, "fuzzy": 0.5},
      "lengthPenaltyCutoff": 200,
      "lengthPenaltyFactor": 0.8
    },
    "settings": {
      "maxResults": 20,
      "suggestionLimit": 5,
      "disableHistory": false,
      "retentionDays": 30
    }
  }
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khanglvm/toolbox-search/internal/search"
)

const (
	configFileName     = ".toolbox-search.json"
	defaultHistoryPath = "~/.toolbox-search/history.db"

	defaultMaxResults    = 20
	defaultRetentionDays = 30
)

// Config represents the root configuration structure.
type Config struct {
	// CatalogPath points at a JSON or YAML catalog. Empty uses the built-in catalog.
	CatalogPath string `json:"catalogPath,omitempty"`

	// HistoryPath is the SQLite database for search analytics.
	HistoryPath string `json:"historyPath,omitempty"`

	// Scoring tunes matching thresholds, field weights and the length penalty.
	Scoring *search.ScoringConfig `json:"scoring,omitempty"`

	// Settings contains global options.
	Settings *Settings `json:"settings,omitempty"`
}

// Settings contains global configuration options.
type Settings struct {
	// MaxResults caps search output when no --max-results flag is given.
	MaxResults int `json:"maxResults,omitempty"`

	// SuggestionLimit is the default number of suggestions.
	SuggestionLimit int `json:"suggestionLimit,omitempty"`

	// DisableHistory turns off analytics recording.
	DisableHistory bool `json:"disableHistory,omitempty"`

	// RetentionDays is how long analytics records are kept by 'history prune'.
	RetentionDays int `json:"retentionDays,omitempty"`
}

// NewConfig creates a configuration populated with defaults.
func NewConfig() *Config {
	scoring := search.DefaultScoringConfig()
	return &Config{
		HistoryPath: defaultHistoryPath,
		Scoring:     &scoring,
		Settings: &Settings{
			MaxResults:      defaultMaxResults,
			SuggestionLimit: search.DefaultSuggestionLimit,
			RetentionDays:   defaultRetentionDays,
		},
	}
}

// ApplyDefaults fills unset fields with the values NewConfig would use.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.HistoryPath == "" {
		c.HistoryPath = defaults.HistoryPath
	}
	if c.Scoring == nil {
		c.Scoring = defaults.Scoring
	}
	c.Scoring.ApplyDefaults()

	if c.Settings == nil {
		c.Settings = defaults.Settings
		return
	}
	if c.Settings.MaxResults <= 0 {
		c.Settings.MaxResults = defaults.Settings.MaxResults
	}
	if c.Settings.SuggestionLimit <= 0 {
		c.Settings.SuggestionLimit = defaults.Settings.SuggestionLimit
	}
	if c.Settings.RetentionDays <= 0 {
		c.Settings.RetentionDays = defaults.Settings.RetentionDays
	}
}

// ScoringConfig returns the scoring configuration with defaults applied.
func (c *Config) ScoringConfig() search.ScoringConfig {
	if c.Scoring == nil {
		return search.DefaultScoringConfig()
	}
	cfg := *c.Scoring
	cfg.ApplyDefaults()
	return cfg
}

// ResolvedCatalogPath returns CatalogPath with "~" expanded.
func (c *Config) ResolvedCatalogPath() string {
	return ExpandPath(c.CatalogPath)
}

// ResolvedHistoryPath returns HistoryPath with "~" expanded.
func (c *Config) ResolvedHistoryPath() string {
	return ExpandPath(c.HistoryPath)
}

// ExpandPath replaces a leading "~" with the home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// GetDefaultConfigPath returns the path to ~/.toolbox-search.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadOrCreate reads the configuration at path, or returns defaults when
// the file does not exist. An empty path means the default location.
func LoadOrCreate(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = GetDefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		var notFound *ConfigNotFoundError
		if errors.As(err, &notFound) {
			return NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
