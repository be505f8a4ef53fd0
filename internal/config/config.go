// Package config handles configuration loading and defaults.
package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mindguard-ai/moodtrack/internal/mood"
)

// Config holds all configuration for the mood tracker.
type Config struct {
	StoragePath string `yaml:"storage_path"`

	// QuarantineCorrupt keeps a copy of unreadable records before they are
	// reinitialized. Disable to drop them silently.
	QuarantineCorrupt bool `yaml:"quarantine_corrupt"`

	Advice AdviceConfig `yaml:"advice"`
	Chart  ChartConfig  `yaml:"chart"`
}

// AdviceConfig overrides entries in the built-in mood advice table, for
// localization or tuning. Unspecified moods keep their defaults.
type AdviceConfig struct {
	Moods    map[string]string `yaml:"moods"`
	Fallback string            `yaml:"fallback"`
}

// ChartConfig holds settings for the weekly chart renderer.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/tmp"
	}

	return &Config{
		StoragePath:       filepath.Join(home, ".local", "share", "moodtrack"),
		QuarantineCorrupt: true,
		Chart: ChartConfig{
			Width:  800,
			Height: 480,
		},
	}
}

// Load loads configuration from the default paths, falling back to defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	configPaths := []string{
		filepath.Join(home, ".config", "moodtrack", "config.yaml"),
		filepath.Join(home, ".local", "share", "moodtrack", "config.yaml"),
	}

	for _, path := range configPaths {
		if err := loadFromFile(cfg, path); err == nil {
			return cfg, nil
		}
	}

	return cfg, nil
}

// loadFromFile reads a YAML config file and merges it into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		// A present-but-broken file is a user error worth surfacing; a
		// missing file is not.
		log.Printf("[config] Failed to parse %s: %v", path, err)
		return err
	}
	cfg.StoragePath = expandTilde(cfg.StoragePath)
	return nil
}

// expandTilde expands ~ to the user's home directory.
func expandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Save writes the current config to disk.
func (c *Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".config", "moodtrack")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.yaml"), data, 0600)
}

// AdviceTable materializes the advice table: built-in defaults with the
// configured overrides applied on top.
func (c *Config) AdviceTable() mood.AdviceTable {
	table := mood.DefaultAdviceTable()
	for label, advice := range c.Advice.Moods {
		table.Moods[label] = advice
	}
	if c.Advice.Fallback != "" {
		table.Fallback = c.Advice.Fallback
	}
	return table
}
