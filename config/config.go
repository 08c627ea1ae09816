package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"drumgrid/theme"
)

// TrackConfig is a saved track layout entry
type TrackConfig struct {
	Name   string `json:"name"`
	Engine string `json:"engine"`
}

// Config is the main configuration structure
type Config struct {
	Theme  theme.Theme   `json:"theme,omitempty"`
	Tracks []TrackConfig `json:"tracks,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme: theme.Purple,
		Tracks: []TrackConfig{
			{Name: "Kick", Engine: "kick"},
			{Name: "Snare", Engine: "snare"},
			{Name: "CH", Engine: "hatClosed"},
			{Name: "OH", Engine: "hatOpen"},
			{Name: "Clap", Engine: "clap"},
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "drumgrid"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Theme == "" {
		cfg.Theme = theme.Purple
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
