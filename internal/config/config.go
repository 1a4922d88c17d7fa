package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration when --config is
// not given.
const DefaultPath = "peerflow.yaml"

// Config represents the top-level peerflow.yaml configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Aliases AliasConfig   `yaml:"aliases"`
	Display DisplayConfig `yaml:"display"`
}

// SessionConfig controls where the session envelope lives.
type SessionConfig struct {
	Path string `yaml:"path"`
}

// AliasConfig controls identity-resolution suggestions.
type AliasConfig struct {
	SuggestThreshold float64 `yaml:"suggest_threshold"`
}

// DisplayConfig holds default view filters.
type DisplayConfig struct {
	HideMerchants bool `yaml:"hide_merchants"`
}

// Load reads a peerflow.yaml file from disk. A missing file yields the
// defaults, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		applyEnv(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets environment variables (often via a local .env) override
// file settings.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PEERFLOW_SESSION_PATH"); v != "" {
		cfg.Session.Path = v
	}
	if v := os.Getenv("PEERFLOW_HIDE_MERCHANTS"); v != "" {
		cfg.Display.HideMerchants = v == "1" || strings.EqualFold(v, "true")
	}
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Path: "peerflow-session.json",
		},
		Aliases: AliasConfig{
			SuggestThreshold: 0.75,
		},
		Display: DisplayConfig{
			HideMerchants: false,
		},
	}
}
