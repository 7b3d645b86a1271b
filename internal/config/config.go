// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for aichat.
//
// Configuration comes from, in order of precedence:
//   - AICHAT_* environment variables
//   - ~/.aichat/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete aichat configuration.
type Config struct {
	// Server configuration
	Server ServerConfig `toml:"server"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// ServerConfig describes the assistant service to talk to.
type ServerConfig struct {
	// URL is the base URL of the assistant service.
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains presentation options.
type UIConfig struct {
	// Markdown renders assistant replies as markdown when true.
	Markdown bool `toml:"markdown"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:         "http://localhost:8000",
			TimeoutSecs: 30,
		},
		UI: UIConfig{
			Markdown: true,
		},
	}
}

// Timeout returns the server timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSecs) * time.Second
}

// =============================================================================
// LOADING
// =============================================================================

// Path returns the location of the config file, ~/.aichat/config.toml.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".aichat", "config.toml"), nil
}

// Load reads the configuration: defaults, then the config file if present,
// then environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if loadErr := LoadFrom(cfg, path); loadErr != nil && !os.IsNotExist(loadErr) {
			return nil, loadErr
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom merges the TOML file at path into cfg.
func LoadFrom(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}

// ApplyEnvOverrides applies AICHAT_* environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if serverURL := os.Getenv("AICHAT_SERVER_URL"); serverURL != "" {
		c.Server.URL = serverURL
	}
	if timeout := os.Getenv("AICHAT_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.Server.TimeoutSecs = secs
		}
	}
	if markdown := os.Getenv("AICHAT_MARKDOWN"); markdown != "" {
		c.UI.Markdown = markdown == "1" || markdown == "true"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("config: server.url must be an absolute URL")
	}
	if c.Server.TimeoutSecs <= 0 {
		return errors.New("config: server.timeout_secs must be positive")
	}
	return nil
}
