// Package config loads the client configuration from YAML and applies
// environment variable overrides.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultMCPURL is the well-known Kite MCP server endpoint.
const DefaultMCPURL = "https://mcp.kite.trade/sse"

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the Kite MCP client.
type Config struct {
	MCP     MCP     `yaml:"mcp"`
	Login   Login   `yaml:"login"`
	Logging Logging `yaml:"logging"`
}

// MCP holds the tool-invocation server endpoint.
type MCP struct {
	URL string `yaml:"url"`
}

// Login controls the browser-based authentication flow.
type Login struct {
	AutoOpenBrowser     bool `yaml:"auto_open_browser"`
	ConfirmDelaySeconds int  `yaml:"confirm_delay_seconds"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConfirmDelay returns the post-confirmation delay that gives the server time
// to propagate the new session before the client marks itself logged in.
func (l Login) ConfirmDelay() time.Duration {
	return time.Duration(l.ConfirmDelaySeconds) * time.Second
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		MCP: MCP{URL: DefaultMCPURL},
		Login: Login{
			AutoOpenBrowser:     true,
			ConfirmDelaySeconds: 2,
		},
		Logging: Logging{Level: "info", Format: "json"},
	}
}

// Load reads the YAML configuration file at the given path, parses it into a
// Config struct, and then applies environment variable overrides. A missing
// file is not an error: the built-in defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KITE_MCP_URL"); v != "" {
		cfg.MCP.URL = v
	}

	if v := os.Getenv("KITE_NO_BROWSER"); v != "" {
		cfg.Login.AutoOpenBrowser = false
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
