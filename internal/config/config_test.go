package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Create a temporary YAML config file.
	yamlContent := []byte(`
mcp:
  url: "https://mcp.example.test/sse"
login:
  auto_open_browser: false
  confirm_delay_seconds: 5
logging:
  level: "debug"
  format: "text"
`)

	tmpFile, err := os.CreateTemp("", "kite-config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(yamlContent); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}

	// Clear any environment overrides that might interfere.
	os.Unsetenv("KITE_MCP_URL")
	os.Unsetenv("KITE_NO_BROWSER")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.MCP.URL != "https://mcp.example.test/sse" {
		t.Errorf("MCP.URL = %q, want %q", cfg.MCP.URL, "https://mcp.example.test/sse")
	}
	if cfg.Login.AutoOpenBrowser {
		t.Error("Login.AutoOpenBrowser = true, want false")
	}
	if cfg.Login.ConfirmDelaySeconds != 5 {
		t.Errorf("Login.ConfirmDelaySeconds = %d, want 5", cfg.Login.ConfirmDelaySeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	os.Unsetenv("KITE_MCP_URL")
	os.Unsetenv("KITE_NO_BROWSER")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load("/nonexistent/kite.yaml")
	if err != nil {
		t.Fatalf("Load() with missing file returned error: %v", err)
	}

	if cfg.MCP.URL != DefaultMCPURL {
		t.Errorf("MCP.URL = %q, want default %q", cfg.MCP.URL, DefaultMCPURL)
	}
	if !cfg.Login.AutoOpenBrowser {
		t.Error("Login.AutoOpenBrowser should default to true")
	}
	if cfg.Login.ConfirmDelaySeconds != 2 {
		t.Errorf("Login.ConfirmDelaySeconds = %d, want 2", cfg.Login.ConfirmDelaySeconds)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KITE_MCP_URL", "https://override.test/sse")
	t.Setenv("KITE_NO_BROWSER", "1")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("/nonexistent/kite.yaml")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.MCP.URL != "https://override.test/sse" {
		t.Errorf("MCP.URL = %q, want env override", cfg.MCP.URL)
	}
	if cfg.Login.AutoOpenBrowser {
		t.Error("KITE_NO_BROWSER should disable auto-open")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestConfirmDelay(t *testing.T) {
	l := Login{ConfirmDelaySeconds: 3}
	if got := l.ConfirmDelay().Seconds(); got != 3 {
		t.Errorf("ConfirmDelay = %vs, want 3s", got)
	}
}
