package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `server_url: http://backend:9000
model: gemini-exp
timeout_seconds: 30
listen: 0.0.0.0:9090
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://backend:9000" {
		t.Errorf("server_url: got %q", cfg.ServerURL)
	}
	if cfg.Model != "gemini-exp" {
		t.Errorf("model: got %q", cfg.Model)
	}
	if cfg.Timeout().Seconds() != 30 {
		t.Errorf("timeout: got %v", cfg.Timeout())
	}
	if cfg.Listen != "0.0.0.0:9090" {
		t.Errorf("listen: got %q", cfg.Listen)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != Default().ServerURL {
		t.Errorf("expected default server url, got %q", cfg.ServerURL)
	}
	if cfg.Model != model.DefaultModel {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "server_url: http://elsewhere:5000\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://elsewhere:5000" {
		t.Errorf("server_url: got %q", cfg.ServerURL)
	}
	if cfg.Model != Default().Model {
		t.Errorf("expected default model kept, got %q", cfg.Model)
	}
	if cfg.TimeoutSeconds != Default().TimeoutSeconds {
		t.Errorf("expected default timeout kept, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server_url: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("ANALYSIS_BACKEND", "http://from-env:5000")
	path := writeConfig(t, "server_url: ${ANALYSIS_BACKEND}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://from-env:5000" {
		t.Errorf("expected env expansion, got %q", cfg.ServerURL)
	}
}

func TestExpandEnv_Defaults(t *testing.T) {
	os.Unsetenv("DEFINITELY_UNSET_VAR")
	if got := ExpandEnv("${DEFINITELY_UNSET_VAR:-fallback}"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := ExpandEnv("${DEFINITELY_UNSET_VAR}"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
