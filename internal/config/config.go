// Package config handles the optional YAML config file. All values act as
// defaults for command-line flags; flags always win.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

// Config represents a config.yaml in the state directory.
type Config struct {
	// ServerURL is the base URL of the analysis backend.
	ServerURL string `yaml:"server_url"`
	// Model is the analysis model identifier sent with each request.
	Model string `yaml:"model"`
	// TimeoutSeconds bounds a single analysis round-trip.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Listen is the web-mode bind address.
	Listen string `yaml:"listen"`
}

// Default returns the built-in configuration, matching the backend's own
// defaults.
func Default() Config {
	return Config{
		ServerURL:      "http://127.0.0.1:5000",
		Model:          model.DefaultModel,
		TimeoutSeconds: 120,
		Listen:         "localhost:8080",
	}
}

// Timeout converts TimeoutSeconds to a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads a YAML config file, expands ${VAR} references, and fills in
// defaults for anything left unset. A missing file is not an error — the
// defaults simply apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	expanded := ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = Default().ServerURL
	}
	if cfg.Model == "" {
		cfg.Model = Default().Model
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}
	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	return cfg, nil
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// ExpandEnv replaces ${VAR} and ${VAR:-default} patterns with environment
// variable values. Unset variables without defaults expand to empty string.
func ExpandEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		if value, ok := os.LookupEnv(groups[1]); ok && value != "" {
			return value
		}
		if len(groups) >= 3 && groups[2] != "" {
			return groups[2]
		}
		return ""
	})
}
