package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultModel is used when neither the environment nor a config file names a model.
	DefaultModel = "gpt-4o-mini"
	// DefaultReportPath is where the report is written when --report is not given.
	DefaultReportPath = "out/report.md"
	// DefaultFile is the optional project-local YAML file with run defaults.
	DefaultFile = "agent-run.yaml"

	// EnvAPIKey holds the completion service credential. Any non-empty value counts as set.
	EnvAPIKey = "OPENAI_API_KEY"
	// EnvBaseURL overrides the completion service endpoint.
	EnvBaseURL = "OPENAI_BASE_URL"
	// EnvModel overrides DefaultModel.
	EnvModel = "MODEL"
)

// Config holds the model settings for one run.
type Config struct {
	Model   string
	APIKey  string
	BaseURL string
	Verbose bool
}

// fileConfig mirrors the optional YAML defaults file.
type fileConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Model: DefaultModel,
	}
}

// HasAPIKey reports whether a credential is configured.
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// Normalize sanitizes configuration values and applies defaults.
// The API key is kept verbatim.
func Normalize(cfg Config) Config {
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}

// FromEnv overlays environment values on cfg. Unset or blank variables
// leave the existing value alone.
func FromEnv(cfg Config, lookup func(string) string) Config {
	if lookup == nil {
		lookup = os.Getenv
	}
	if v := strings.TrimSpace(lookup(EnvModel)); v != "" {
		cfg.Model = v
	}
	if v := lookup(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(lookup(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}

// LoadFile overlays values from a YAML defaults file on cfg.
// A missing file yields an error matching fs.ErrNotExist.
func LoadFile(cfg Config, path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if v := strings.TrimSpace(fc.Model); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(fc.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}

// Load builds the run configuration: defaults, then the YAML file, then the environment.
// When optional is set, a missing file is skipped.
func Load(path string, optional bool, lookup func(string) string) (Config, error) {
	cfg, err := LoadFile(DefaultConfig(), path)
	if err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		cfg = DefaultConfig()
	}
	return Normalize(FromEnv(cfg, lookup)), nil
}
