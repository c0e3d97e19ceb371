package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the root of the pipeloop configuration file.
type Config struct {
	LogLevel  string       `yaml:"log_level"`
	Format    string       `yaml:"format"`
	StepLimit int          `yaml:"step_limit"`
	Render    RenderConfig `yaml:"render"`
}

// RenderConfig selects which grids are drawn after the report.
type RenderConfig struct {
	Original bool `yaml:"original"`
	Scaled   bool `yaml:"scaled"`
	Color    bool `yaml:"color"`
}

// DefaultConfig returns the settings used when no file or env is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatText,
	}
}

// LoadConfig reads a YAML config file over the defaults, then applies env
// fallbacks. If path == "", PIPELOOP_CONFIG is tried; if that is empty too,
// only defaults and env apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("PIPELOOP_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

// applyEnv fills settings from PIPELOOP_* variables. Env only overrides the
// file for fields it actually sets.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PIPELOOP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PIPELOOP_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PIPELOOP_STEP_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.StepLimit = n
		}
	}
	if v := os.Getenv("PIPELOOP_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Render.Color = b
		}
	}
}

// Validate checks the enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatYAML)
	}
	if c.StepLimit < 0 {
		return fmt.Errorf("step_limit must not be negative (%d)", c.StepLimit)
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
