// Package config loads CLI settings from a YAML file, an optional .env file
// and RUBIK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds CLI settings. Zero values are replaced by Default.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Color     bool   `yaml:"color"`
	Compact   bool   `yaml:"compact"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Color:     true,
	}
}

// envOverrides mirrors the environment variables that may override the file.
type envOverrides struct {
	LogLevel  string `env:"RUBIK_LOG_LEVEL"`
	LogFormat string `env:"RUBIK_LOG_FORMAT"`
	Color     string `env:"RUBIK_COLOR"`
}

// Load reads path (if non-empty) over the defaults and then applies
// environment overrides. A missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("config: decode environment: %w", err)
	}

	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.LogFormat = env.LogFormat
	}
	if env.Color != "" {
		on, err := strconv.ParseBool(env.Color)
		if err != nil {
			return fmt.Errorf("config: RUBIK_COLOR: %w", err)
		}
		cfg.Color = on
	}
	return nil
}

// Validate checks the log format. Log levels are checked by the logging
// package when the logger is built.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
}
