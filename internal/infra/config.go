package infra

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's ambient settings. The converter runs with
// built-in defaults when no config file is present.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	UI struct {
		Color bool `yaml:"color"`
	} `yaml:"ui"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "Number System Converter"
	cfg.App.Version = "1.0.0"
	cfg.UI.Color = true
	// warn keeps interactive sessions free of log noise
	cfg.Logging.Level = "warn"
	return cfg
}

// LoadConfig reads and parses the config file at path. A missing file is
// not an error: defaults apply. Environment variables override file values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// run on defaults
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Logging.Level)
	}
	return nil
}

// overrideWithEnv applies environment overrides on top of file values.
func overrideWithEnv(cfg *Config) {
	if lvl := os.Getenv("NUMCONV_LOG_LEVEL"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	// NO_COLOR is the conventional opt-out for ANSI output.
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.Color = false
	}
}
