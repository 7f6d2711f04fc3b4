// Package config loads the arraymod CLI configuration from an optional yaml
// file, applies defaults, and honors environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoggingConfig controls CLI logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DemoConfig controls the demo subcommand.
type DemoConfig struct {
	// Size is the length of the demo vectors.
	Size int `yaml:"size"`
}

// Config is the full CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Demo    DemoConfig    `yaml:"demo"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Demo:    DemoConfig{Size: 4},
	}
}

// Load reads configuration from path. A missing file is not an error: the
// defaults apply. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ARRAYMOD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ARRAYMOD_LOG_JSON"); v != "" {
		c.Logging.JSON = v == "1" || v == "true"
	}
	if v := os.Getenv("ARRAYMOD_DEMO_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Demo.Size = n
		}
	}
}

func (c *Config) validate() error {
	if c.Demo.Size <= 0 {
		return fmt.Errorf("demo size must be positive, got %d", c.Demo.Size)
	}
	return nil
}
