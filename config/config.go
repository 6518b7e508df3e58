// Package config loads the service configuration from a YAML file and
// selects the storage engine the service runs on.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Service   Service `yaml:"service"`
	RecipesDB Storage `yaml:"recipes_db"`
}

// Service configures the HTTP surface.
type Service struct {
	Addr  string `yaml:"addr"`
	Debug bool   `yaml:"debug"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document, applies defaults and validates the result.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Service.Addr == "" {
		cfg.Service.Addr = ":8080"
	}
	if cfg.RecipesDB.Kind == "" {
		cfg.RecipesDB.Kind = KindMemory
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
