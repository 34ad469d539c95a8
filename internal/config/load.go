package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads the demo's configuration with priority: defaults < file < flags.
func Load(demo string, f *Flags) (*Config, error) {
	cfg, err := Default(demo)
	if err != nil {
		return nil, err
	}

	configPath := ""
	if f != nil {
		configPath = f.Config
	}
	if configPath == "" {
		configPath = findConfigFile(demo)
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if f != nil {
		f.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for <demo>.yaml in the working directory.
func findConfigFile(demo string) string {
	path := "./" + demo + ".yaml"
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Save writes cfg as YAML to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
