package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Report   ReportConfig    `yaml:"report"`
	Log      LogConfig       `yaml:"log"`
	Expenses []ExpenseConfig `yaml:"expenses,omitempty"`
}

// ReportConfig sets the default filters and format for `tally report`.
type ReportConfig struct {
	Date     string `yaml:"date,omitempty"`
	Category string `yaml:"category,omitempty"`
	Format   string `yaml:"format"` // "text" or "csv"
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ExpenseConfig is a seed expense listed in the config file.
type ExpenseConfig struct {
	Amount   float64 `yaml:"amount"`
	Category string  `yaml:"category"`
	Date     string  `yaml:"date"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Format: "text",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
