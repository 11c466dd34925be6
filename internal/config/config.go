package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankpro.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// LedgerConfig locates the persisted document and the admin audit log.
type LedgerConfig struct {
	Path     string `yaml:"path"`
	AuditLog string `yaml:"audit_log"`
}

// ExportConfig controls where administrative exports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig controls the zap log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a bankpro.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new install.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path:     "bank_db.json",
			AuditLog: "audit-log.csv",
		},
		Export: ExportConfig{
			Dir: "exports",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
