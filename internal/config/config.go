package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneScan holds all configuration for the gene scanner service.
type GeneScan struct {
	// Batch recompute
	BatchSize int `yaml:"batch_size"` // genes fetched per repository page
	Workers   int `yaml:"workers"`    // parallel decode workers

	// Database
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGeneScan returns GeneScan config with sensible defaults.
func DefaultGeneScan() GeneScan {
	return GeneScan{
		BatchSize: 500,
		Workers:   8,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "axiego",
			Password: "axiego",
			DBName:   "axiego",
			SSLMode:  "disable",
		},
	}
}

// LoadGeneScan loads scanner config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGeneScan(path string) (GeneScan, error) {
	cfg := DefaultGeneScan()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}
