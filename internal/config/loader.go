package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads the full server configuration and validates it.
//
// Values come from the YAML file named by CONFIG_PATH (default ./config.yaml),
// overridden by environment variables, with env-default tags filling the
// rest. A missing default file is fine; a missing CONFIG_PATH file is not.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// MigrateConfig is the part of Config the offline commands need.
type MigrateConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// LoadMigrate reads only the database and log sections, so migrate and
// seeder run without OAuth or mail settings.
func LoadMigrate() (*MigrateConfig, error) {
	var cfg MigrateConfig
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if cfg.Database.DSN == "" {
		return nil, errors.New("config: database.dsn is required")
	}
	return &cfg, nil
}

// Usage describes every supported environment variable for -help.
func Usage() (string, error) {
	var cfg Config
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return "", fmt.Errorf("config: describe: %w", err)
	}
	return desc, nil
}

func read(cfg any) error {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
