package seeder

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds project import settings.
type Config struct {
	ProjectsPath string `yaml:"projects_path" env:"SEEDER_PROJECTS_PATH"`
	DryRun       bool   `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// Overrides are command-line values that win over the file and environment.
type Overrides struct {
	File   string
	DryRun bool
}

// LoadConfig reads settings from the YAML file at path when given, otherwise
// from the environment, applies o, and checks that the export file exists.
func LoadConfig(path string, o Overrides) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("seeder.LoadConfig: %w", err)
	}

	if o.File != "" {
		cfg.ProjectsPath = o.File
	}
	cfg.DryRun = cfg.DryRun || o.DryRun

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("seeder.LoadConfig: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ProjectsPath == "" {
		return errors.New("no input file: pass --file or set SEEDER_PROJECTS_PATH")
	}
	info, err := os.Stat(c.ProjectsPath)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input file %s is a directory", c.ProjectsPath)
	}
	return nil
}
