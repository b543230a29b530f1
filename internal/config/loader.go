package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the registry configuration. Values come from the YAML file
// named by CONFIG_PATH (default ./config.yaml), then environment variables,
// then env-default tags. A missing default file is not an error; a missing
// explicit one is.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}
	return LoadFile(path, explicit)
}

// LoadFile is Load with the file location given by the caller.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case errors.Is(statErr, fs.ErrNotExist) && !required:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// normalize canonicalises free-form values so that later comparisons and
// URL joins do not depend on how an operator typed them.
func (c *Config) normalize() {
	c.Database.DSN = strings.TrimSpace(c.Database.DSN)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if base := strings.TrimRight(c.Storage.PublicBaseURL, "/"); base != "" {
		c.Storage.PublicBaseURL = base
	}
	c.Kafka.Topic = strings.TrimSpace(c.Kafka.Topic)
}
