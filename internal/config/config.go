// Package config holds the settings for a counter run.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultWorkers    int = 2
	defaultIterations int = 10000
)

var ErrInvalid = errors.New("invalid configuration")

// Config describes how a run drives the counter.
type Config struct {
	Initial    int  `yaml:"initial"`
	Workers    int  `yaml:"workers"`
	Iterations int  `yaml:"iterations"`
	Verify     bool `yaml:"verify"`
	Progress   bool `yaml:"progress"`
}

// Default returns two workers of ten thousand increments each, starting at 0.
func Default() Config {
	return Config{
		Workers:    defaultWorkers,
		Iterations: defaultIterations,
	}
}

/*
Load returns the defaults overlaid with the YAML file at path. Keys missing
from the file keep their default values. An empty path returns the defaults.
*/
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}

	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file %s", path)
	}

	return cfg, nil
}

// Validate returns an error wrapping ErrInvalid if cfg cannot drive a run.
func (cfg Config) Validate() error {
	if cfg.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Iterations < 0 {
		return errors.Wrapf(ErrInvalid, "iterations must not be negative, got %d", cfg.Iterations)
	}
	return nil
}
