// Package config loads the dashboard renderer settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/fr4nk3nst1ner/jobdash/internal/generator"
	"github.com/fr4nk3nst1ner/jobdash/internal/render"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "jobdash.yaml"

// Config represents the renderer configuration
type Config struct {
	Document     string  `yaml:"document" validate:"required"`
	Count        int     `yaml:"count" validate:"gte=0"`
	PreviewLimit int     `yaml:"preview_limit" validate:"gte=0"`
	OnsiteBias   float64 `yaml:"onsite_bias" validate:"gte=0,lte=1"`
	// Seed fixes the random source; 0 means seed from the clock
	Seed int64 `yaml:"seed"`
}

// Default returns the settings used when no config file is present
func Default() *Config {
	return &Config{
		Document:     render.DefaultDocument,
		Count:        generator.DefaultCount,
		PreviewLimit: render.DefaultPreviewLimit,
		OnsiteBias:   generator.DefaultOnsiteBias,
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file at the default path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// fall through with defaults
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides the document path and batch size from JOBDASH_* variables
func (c *Config) applyEnv() error {
	if doc := os.Getenv("JOBDASH_DOCUMENT"); doc != "" {
		c.Document = doc
	}
	if count := os.Getenv("JOBDASH_COUNT"); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return fmt.Errorf("invalid JOBDASH_COUNT %q: %w", count, err)
		}
		c.Count = n
	}
	return nil
}

// Validate checks that the configuration has usable values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
