// Package config loads extraction parameters and stoplist extensions from
// YAML files and assembles them into extractor options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/primer/pkg/primer"
	"github.com/cognicore/primer/pkg/primer/internalerr"
	"github.com/cognicore/primer/pkg/primer/rank"
	"github.com/cognicore/primer/pkg/primer/stoplist"
)

// Weights mirrors rank.Weights for YAML decoding.
type Weights struct {
	TF        float64 `yaml:"tf"`
	TextRank  float64 `yaml:"textrank"`
	Frequency float64 `yaml:"frequency"`
}

// Config is the on-disk configuration shape. Omitted fields keep their
// built-in defaults; stopword fields extend the compiled-in sets rather than
// replacing them.
type Config struct {
	Window       int      `yaml:"window"`
	Damping      float64  `yaml:"damping"`
	Iterations   int      `yaml:"iterations"`
	MaxTerms     int      `yaml:"max_terms"`
	Weights      *Weights `yaml:"weights"`
	ExtraStops   []string `yaml:"extra_stopwords"`
	ExtraGeneric []string `yaml:"extra_generic_terms"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Window < 0 {
		return fmt.Errorf("window %d must not be negative: %w", c.Window, internalerr.ErrInvalidConfig)
	}
	// Zero means "use the default"; anything else must be a valid factor.
	if c.Damping != 0 && (c.Damping < 0 || c.Damping >= 1) {
		return fmt.Errorf("damping %v must be in (0,1): %w", c.Damping, internalerr.ErrInvalidConfig)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations %d must not be negative: %w", c.Iterations, internalerr.ErrInvalidConfig)
	}
	if c.MaxTerms < 0 {
		return fmt.Errorf("max_terms %d must not be negative: %w", c.MaxTerms, internalerr.ErrInvalidConfig)
	}
	if w := c.Weights; w != nil {
		if w.TF < 0 || w.TextRank < 0 || w.Frequency < 0 {
			return fmt.Errorf("weights must not be negative: %w", internalerr.ErrInvalidConfig)
		}
		if w.TF+w.TextRank+w.Frequency == 0 {
			return fmt.Errorf("weights must not all be zero: %w", internalerr.ErrInvalidConfig)
		}
	}
	return nil
}

// Options converts the config into extractor options, filling the stoplist.
func (c *Config) Options() primer.Options {
	opts := primer.Options{
		Window:     c.Window,
		Damping:    c.Damping,
		Iterations: c.Iterations,
		MaxTerms:   c.MaxTerms,
	}
	if c.Weights != nil {
		opts.Weights = rank.Weights{
			TF:        c.Weights.TF,
			TextRank:  c.Weights.TextRank,
			Frequency: c.Weights.Frequency,
		}
	}
	if len(c.ExtraStops) > 0 || len(c.ExtraGeneric) > 0 {
		opts.Stoplist = stoplist.Custom(c.ExtraStops, c.ExtraGeneric)
	}
	return opts
}

// Loader resolves a config path into ready-to-use options. An empty path
// yields pure defaults, matching how the engine runs without any file.
type Loader struct {
	Path string
}

// Load reads the config if a path is set and returns extractor options.
func (l Loader) Load() (primer.Options, error) {
	if l.Path == "" {
		return primer.Options{}, nil
	}
	cfg, err := Load(l.Path)
	if err != nil {
		return primer.Options{}, err
	}
	return cfg.Options(), nil
}
