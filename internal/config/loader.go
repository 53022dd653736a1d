package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if BEAMPLOT_CONFIG is set
//  3. env (prefix BEAMPLOT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("BEAMPLOT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: BEAMPLOT_RESULTS_DIR, BEAMPLOT_RUN_NUMBER, ...
	// Map env keys like BEAMPLOT_GRID_ROWS -> grid_rows (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("BEAMPLOT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "beamplot_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.ResultsDir == "":
		return fmt.Errorf("%w: results_dir must not be empty", ErrInvalidConfig)
	case c.GridRows < 1 || c.GridCols < 1:
		return fmt.Errorf("%w: grid dimensions must be positive", ErrInvalidConfig)
	case c.ShowerBinStep <= 0 || c.LayerBinStep <= 0 || c.ChannelBinStep <= 0:
		return fmt.Errorf("%w: bin steps must be positive", ErrInvalidConfig)
	case len(c.Layers) == 0:
		return fmt.Errorf("%w: at least one layer is required", ErrInvalidConfig)
	}
	return nil
}
