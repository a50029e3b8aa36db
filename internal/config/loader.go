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
//  2. file (YAML) if HALFCOURT_CONFIG is set
//  3. env (prefix HALFCOURT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HALFCOURT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: HALFCOURT_HEX_BINS, HALFCOURT_INPUT, ...
	// Map env keys like HALFCOURT_HEX_BINS -> hex_bins (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("HALFCOURT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "halfcourt_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.Dimensions(); err != nil {
		return err
	}
	if c.HexBins <= 0 {
		return fmt.Errorf("hex_bins must be positive: %w", ErrInvalidConfig)
	}
	if c.ArcStep <= 0 {
		return fmt.Errorf("arc_step must be positive: %w", ErrInvalidConfig)
	}
	if c.DistancePrecision < 0 {
		return fmt.Errorf("distance_precision must not be negative: %w", ErrInvalidConfig)
	}
	if c.PixelsPerFoot <= 0 {
		return fmt.Errorf("pixels_per_foot must be positive: %w", ErrInvalidConfig)
	}
	return nil
}
