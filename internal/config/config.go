// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and HALFCOURT_ env vars.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"fmt"
	"strings"

	"github.com/okian/halfcourt/internal/domain/court"
)

// Court preset names.
const (
	PresetNCAA = "ncaa"
	PresetNBA  = "nba"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CourtPreset selects the court dimensions: ncaa or nba.
	CourtPreset string `koanf:"court_preset"`

	// ArcStep is the arc length in feet between sampled points on curves.
	ArcStep float64 `koanf:"arc_step"`

	// HexBins is the number of hexagon columns spanning the court length.
	HexBins int `koanf:"hex_bins"`

	// DistancePrecision is the number of decimals shot distances keep.
	DistancePrecision int `koanf:"distance_precision"`

	// Input is the play-by-play CSV path.
	Input string `koanf:"input"`

	// OutputDir receives the rendered charts and the summary table.
	OutputDir string `koanf:"output_dir"`

	// DedupeSize bounds the seen-event cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MetricsTextfile, when set, receives a Prometheus text-format dump at
	// the end of the run.
	MetricsTextfile string `koanf:"metrics_textfile"`

	// PixelsPerFoot sets the chart canvas scale.
	PixelsPerFoot int `koanf:"pixels_per_foot"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		CourtPreset:       PresetNCAA,
		ArcStep:           0.05,
		HexBins:           30,
		DistancePrecision: 3,
		OutputDir:         "out",
		DedupeSize:        500_000,
		PixelsPerFoot:     10,
	}
}

// Dimensions resolves the configured court preset.
func (c *Config) Dimensions() (court.Dimensions, error) {
	switch strings.ToLower(c.CourtPreset) {
	case "", PresetNCAA:
		return court.NCAA(), nil
	case PresetNBA:
		return court.NBA(), nil
	default:
		return court.Dimensions{}, fmt.Errorf("court_preset %q: %w", c.CourtPreset, ErrInvalidConfig)
	}
}
