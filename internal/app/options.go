package service

import (
	"github.com/okian/halfcourt/internal/domain/court"
	"github.com/okian/halfcourt/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCourtDimensions sets the court standard used for the transform
// frame, the backdrop and the bin extent.
func WithCourtDimensions(d court.Dimensions) Option {
	return func(s *Service) {
		s.dims = d
	}
}

// WithArcStep sets the backdrop arc sampling step in feet.
func WithArcStep(step float64) Option {
	return func(s *Service) {
		if step > 0 {
			s.arcStep = step
		}
	}
}

// WithBinCount sets the number of hexagon columns across the court.
func WithBinCount(bins int) Option {
	return func(s *Service) {
		if bins > 0 {
			s.bins = bins
		}
	}
}

// WithDistancePrecision sets the decimals kept on distances and ratios.
func WithDistancePrecision(decimals int) Option {
	return func(s *Service) {
		if decimals >= 0 {
			s.precision = decimals
		}
	}
}

// WithDedupeSize bounds the seen-event cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithInput sets the play-by-play CSV path.
func WithInput(path string) Option {
	return func(s *Service) {
		s.input = path
	}
}

// WithOutputDir sets where charts and the summary table are written.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.outputDir = dir
		}
	}
}

// WithMetricsTextfile enables the end-of-run Prometheus textfile dump.
func WithMetricsTextfile(path string) Option {
	return func(s *Service) {
		s.metricsTextfile = path
	}
}

// WithPixelsPerFoot sets the chart canvas scale.
func WithPixelsPerFoot(ppf int) Option {
	return func(s *Service) {
		if ppf > 0 {
			s.pixelsPerFoot = ppf
		}
	}
}
