// Package metrics provides Prometheus metrics for the halfcourt pipeline.
//
// The pipeline is a one-shot batch job with no HTTP surface, so metrics
// are not served: at the end of a run they are written with
// prometheus.WriteToTextfile for a node-exporter textfile collector to
// pick up.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reason label values used with RecordRowDropped.
const (
	ReasonMissingCoordinate = "missing_coordinate"
	ReasonUnknownType       = "unknown_type"
	ReasonDuplicate         = "duplicate"
)

// Pipeline stage label values used with ObserveStageDuration.
const (
	StageIngest    = "ingest"
	StageTransform = "transform"
	StageBin       = "bin"
	StageRender    = "render"
)

// Manager manages all Prometheus metrics for the pipeline.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  *prometheus.Registry

	// Row accounting
	rowsRead    prometheus.Counter
	rowsDropped *prometheus.CounterVec
	shotsKept   prometheus.Counter
	suspects    prometheus.Counter

	// Output accounting
	hexCells      prometheus.Gauge
	groupsTracked prometheus.Gauge
	chartsWritten prometheus.Counter

	// Stage timings
	stageDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "halfcourt",
		subsystem: "pipeline",
		enabled:   true,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_read_total",
		Help:      "Total raw play-by-play rows read from the feed",
	})

	m.rowsDropped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_dropped_total",
		Help:      "Rows excluded from the transformed set, by reason",
	}, []string{"reason"})

	m.shotsKept = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "shots_transformed_total",
		Help:      "Rows that survived filtering and were transformed",
	})

	m.suspects = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "shots_suspect_total",
		Help:      "Transformed shots whose coordinates fall outside the playing surface",
	})

	m.hexCells = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hex_cells",
		Help:      "Non-empty hexagon cells produced by the last binning",
	})

	m.groupsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregate_groups",
		Help:      "Distinct (season, event type) groups in the summary table",
	})

	m.chartsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "charts_written_total",
		Help:      "SVG charts written to the output directory",
	})

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_duration_seconds",
		Help:      "Wall time per pipeline stage",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})
}

// Manager methods mirror the package-level helpers for callers holding a
// non-global instance (tests, mostly).

func (m *Manager) AddRowsRead(n int) {
	if m.enabled {
		m.rowsRead.Add(float64(n))
	}
}

func (m *Manager) AddRowsDropped(reason string, n int) {
	if m.enabled {
		m.rowsDropped.WithLabelValues(reason).Add(float64(n))
	}
}

func (m *Manager) AddShotsKept(n int) {
	if m.enabled {
		m.shotsKept.Add(float64(n))
	}
}

func (m *Manager) AddSuspects(n int) {
	if m.enabled {
		m.suspects.Add(float64(n))
	}
}

func (m *Manager) SetHexCells(n int) {
	if m.enabled {
		m.hexCells.Set(float64(n))
	}
}

func (m *Manager) SetGroupsTracked(n int) {
	if m.enabled {
		m.groupsTracked.Set(float64(n))
	}
}

func (m *Manager) RecordChartWritten() {
	if m.enabled {
		m.chartsWritten.Inc()
	}
}

func (m *Manager) ObserveStageDuration(stage string, seconds float64) {
	if m.enabled {
		m.stageDuration.WithLabelValues(stage).Observe(seconds)
	}
}

// WriteTextfile dumps the manager's registry in the Prometheus text format
// for a textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTextfile, err)
	}
	return nil
}

// Registry returns the manager's registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Package-level helpers acting on the global manager.

func AddRowsRead(n int)                   { globalManager.AddRowsRead(n) }
func AddRowsDropped(reason string, n int) { globalManager.AddRowsDropped(reason, n) }
func AddShotsKept(n int)                  { globalManager.AddShotsKept(n) }
func AddSuspects(n int)                   { globalManager.AddSuspects(n) }
func SetHexCells(n int)                   { globalManager.SetHexCells(n) }
func SetGroupsTracked(n int)              { globalManager.SetGroupsTracked(n) }
func RecordChartWritten()                 { globalManager.RecordChartWritten() }

func ObserveStageDuration(stage string, secs float64) {
	globalManager.ObserveStageDuration(stage, secs)
}

func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }

func GetRegistry() *prometheus.Registry { return globalManager.Registry() }
