// Package service wires the shot-chart pipeline: ingest raw play-by-play
// rows, drop duplicates, transform into the court frame, aggregate by
// group and hexagon, and render the charts.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/halfcourt/internal/adapters/ingest"
	"github.com/okian/halfcourt/internal/adapters/render"
	"github.com/okian/halfcourt/internal/adapters/repository"
	"github.com/okian/halfcourt/internal/domain/court"
	"github.com/okian/halfcourt/internal/domain/dedupe"
	"github.com/okian/halfcourt/internal/domain/hexbin"
	"github.com/okian/halfcourt/internal/domain/model"
	"github.com/okian/halfcourt/internal/domain/shot"
	"github.com/okian/halfcourt/internal/domain/types"
	"github.com/okian/halfcourt/pkg/logger"
	"github.com/okian/halfcourt/pkg/metrics"
)

// Output file names.
const (
	shotChartFile   = "shot_chart.svg"
	countHeatFile   = "shot_count_heatmap.svg"
	pctHeatFile     = "shot_pct_heatmap.svg"
	summaryFile     = "summary.json"
	outputDirPerm   = 0o750
	summaryFilePerm = 0o640
)

// Summary reports what one run produced.
type Summary struct {
	RowsRead   int               `json:"rows_read"`
	Duplicates int               `json:"duplicates"`
	Report     shot.Report       `json:"filter_report"`
	Cells      int               `json:"hex_cells"`
	Groups     []types.GroupStat `json:"groups"`
}

// Service runs the batch pipeline.
type Service struct {
	dims            court.Dimensions
	arcStep         float64
	bins            int
	precision       int
	dedupeSize      int
	input           string
	outputDir       string
	metricsTextfile string
	pixelsPerFoot   int

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dims:          court.NCAA(),
		arcStep:       0.05,
		bins:          30,
		precision:     3,
		dedupeSize:    500_000,
		outputDir:     "out",
		pixelsPerFoot: 10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one batch end to end and writes the charts, the summary
// table, and (when configured) the metrics textfile.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	if s.logger == nil {
		_ = logger.Init()
		s.logger = logger.Get()
	}
	if s.input == "" {
		return nil, ErrNoInput
	}

	// Ingest.
	start := time.Now()
	rows, err := ingest.ReadFile(s.input)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	metrics.AddRowsRead(len(rows))
	metrics.ObserveStageDuration(metrics.StageIngest, time.Since(start).Seconds())
	s.logger.Info(ctx, "feed read", logger.String("input", s.input), logger.Int("rows", len(rows)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Dedupe.
	deduper := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	unique := make([]model.ShotEvent, 0, len(rows))
	for _, row := range rows {
		if deduper.SeenAndRecord(ctx, row.ID) {
			continue
		}
		unique = append(unique, row)
	}
	duplicates := len(rows) - len(unique)
	metrics.AddRowsDropped(metrics.ReasonDuplicate, duplicates)

	// Transform.
	start = time.Now()
	transformer := shot.NewTransformer(
		shot.WithFrame(s.dims.HalfLength, s.dims.HalfWidth),
		shot.WithRimOffset(s.dims.RimCenterX),
		shot.WithPrecision(s.precision),
	)
	shots, report := transformer.TransformAll(unique)
	metrics.AddRowsDropped(metrics.ReasonMissingCoordinate, report.MissingCoordinate)
	metrics.AddRowsDropped(metrics.ReasonUnknownType, report.UnknownType)
	metrics.AddShotsKept(report.Transformed)
	metrics.AddSuspects(report.Suspect)
	metrics.ObserveStageDuration(metrics.StageTransform, time.Since(start).Seconds())
	s.logger.Info(ctx, "batch transformed",
		logger.Int("kept", report.Transformed),
		logger.Int("missing_coordinate", report.MissingCoordinate),
		logger.Int("unknown_type", report.UnknownType),
		logger.Int("suspect", report.Suspect),
		logger.Int("duplicates", duplicates))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Group aggregates.
	store := repository.NewMemStore(repository.WithRatioPrecision(s.precision))
	for _, ts := range shots {
		if err := store.Record(ctx, ts); err != nil {
			return nil, fmt.Errorf("aggregate: %w", err)
		}
	}
	groups, err := store.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	metrics.SetGroupsTracked(len(groups))

	// Hex binning.
	start = time.Now()
	grid, err := hexbin.New(s.bins, hexbin.WithExtent(
		-s.dims.HalfLength, s.dims.HalfLength, -s.dims.HalfWidth, s.dims.HalfWidth))
	if err != nil {
		return nil, fmt.Errorf("hexbin: %w", err)
	}
	cells := grid.Bin(shots)
	metrics.SetHexCells(len(cells))
	metrics.ObserveStageDuration(metrics.StageBin, time.Since(start).Seconds())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Render and write outputs.
	start = time.Now()
	if err := s.writeOutputs(shots, cells, grid.CellWidth(), groups, duplicates, report); err != nil {
		return nil, err
	}
	metrics.ObserveStageDuration(metrics.StageRender, time.Since(start).Seconds())

	if s.metricsTextfile != "" {
		if err := metrics.WriteTextfile(s.metricsTextfile); err != nil {
			s.logger.Warn(ctx, "metrics textfile not written", logger.Error(err))
		}
	}

	sum := &Summary{
		RowsRead:   len(rows),
		Duplicates: duplicates,
		Report:     report,
		Cells:      len(cells),
		Groups:     groups,
	}
	s.logger.Info(ctx, "run complete",
		logger.Int("charts", 3),
		logger.Int("groups", len(groups)),
		logger.String("output_dir", s.outputDir))
	return sum, nil
}

func (s *Service) writeOutputs(shots []model.TransformedShot, cells []hexbin.Cell, cellWidth float64, groups []types.GroupStat, duplicates int, report shot.Report) error {
	if err := os.MkdirAll(s.outputDir, outputDirPerm); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	segments := court.NewGenerator(
		court.WithDimensions(s.dims),
		court.WithArcStep(s.arcStep),
	).Generate()
	renderer := render.New(
		render.WithPixelsPerFoot(s.pixelsPerFoot),
		render.WithExtent(-s.dims.HalfLength, s.dims.HalfLength, -s.dims.HalfWidth, s.dims.HalfWidth),
	)

	made := 0
	for _, ts := range shots {
		if ts.Made {
			made++
		}
	}
	caption := fmt.Sprintf("%d attempts, %d made", len(shots), made)
	if len(shots) > 0 {
		caption = fmt.Sprintf("%s (%.1f%%)", caption, 100*float64(made)/float64(len(shots)))
	}

	charts := []struct {
		name string
		draw func(f *os.File)
	}{
		{shotChartFile, func(f *os.File) { renderer.ShotChart(f, segments, shots, caption) }},
		{countHeatFile, func(f *os.File) {
			renderer.HeatMap(f, segments, cells, cellWidth, render.CountView, "total shots per cell")
		}},
		{pctHeatFile, func(f *os.File) {
			renderer.HeatMap(f, segments, cells, cellWidth, render.ProportionView, "proportion made per cell")
		}},
	}
	for _, chart := range charts {
		f, err := os.Create(filepath.Join(s.outputDir, chart.name))
		if err != nil {
			return fmt.Errorf("chart %s: %w", chart.name, err)
		}
		chart.draw(f)
		if err := f.Close(); err != nil {
			return fmt.Errorf("chart %s: %w", chart.name, err)
		}
		metrics.RecordChartWritten()
	}

	sum := Summary{
		RowsRead:   report.Input + duplicates,
		Duplicates: duplicates,
		Report:     report,
		Cells:      len(cells),
		Groups:     groups,
	}
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.outputDir, summaryFile), data, summaryFilePerm); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return nil
}
