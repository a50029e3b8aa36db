package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	app "github.com/okian/halfcourt/internal/app"
	"github.com/okian/halfcourt/internal/config"
	"github.com/okian/halfcourt/pkg/logger"
)

func main() {
	var (
		input  = flag.String("input", "", "Play-by-play CSV path (overrides HALFCOURT_INPUT)")
		output = flag.String("out", "", "Output directory (overrides HALFCOURT_OUTPUT_DIR)")
	)
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.OutputDir = *output
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	dims, err := cfg.Dimensions()
	if err != nil {
		os.Stderr.WriteString("invalid court preset: " + err.Error() + "\n")
		os.Exit(1)
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithCourtDimensions(dims),
		app.WithArcStep(cfg.ArcStep),
		app.WithBinCount(cfg.HexBins),
		app.WithDistancePrecision(cfg.DistancePrecision),
		app.WithDedupeSize(cfg.DedupeSize),
		app.WithInput(cfg.Input),
		app.WithOutputDir(cfg.OutputDir),
		app.WithMetricsTextfile(cfg.MetricsTextfile),
		app.WithPixelsPerFoot(cfg.PixelsPerFoot),
	)

	sum, err := svc.Run(ctx)
	if err != nil {
		os.Stderr.WriteString("run failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	loggerInstance.Info(ctx, "shot charts written",
		logger.Int("rows_read", sum.RowsRead),
		logger.Int("shots", sum.Report.Transformed),
		logger.Int("hex_cells", sum.Cells),
		logger.Int("groups", len(sum.Groups)),
		logger.String("output_dir", cfg.OutputDir))
}
