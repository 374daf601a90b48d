package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/user/xyplot_go/internal/analysis"
	"github.com/user/xyplot_go/internal/config"
	"github.com/user/xyplot_go/internal/logging"
	"github.com/user/xyplot_go/internal/parser"
	"github.com/user/xyplot_go/internal/report"
	"github.com/user/xyplot_go/internal/viewer"
)

// run reads data<suffix>.txt from the working directory and shows the
// y1/y2-against-x chart. It returns once the viewer is closed.
//
// stdout receives only the resolved file name, written once the file is
// open; logs go to stderr.
func run(ctx context.Context, args []string, getenv func(key string) string, stdout, stderr io.Writer) error {
	var positional []string
	if len(args) > 1 {
		positional = args[1:]
	}
	suffix, err := config.SuffixFromArgs(positional)
	if err != nil {
		return err
	}

	cfg, err := config.FromEnv(getenv)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(logging.NewHandler(stderr, cfg.LogLevel))

	renderer, err := report.NewRenderer(cfg.Renderer, logger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	view, err := viewer.New(cfg.Viewer, logger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fileName := config.FileName(suffix)
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()
	fmt.Fprintln(stdout, fileName)

	ds, err := parser.ParseDataset(file)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileName, err)
	}
	// Release the handle before the viewer blocks.
	file.Close()

	summary := analysis.Summarize(ds)
	logger.Info("dataset loaded",
		"file", fileName,
		"rows", summary.Rows,
		"x_min", summary.X.Min,
		"x_max", summary.X.Max)

	chart, err := renderer.Render(ds, report.DefaultChartSpec(cfg.Width, cfg.Height))
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	logger.Debug("chart rendered",
		"renderer", cfg.Renderer,
		"width", cfg.Width,
		"height", cfg.Height,
		"png_bytes", len(chart.PNG))

	if err := view.Show(ctx, chart); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("viewer %s failed: %w", cfg.Viewer, err)
	}
	return nil
}
