// Command pipeline runs one batch pass over the campaign dataset: load,
// clean, transform, persist, report.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"campcli/internal/config"
	"campcli/internal/infrastructure"
	"campcli/internal/pipeline"
	"campcli/internal/report"
)

func main() {
	inPath := flag.String("in", "", "dataset file (.csv or .xlsx; defaults to data/dataset_final.csv relative to executable)")
	workbookPath := flag.String("workbook", "", "chart workbook output (defaults to data/reports/campaign_charts.xlsx)")
	manifestPath := flag.String("manifest", "", "chart manifest output (defaults to data/reports/charts.json)")
	skipCharts := flag.Bool("skip-charts", false, "persist the processed dataset without rendering charts")
	flag.Parse()

	// Initialize paths first to get default locations
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("pipeline.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	datasetPath := resolveInput(*inPath, cfg, paths)
	workbook := resolveOutput(*workbookPath, cfg.Pipeline.WorkbookFile, paths)
	manifest := resolveOutput(*manifestPath, cfg.Pipeline.ManifestFile, paths)

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.InfoContext(ctx, "starting campaign dataset pipeline",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("dataset", datasetPath),
		slog.String("workbook", workbook),
		slog.Bool("skip_charts", *skipCharts))

	var visualizer pipeline.Visualizer
	if !*skipCharts {
		visualizer = report.NewVisualizer(logger, workbook, manifest)
	}

	runner := pipeline.NewRunner(logger,
		pipeline.NewLoader(logger),
		pipeline.NewCleaner(logger, config.DefaultVocabulary()),
		pipeline.NewTransformer(logger, config.DurationBuckets()),
		visualizer)

	if err := runner.Run(ctx, datasetPath); err != nil {
		logger.ErrorContext(ctx, "pipeline run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "pipeline run complete")
}

// resolveInput picks the dataset path: the flag wins, then the configured
// file name resolved against the data directory.
func resolveInput(flagValue string, cfg *config.Config, paths *config.Paths) string {
	if flagValue != "" {
		return flagValue
	}
	if filepath.IsAbs(cfg.Pipeline.DatasetFile) {
		return cfg.Pipeline.DatasetFile
	}
	return paths.GetDataPath(cfg.Pipeline.DatasetFile)
}

// resolveOutput picks a report output path: the flag wins, then the
// configured file name resolved against the reports directory.
func resolveOutput(flagValue, configured string, paths *config.Paths) string {
	if flagValue != "" {
		return flagValue
	}
	if filepath.IsAbs(configured) {
		return configured
	}
	return paths.GetReportPath(configured)
}
