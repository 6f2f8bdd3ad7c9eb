package report

import (
	"context"
	"log/slog"

	"campcli/internal/dataset"
)

// Visualizer builds the report artifacts from the transformed table and
// hands them to both renderers. It satisfies the pipeline's Visualizer
// contract.
type Visualizer struct {
	logger       *slog.Logger
	workbookPath string
	manifestPath string
	excel        *ExcelRenderer
	quickchart   *QuickChartRenderer
}

// NewVisualizer creates the reporting stage. The workbook and manifest are
// written to the given paths on every render.
func NewVisualizer(logger *slog.Logger, workbookPath, manifestPath string) *Visualizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Visualizer{
		logger:       logger,
		workbookPath: workbookPath,
		manifestPath: manifestPath,
		excel:        NewExcelRenderer(logger),
		quickchart:   NewQuickChartRenderer(logger),
	}
}

// Render aggregates the table into the fixed artifact sequence and renders
// the workbook, then the manifest. The table is read only; no artifact
// feeds back into the pipeline.
func (v *Visualizer) Render(ctx context.Context, t *dataset.Table) error {
	artifacts, err := BuildArtifacts(t)
	if err != nil {
		return err
	}

	v.logger.InfoContext(ctx, "rendering report artifacts",
		slog.Int("artifact_count", len(artifacts)),
		slog.Int("rows", t.NumRows()))

	if err := v.excel.Render(ctx, v.workbookPath, artifacts); err != nil {
		return err
	}
	return v.quickchart.Render(ctx, v.manifestPath, artifacts)
}
