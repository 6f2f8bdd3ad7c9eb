package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "campcli/internal/errors"
)

// ExcelRenderer writes the report artifacts into a single workbook: one
// sheet per artifact holding the aggregated data block and an embedded
// native chart.
type ExcelRenderer struct {
	logger *slog.Logger
}

// NewExcelRenderer creates an Excel renderer.
func NewExcelRenderer(logger *slog.Logger) *ExcelRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelRenderer{logger: logger}
}

// Render writes the workbook to path. Sheets appear in artifact order. The
// workbook handle is closed before Render returns, even when a sheet fails.
func (r *ExcelRenderer) Render(ctx context.Context, path string, artifacts []Artifact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create report directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, artifact := range artifacts {
		if err := r.renderSheet(f, i, artifact); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save chart workbook", err)
	}

	r.logger.InfoContext(ctx, "chart workbook written",
		slog.String("path", path),
		slog.Int("chart_count", len(artifacts)))

	return nil
}

// renderSheet writes one artifact's data block and chart. The first
// artifact reuses the default sheet so the workbook has no empty leftover.
func (r *ExcelRenderer) renderSheet(f *excelize.File, index int, artifact Artifact) error {
	sheet := artifact.Name
	if index == 0 {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return apperrors.NewStorageError("failed to rename sheet", err)
		}
	} else {
		if _, err := f.NewSheet(sheet); err != nil {
			return apperrors.NewStorageError("failed to add sheet "+sheet, err)
		}
	}

	// Header row: x label then one column per series.
	header := make([]interface{}, 0, len(artifact.Series)+1)
	header = append(header, artifact.XLabel)
	for _, s := range artifact.Series {
		header = append(header, s.Name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write header row", err)
	}

	for i, label := range artifact.Labels {
		row := make([]interface{}, 0, len(artifact.Series)+1)
		row = append(row, label)
		for _, s := range artifact.Series {
			row = append(row, s.Values[i])
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.NewStorageError("failed to write data row", err)
		}
	}

	return r.addChart(f, sheet, artifact)
}

func (r *ExcelRenderer) addChart(f *excelize.File, sheet string, artifact Artifact) error {
	lastRow := len(artifact.Labels) + 1
	categories := fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, lastRow)

	series := make([]excelize.ChartSeries, len(artifact.Series))
	for i, s := range artifact.Series {
		col := columnName(i + 1)
		series[i] = excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, col),
			Categories: categories,
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, col, col, lastRow),
			Fill:       excelize.Fill{Type: "pattern", Color: []string{s.Color}, Pattern: 1},
		}
		if artifact.Kind == ChartLine {
			series[i].Marker = excelize.ChartMarker{Symbol: "circle", Size: 5}
		}
	}

	chartType := excelize.Col
	if artifact.Kind == ChartLine {
		chartType = excelize.Line
	}

	chart := &excelize.Chart{
		Type:   chartType,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: artifact.Title}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: artifact.XLabel}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: artifact.YLabel}}},
		Legend: excelize.ChartLegend{Position: "top"},
	}

	anchor := fmt.Sprintf("%s2", columnName(len(artifact.Series)+3))
	if err := f.AddChart(sheet, anchor, chart); err != nil {
		return apperrors.NewStorageError("failed to add chart to sheet "+sheet, err)
	}
	return nil
}

// columnName converts a zero-based column index to its spreadsheet letter.
func columnName(index int) string {
	name, _ := excelize.ColumnNumberToName(index + 1)
	return name
}
