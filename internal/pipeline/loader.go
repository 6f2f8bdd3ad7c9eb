package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"campcli/internal/dataset"
)

// Loader reads the campaign dataset from disk.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load parses the file at path into a table, dispatching on the extension
// (.xlsx reads the first sheet of a workbook, everything else is treated as
// a delimited file). A missing file is the one recognized failure: it is
// reported through the returned error with os.ErrNotExist in its chain so
// the runner can halt the remaining stages without treating the run as
// failed. Any other I/O or structural error propagates.
func (l *Loader) Load(ctx context.Context, path string) (*dataset.Table, error) {
	var (
		table *dataset.Table
		err   error
	)

	if isWorkbook(path) {
		table, err = dataset.ReadXLSX(path)
	} else {
		table, err = dataset.ReadCSV(path)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.WarnContext(ctx, "dataset file does not exist",
				slog.String("path", path))
		} else {
			l.logger.ErrorContext(ctx, "failed to load dataset",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		slog.String("path", path),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumCols()))

	return table, nil
}

// isWorkbook reports whether a dataset path is an Excel workbook. The
// loader and the runner's persist step must agree on this, so the format a
// run writes back is the format it read.
func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
