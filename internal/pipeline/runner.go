package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"campcli/internal/dataset"
)

// Visualizer renders reporting artifacts from the fully transformed table.
// It is the one external collaborator of the runner; the chart internals
// are a black box to the pipeline.
type Visualizer interface {
	Render(ctx context.Context, t *dataset.Table) error
}

// Runner composes the pipeline stages over a single table instance:
// load, clean, transform, persist, report. The table is owned by exactly
// one stage at a time and never accessed concurrently.
type Runner struct {
	logger      *slog.Logger
	loader      *Loader
	cleaner     *Cleaner
	transformer *Transformer
	visualizer  Visualizer
}

// NewRunner wires the stages together. The visualizer may be nil, in which
// case the run stops after persisting the transformed table.
func NewRunner(logger *slog.Logger, loader *Loader, cleaner *Cleaner, transformer *Transformer, visualizer Visualizer) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:      logger,
		loader:      loader,
		cleaner:     cleaner,
		transformer: transformer,
		visualizer:  visualizer,
	}
}

// Run executes one batch pass over the dataset at datasetPath. The cleaned
// and transformed table is written back to the same path, in the format it
// was loaded from, before any chart is rendered, so a rendering failure
// never loses the processed data.
//
// A missing dataset is not an error: the run logs the condition and simply
// does less work. Every other failure propagates.
func (r *Runner) Run(ctx context.Context, datasetPath string) error {
	table, err := r.loader.Load(ctx, datasetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.WarnContext(ctx, "dataset not found, nothing to process",
				slog.String("path", datasetPath))
			fmt.Println("Error: dataset file not found")
			return nil
		}
		return err
	}
	fmt.Println("Dataset loaded successfully")

	table = r.cleaner.Clean(ctx, table)

	table, err = r.transformer.Transform(ctx, table)
	if err != nil {
		return err
	}

	if isWorkbook(datasetPath) {
		err = dataset.WriteXLSX(datasetPath, table)
	} else {
		err = dataset.WriteCSV(datasetPath, table, dataset.WriteOptions{})
	}
	if err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "processed dataset saved",
		slog.String("path", datasetPath),
		slog.Int("rows", table.NumRows()))

	if r.visualizer == nil {
		return nil
	}
	return r.visualizer.Render(ctx, table)
}
