package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"campcli/internal/config"
	"campcli/internal/dataset"
)

// Cleaner normalizes the raw campaign table into the canonical vocabulary.
// Every step tolerates an absent column: cleaning a partial extract is a
// smaller result, not a failure.
type Cleaner struct {
	logger *slog.Logger
	vocab  config.Vocabulary
}

// NewCleaner creates a cleaner driven by the given vocabulary.
func NewCleaner(logger *slog.Logger, vocab config.Vocabulary) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger, vocab: vocab}
}

// Clean mutates the table in place and returns the same handle. Steps, in
// order:
//
//  1. Drop the fixed unneeded columns.
//  2. Normalize remaining names (lowercase, spaces to underscores).
//  3. Apply the rename vocabulary.
//  4. Cast the date columns; unparseable values become nulls.
//  5. Null out negative call durations (invalid upstream input).
//  6. Cast the categorical columns.
//  7. Drop rows with a null in any key column.
//  8. Median-fill remaining nulls in every numeric column.
//
// After Clean returns, no key column holds a null and every numeric column
// with at least one observed value holds no nulls.
func (c *Cleaner) Clean(ctx context.Context, t *dataset.Table) *dataset.Table {
	t.Drop(c.vocab.DroppedColumns...)

	t.NormalizeNames(normalizeName)
	t.RenameAll(c.vocab.Renames)

	for _, name := range c.vocab.DateColumns {
		if col, ok := t.Column(name); ok {
			col.CastDate(c.vocab.DateLayouts)
		}
	}

	if col, ok := t.Column(config.ColDuracionLlamada); ok && col.Kind == dataset.KindNumber {
		invalid := 0
		for i, cell := range col.Cells {
			if !cell.Null && cell.Num < 0 {
				col.Cells[i] = dataset.Null()
				invalid++
			}
		}
		if invalid > 0 {
			c.logger.WarnContext(ctx, "negative call durations rejected",
				slog.Int("count", invalid))
		}
	}

	for _, name := range c.vocab.CategoricalColumns {
		if col, ok := t.Column(name); ok {
			col.CastCategory()
		}
	}

	dropped := c.dropRowsMissingKeys(t)
	filled := c.fillNumericNulls(t)

	c.logger.InfoContext(ctx, "dataset cleaned",
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()),
		slog.Int("rows_dropped", dropped),
		slog.Int("values_filled", filled))

	return t
}

// dropRowsMissingKeys removes every row with a null in one of the key
// categorical columns.
func (c *Cleaner) dropRowsMissingKeys(t *dataset.Table) int {
	var keyCols []*dataset.Column
	for _, name := range c.vocab.KeyColumns {
		if col, ok := t.Column(name); ok {
			keyCols = append(keyCols, col)
		}
	}
	if len(keyCols) == 0 {
		return 0
	}

	return t.FilterRows(func(row int) bool {
		for _, col := range keyCols {
			if col.IsNull(row) {
				return false
			}
		}
		return true
	})
}

// fillNumericNulls replaces nulls in each numeric column with that column's
// median, computed after the key-column row drop.
func (c *Cleaner) fillNumericNulls(t *dataset.Table) int {
	filled := 0
	for _, col := range t.Columns() {
		if col.Kind != dataset.KindNumber {
			continue
		}
		median, ok := col.Median()
		if !ok {
			continue
		}
		filled += col.FillNulls(dataset.Number(median))
	}
	return filled
}

// normalizeName lowercases a column name and replaces spaces with
// underscores.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
