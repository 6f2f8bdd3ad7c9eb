package pipeline

import (
	"context"
	"log/slog"
	"time"

	"campcli/internal/config"
	"campcli/internal/dataset"
	apperrors "campcli/internal/errors"
)

// Transformer derives the analysis columns from the cleaned table.
type Transformer struct {
	logger  *slog.Logger
	buckets []config.DurationBucket
}

// NewTransformer creates a transformer with the given duration buckets.
func NewTransformer(logger *slog.Logger, buckets []config.DurationBucket) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{logger: logger, buckets: buckets}
}

// Transform adds dias_desde_registro (whole days between registration and
// contact, negative when contact precedes registration, null when either
// date is null) and categoria_duracion (the duration bucket label, null for
// a null or negative duration). The source columns must exist: a table that
// reached this stage without them is a pipeline wiring defect, and the
// error propagates.
func (tr *Transformer) Transform(ctx context.Context, t *dataset.Table) (*dataset.Table, error) {
	if err := tr.addDaysSinceRegistration(t); err != nil {
		return nil, err
	}
	if err := tr.addDurationCategory(t); err != nil {
		return nil, err
	}

	tr.logger.InfoContext(ctx, "transformations applied",
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()))

	return t, nil
}

func (tr *Transformer) addDaysSinceRegistration(t *dataset.Table) error {
	registro, ok := t.Column(config.ColFechaRegistro)
	if !ok {
		return apperrors.NewNotFoundError("column " + config.ColFechaRegistro)
	}
	contacto, ok := t.Column(config.ColFechaContacto)
	if !ok {
		return apperrors.NewNotFoundError("column " + config.ColFechaContacto)
	}

	cells := make([]dataset.Cell, t.NumRows())
	for i := range cells {
		if registro.IsNull(i) || contacto.IsNull(i) {
			cells[i] = dataset.Null()
			continue
		}
		days := contacto.Cells[i].Date.Sub(registro.Cells[i].Date) / (24 * time.Hour)
		cells[i] = dataset.Number(float64(days))
	}

	_, err := t.SetColumn(config.ColDiasDesdeRegistro, dataset.KindNumber, cells)
	return err
}

func (tr *Transformer) addDurationCategory(t *dataset.Table) error {
	duracion, ok := t.Column(config.ColDuracionLlamada)
	if !ok {
		return apperrors.NewNotFoundError("column " + config.ColDuracionLlamada)
	}

	cells := make([]dataset.Cell, t.NumRows())
	for i := range cells {
		if duracion.IsNull(i) {
			cells[i] = dataset.Null()
			continue
		}
		label, ok := tr.bucketFor(duracion.Cells[i].Num)
		if !ok {
			cells[i] = dataset.Null()
			continue
		}
		cells[i] = dataset.String(label)
	}

	col, err := t.SetColumn(config.ColCategoriaDuracion, dataset.KindCategory, cells)
	if err != nil {
		return err
	}

	// Bucket order, not lexicographic order: the buckets are ordered labels.
	col.Levels = make([]string, len(tr.buckets))
	for i, b := range tr.buckets {
		col.Levels[i] = b.Label
	}

	return nil
}

// bucketFor maps a duration to its half-open, left-inclusive bucket.
// Values below the first bucket (negative durations) have no bucket.
func (tr *Transformer) bucketFor(v float64) (string, bool) {
	for _, b := range tr.buckets {
		if v >= b.Min && (b.Max < 0 || v < b.Max) {
			return b.Label, true
		}
	}
	return "", false
}
