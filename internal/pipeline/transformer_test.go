package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campcli/internal/config"
	"campcli/internal/dataset"
)

func dateCell(y int, m time.Month, d int) dataset.Cell {
	return dataset.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func transformableTable(t *testing.T, durations []dataset.Cell, registro, contacto []dataset.Cell) *dataset.Table {
	t.Helper()
	table := dataset.New()
	_, err := table.AddColumn(config.ColDuracionLlamada, dataset.KindNumber, durations)
	require.NoError(t, err)
	_, err = table.AddColumn(config.ColFechaRegistro, dataset.KindDate, registro)
	require.NoError(t, err)
	_, err = table.AddColumn(config.ColFechaContacto, dataset.KindDate, contacto)
	require.NoError(t, err)
	return table
}

func TestBucketingLaw(t *testing.T) {
	tests := []struct {
		duration float64
		expected string
	}{
		{0, config.BucketCorta},
		{50, config.BucketCorta},
		{99, config.BucketCorta},
		{99.999, config.BucketCorta},
		{100, config.BucketMedia},
		{250, config.BucketMedia},
		{299, config.BucketMedia},
		{300, config.BucketLarga},
		{1000, config.BucketLarga},
		{1e9, config.BucketLarga},
	}

	tr := NewTransformer(nil, config.DurationBuckets())
	for _, tt := range tests {
		label, ok := tr.bucketFor(tt.duration)
		require.True(t, ok, "duration %v", tt.duration)
		assert.Equal(t, tt.expected, label, "duration %v", tt.duration)
	}
}

func TestBucketingNegativeDurationUnbucketed(t *testing.T) {
	tr := NewTransformer(nil, config.DurationBuckets())
	_, ok := tr.bucketFor(-1)
	assert.False(t, ok)
}

func TestTransformDerivedColumns(t *testing.T) {
	table := transformableTable(t,
		[]dataset.Cell{dataset.Number(250), dataset.Null(), dataset.Number(30)},
		[]dataset.Cell{dateCell(2020, 1, 1), dateCell(2020, 6, 1), dataset.Null()},
		[]dataset.Cell{dateCell(2020, 3, 1), dateCell(2020, 5, 1), dateCell(2020, 7, 1)},
	)

	tr := NewTransformer(nil, config.DurationBuckets())
	table, err := tr.Transform(context.Background(), table)
	require.NoError(t, err)

	dias, ok := table.Column(config.ColDiasDesdeRegistro)
	require.True(t, ok)
	assert.Equal(t, dataset.KindNumber, dias.Kind)
	assert.Equal(t, 60.0, dias.Cells[0].Num, "2020-01-01 to 2020-03-01 is 60 days")
	assert.Equal(t, -31.0, dias.Cells[1].Num, "contact before registration goes negative")
	assert.True(t, dias.Cells[2].Null, "null date yields null day count")

	categoria, ok := table.Column(config.ColCategoriaDuracion)
	require.True(t, ok)
	assert.Equal(t, dataset.KindCategory, categoria.Kind)
	assert.Equal(t, config.BucketMedia, categoria.Cells[0].Str)
	assert.True(t, categoria.Cells[1].Null, "null duration yields null bucket")
	assert.Equal(t, config.BucketCorta, categoria.Cells[2].Str)
	assert.Equal(t, []string{config.BucketCorta, config.BucketMedia, config.BucketLarga}, categoria.Levels)
}

func TestTransformRecomputesDerivedColumns(t *testing.T) {
	table := transformableTable(t,
		[]dataset.Cell{dataset.Number(250)},
		[]dataset.Cell{dateCell(2020, 1, 1)},
		[]dataset.Cell{dateCell(2020, 3, 1)},
	)

	ctx := context.Background()
	tr := NewTransformer(nil, config.DurationBuckets())
	table, err := tr.Transform(ctx, table)
	require.NoError(t, err)
	table, err = tr.Transform(ctx, table)
	require.NoError(t, err, "a table already carrying the derived columns transforms again")

	assert.Equal(t, 5, table.NumCols(), "derived columns are replaced, not duplicated")
	dias, _ := table.Column(config.ColDiasDesdeRegistro)
	assert.Equal(t, 60.0, dias.Cells[0].Num)
}

func TestTransformMissingColumnPropagates(t *testing.T) {
	table := dataset.New()
	_, err := table.AddColumn(config.ColDuracionLlamada, dataset.KindNumber, []dataset.Cell{dataset.Number(10)})
	require.NoError(t, err)

	tr := NewTransformer(nil, config.DurationBuckets())
	_, err = tr.Transform(context.Background(), table)
	assert.Error(t, err, "missing date columns are a wiring defect, not a degradable input")
}

func TestPipelineScenarioRow(t *testing.T) {
	// The canonical end-to-end row: clean then transform a single record.
	table := dataset.New()
	add := func(name string, kind dataset.Kind, cell dataset.Cell) {
		_, err := table.AddColumn(name, kind, []dataset.Cell{cell})
		require.NoError(t, err)
	}
	add("job", dataset.KindString, dataset.String("admin."))
	add("marital", dataset.KindString, dataset.String("married"))
	add("education", dataset.KindString, dataset.String("university.degree"))
	add("duration", dataset.KindNumber, dataset.Number(250))
	add("dt_customer", dataset.KindString, dataset.String("2020-01-01"))
	add("contact_date", dataset.KindString, dataset.String("2020-03-01"))
	add("y", dataset.KindNumber, dataset.Number(1))

	ctx := context.Background()
	cleaned := NewCleaner(nil, config.DefaultVocabulary()).Clean(ctx, table)
	transformed, err := NewTransformer(nil, config.DurationBuckets()).Transform(ctx, cleaned)
	require.NoError(t, err)

	require.Equal(t, 1, transformed.NumRows())

	get := func(name string) dataset.Cell {
		col, ok := transformed.Column(name)
		require.True(t, ok, name)
		return col.Cells[0]
	}

	assert.Equal(t, "admin.", get(config.ColOcupacion).Str)
	assert.Equal(t, "married", get(config.ColEstadoCivil).Str)
	assert.Equal(t, "university.degree", get(config.ColEducacion).Str)
	assert.Equal(t, 250.0, get(config.ColDuracionLlamada).Num)
	assert.Equal(t, config.BucketMedia, get(config.ColCategoriaDuracion).Str)
	assert.Equal(t, 60.0, get(config.ColDiasDesdeRegistro).Num)
	assert.Equal(t, 1.0, get(config.ColSuscribio).Num)
}
