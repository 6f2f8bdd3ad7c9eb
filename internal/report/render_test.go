package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleArtifacts() []Artifact {
	return []Artifact{
		{
			Name:   "duracion_suscripcion",
			Title:  "Duración según Suscripción",
			Kind:   ChartColumn,
			XLabel: "Categoría",
			YLabel: "Clientes",
			Labels: []string{"Corta", "Media", "Larga"},
			Series: []Series{
				{Name: "No", Color: "FF0000", Values: []float64{10, 5, 2}},
				{Name: "Sí", Color: "0000FF", Values: []float64{1, 4, 6}},
			},
		},
		{
			Name:   "conversion_mensual",
			Title:  "Tasa de Conversión Mensual",
			Kind:   ChartLine,
			XLabel: "Mes",
			YLabel: "Tasa (%)",
			Labels: []string{"2020-01", "2020-02"},
			Series: []Series{
				{Name: "Tasa", Color: "0000FF", Values: []float64{12.5, 40}},
			},
		},
	}
}

func TestExcelRendererWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "charts.xlsx")

	err := NewExcelRenderer(nil).Render(context.Background(), path, sampleArtifacts())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"duracion_suscripcion", "conversion_mensual"}, f.GetSheetList())

	// data block of the first sheet
	rows, err := f.GetRows("duracion_suscripcion")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Categoría", "No", "Sí"}, rows[0])
	assert.Equal(t, "Corta", rows[1][0])
	assert.Equal(t, "10", rows[1][1])
}

func TestQuickChartRendererWritesManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "charts.json")

	err := NewQuickChartRenderer(nil).Render(context.Background(), path, sampleArtifacts())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var manifest struct {
		Charts []ManifestEntry `json:"charts"`
		Count  int             `json:"count"`
		Format string          `json:"format"`
	}
	require.NoError(t, json.Unmarshal(data, &manifest))

	assert.Equal(t, 2, manifest.Count)
	assert.Equal(t, "chart_manifest_v1", manifest.Format)
	require.Len(t, manifest.Charts, 2)

	first := manifest.Charts[0]
	assert.Equal(t, "duracion_suscripcion", first.Name)
	assert.Equal(t, "bar", first.Config.Type)
	assert.True(t, strings.HasPrefix(first.URL, "https://quickchart.io"), first.URL)
	assert.Contains(t, first.URL, "/chart?")

	assert.Equal(t, "line", manifest.Charts[1].Config.Type)
}

func TestChartConfigFor(t *testing.T) {
	artifacts := sampleArtifacts()

	cfg := chartConfigFor(artifacts[0])
	assert.Equal(t, "bar", cfg.Type)
	require.Len(t, cfg.Data.Datasets, 2)
	assert.Equal(t, "No", cfg.Data.Datasets[0].Label)
	assert.Equal(t, "#FF0000", cfg.Data.Datasets[0].BackgroundColor)
	assert.Len(t, cfg.Data.Labels, 3)

	cfg = chartConfigFor(artifacts[1])
	assert.Equal(t, "line", cfg.Type)
}

func TestVisualizerRendersBothArtifactFiles(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "charts.xlsx")
	manifest := filepath.Join(dir, "charts.json")

	vis := NewVisualizer(nil, workbook, manifest)
	err := vis.Render(context.Background(), reportTable(t))
	require.NoError(t, err)

	assert.FileExists(t, workbook)
	assert.FileExists(t, manifest)
}
