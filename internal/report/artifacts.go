package report

import (
	"sort"

	"campcli/internal/config"
	"campcli/internal/dataset"
	apperrors "campcli/internal/errors"
)

// ChartKind selects the chart family an artifact renders as.
type ChartKind int

const (
	ChartColumn ChartKind = iota
	ChartHistogram
	ChartLine
)

// Fixed series colors, matching the exploratory palette of the source
// analysis (red = did not subscribe, blue = subscribed).
const (
	colorRed  = "FF0000"
	colorBlue = "0000FF"
)

// histogramBins is the fixed bin count for the age distribution.
const histogramBins = 30

// Series is one named value sequence of an artifact.
type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// Artifact is one fully aggregated chart: labels along the x axis and one
// or more series of values. Artifacts carry everything a renderer needs;
// renderers never touch the table.
type Artifact struct {
	Name   string    `json:"name"`
	Title  string    `json:"title"`
	Kind   ChartKind `json:"-"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Labels []string  `json:"labels"`
	Series []Series  `json:"series"`
}

// BuildArtifacts computes the fixed report artifacts from the transformed
// table, in presentation order. A required column missing from the table is
// an error; no artifact degrades gracefully.
func BuildArtifacts(t *dataset.Table) ([]Artifact, error) {
	builders := []func(*dataset.Table) (Artifact, error){
		DurationCounts,
		AgeHistogram,
		func(t *dataset.Table) (Artifact, error) {
			return ConversionByGroup(t, config.ColEstadoCivil,
				"Tasa de Conversión por Estado Civil", "Estado Civil")
		},
		func(t *dataset.Table) (Artifact, error) {
			return ConversionByGroup(t, config.ColEducacion,
				"Tasa de Conversión por Nivel Educativo", "Nivel Educativo")
		},
		MonthlySeries,
	}

	artifacts := make([]Artifact, 0, len(builders))
	for _, build := range builders {
		artifact, err := build(t)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// DurationCounts counts clients per duration bucket, split into a
// non-subscriber and a subscriber series.
func DurationCounts(t *dataset.Table) (Artifact, error) {
	categoria, err := requireColumn(t, config.ColCategoriaDuracion)
	if err != nil {
		return Artifact{}, err
	}
	suscribio, err := requireColumn(t, config.ColSuscribio)
	if err != nil {
		return Artifact{}, err
	}

	labels := categoria.Levels
	if len(labels) == 0 {
		labels = distinctLabels(categoria)
	}
	position := make(map[string]int, len(labels))
	for i, label := range labels {
		position[label] = i
	}

	no := make([]float64, len(labels))
	yes := make([]float64, len(labels))
	for i := 0; i < t.NumRows(); i++ {
		if categoria.IsNull(i) || suscribio.IsNull(i) {
			continue
		}
		pos, ok := position[categoria.Cells[i].Str]
		if !ok {
			continue
		}
		if suscribio.Cells[i].Num != 0 {
			yes[pos]++
		} else {
			no[pos]++
		}
	}

	return Artifact{
		Name:   "duracion_suscripcion",
		Title:  "Categoría de Duración de Llamada según Suscripción",
		Kind:   ChartColumn,
		XLabel: "Categoría de Duración de Llamada",
		YLabel: "Cantidad de Clientes",
		Labels: labels,
		Series: []Series{
			{Name: "No", Color: colorRed, Values: no},
			{Name: "Sí", Color: colorBlue, Values: yes},
		},
	}, nil
}

// AgeHistogram bins the age column into 30 equal-width bins.
func AgeHistogram(t *dataset.Table) (Artifact, error) {
	age, err := requireColumn(t, config.ColAge)
	if err != nil {
		return Artifact{}, err
	}

	var values []float64
	for _, cell := range age.Cells {
		if !cell.Null {
			values = append(values, cell.Num)
		}
	}
	if len(values) == 0 {
		return Artifact{}, apperrors.NewValidationError("age column has no observed values")
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / histogramBins
	counts := make([]float64, histogramBins)
	for _, v := range values {
		bin := histogramBins - 1
		if width > 0 {
			bin = int((v - min) / width)
			if bin >= histogramBins {
				bin = histogramBins - 1
			}
		}
		counts[bin]++
	}

	labels := make([]string, histogramBins)
	for i := range labels {
		labels[i] = dataset.FormatFloat(min + width*float64(i))
	}

	return Artifact{
		Name:   "distribucion_edad",
		Title:  "Distribución de la Edad de los Clientes",
		Kind:   ChartHistogram,
		XLabel: "Edad",
		YLabel: "Frecuencia",
		Labels: labels,
		Series: []Series{
			{Name: "Frecuencia", Color: colorBlue, Values: counts},
		},
	}, nil
}

// ConversionByGroup computes the mean subscription rate per group label,
// scaled to a percentage. Group labels follow the column's category order;
// rows with a null group or subscription value are excluded.
func ConversionByGroup(t *dataset.Table, column, title, xLabel string) (Artifact, error) {
	group, err := requireColumn(t, column)
	if err != nil {
		return Artifact{}, err
	}
	suscribio, err := requireColumn(t, config.ColSuscribio)
	if err != nil {
		return Artifact{}, err
	}

	sums := make(map[string]float64)
	counts := make(map[string]float64)
	for i := 0; i < t.NumRows(); i++ {
		if group.IsNull(i) || suscribio.IsNull(i) {
			continue
		}
		label := group.Cells[i].Str
		sums[label] += suscribio.Cells[i].Num
		counts[label]++
	}

	labels := group.Levels
	if len(labels) == 0 {
		labels = sortedKeys(counts)
	}

	// Only observed labels chart; empty category levels are skipped.
	rates := make([]float64, 0, len(labels))
	observed := make([]string, 0, len(labels))
	for _, label := range labels {
		if counts[label] == 0 {
			continue
		}
		observed = append(observed, label)
		rates = append(rates, sums[label]/counts[label]*100)
	}

	return Artifact{
		Name:   "conversion_" + column,
		Title:  title,
		Kind:   ChartColumn,
		XLabel: xLabel,
		YLabel: "Tasa de Conversión (%)",
		Labels: observed,
		Series: []Series{
			{Name: "Tasa de Conversión", Color: colorBlue, Values: rates},
		},
	}, nil
}

// MonthlySeries computes the subscription rate per calendar month of the
// contact date, in chronological order.
func MonthlySeries(t *dataset.Table) (Artifact, error) {
	contacto, err := requireColumn(t, config.ColFechaContacto)
	if err != nil {
		return Artifact{}, err
	}
	suscribio, err := requireColumn(t, config.ColSuscribio)
	if err != nil {
		return Artifact{}, err
	}

	sums := make(map[string]float64)
	counts := make(map[string]float64)
	for i := 0; i < t.NumRows(); i++ {
		if contacto.IsNull(i) || suscribio.IsNull(i) {
			continue
		}
		month := contacto.Cells[i].Date.Format("2006-01")
		sums[month] += suscribio.Cells[i].Num
		counts[month]++
	}

	// YYYY-MM sorts chronologically as text
	months := sortedKeys(counts)
	rates := make([]float64, len(months))
	for i, month := range months {
		rates[i] = sums[month] / counts[month] * 100
	}

	return Artifact{
		Name:   "conversion_mensual",
		Title:  "Evolución de la Tasa de Conversión por Año y Mes",
		Kind:   ChartLine,
		XLabel: "Fecha (Año-Mes)",
		YLabel: "Tasa de Conversión (%)",
		Labels: months,
		Series: []Series{
			{Name: "Tasa de Conversión", Color: colorBlue, Values: rates},
		},
	}, nil
}

func requireColumn(t *dataset.Table, name string) (*dataset.Column, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, apperrors.NewNotFoundError("column " + name)
	}
	return col, nil
}

func distinctLabels(col *dataset.Column) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, cell := range col.Cells {
		if cell.Null || seen[cell.Str] {
			continue
		}
		seen[cell.Str] = true
		labels = append(labels, cell.Str)
	}
	sort.Strings(labels)
	return labels
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
