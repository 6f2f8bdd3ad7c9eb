// Package report renders the exploratory analysis artifacts for the
// processed campaign dataset.
//
// The package splits reporting into aggregation and rendering. Builders
// (DurationCounts, AgeHistogram, ConversionByGroup, MonthlySeries) reduce
// the table to Artifact values: labels plus one or more value series.
// Renderers then draw artifacts without touching the table:
//
// ExcelRenderer writes one workbook with a sheet per artifact, each holding
// the aggregated data and an embedded native chart.
//
// QuickChartRenderer writes a JSON manifest pairing each artifact's
// Chart.js config with the QuickChart URL that draws it.
//
// A column required by an artifact but absent from the table is an error
// that stops the report; there is no partial rendering.
package report
