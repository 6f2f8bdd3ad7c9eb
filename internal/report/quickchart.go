package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	quickchartgo "github.com/henomis/quickchart-go"

	apperrors "campcli/internal/errors"
)

// ChartConfig is a Chart.js configuration for the QuickChart service.
type ChartConfig struct {
	Type string    `json:"type"`
	Data ChartData `json:"data"`
}

// ChartData holds the labels and datasets of a Chart.js config.
type ChartData struct {
	Labels   []interface{} `json:"labels"`
	Datasets []Dataset     `json:"datasets"`
}

// Dataset is one Chart.js series.
type Dataset struct {
	Label           string        `json:"label"`
	Data            []interface{} `json:"data"`
	Fill            bool          `json:"fill"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
	BorderColor     string        `json:"borderColor,omitempty"`
	LineTension     float32       `json:"lineTension"`
}

// ManifestEntry is one rendered chart in the manifest: its config plus the
// QuickChart URL that draws it.
type ManifestEntry struct {
	Name   string      `json:"name"`
	Title  string      `json:"title"`
	URL    string      `json:"url"`
	Config ChartConfig `json:"config"`
}

// QuickChartRenderer emits a JSON manifest of Chart.js configs and their
// QuickChart URLs, one entry per artifact. URLs are constructed locally;
// nothing is fetched.
type QuickChartRenderer struct {
	logger *slog.Logger
}

// NewQuickChartRenderer creates a QuickChart manifest renderer.
func NewQuickChartRenderer(logger *slog.Logger) *QuickChartRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuickChartRenderer{logger: logger}
}

// Render writes the manifest to path in artifact order.
func (r *QuickChartRenderer) Render(ctx context.Context, path string, artifacts []Artifact) error {
	entries := make([]ManifestEntry, 0, len(artifacts))
	for _, artifact := range artifacts {
		cfg := chartConfigFor(artifact)
		url, err := chartURL(cfg)
		if err != nil {
			return apperrors.NewParsingError("failed to build chart URL for "+artifact.Name, err)
		}
		entries = append(entries, ManifestEntry{
			Name:   artifact.Name,
			Title:  artifact.Title,
			URL:    url,
			Config: cfg,
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create report directory", err)
	}

	manifest := map[string]interface{}{
		"charts":       entries,
		"count":        len(entries),
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "chart_manifest_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create chart manifest", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		return apperrors.NewStorageError("failed to encode chart manifest", err)
	}

	r.logger.InfoContext(ctx, "chart manifest written",
		slog.String("path", path),
		slog.Int("chart_count", len(entries)))

	return nil
}

// chartConfigFor maps an artifact to its Chart.js configuration.
func chartConfigFor(artifact Artifact) ChartConfig {
	chartType := "bar"
	if artifact.Kind == ChartLine {
		chartType = "line"
	}

	labels := make([]interface{}, len(artifact.Labels))
	for i, label := range artifact.Labels {
		labels[i] = label
	}

	datasets := make([]Dataset, len(artifact.Series))
	for i, s := range artifact.Series {
		data := make([]interface{}, len(s.Values))
		for j, v := range s.Values {
			data[j] = v
		}
		datasets[i] = Dataset{
			Label:           s.Name,
			Data:            data,
			BackgroundColor: "#" + s.Color,
			BorderColor:     "#" + s.Color,
		}
	}

	return ChartConfig{
		Type: chartType,
		Data: ChartData{Labels: labels, Datasets: datasets},
	}
}

// chartURL derives the QuickChart rendering URL for a config.
func chartURL(cfg ChartConfig) (string, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	qc := quickchartgo.New()
	qc.Config = string(payload)
	qc.Width = 1000
	qc.Height = 600
	return qc.GetUrl()
}
