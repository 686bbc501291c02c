package charts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"ulascansenturk/gameday-weather/internal/export"

	"github.com/rs/zerolog/log"
)

const (
	FigTemperature = "fig1_temperature.png"
	FigWindPrecip  = "fig2_wind_precip.png"
	FigCorrelation = "fig3_correlation_heatmap.png"
	FigMoon        = "fig4_moon_illumination.png"
	FigWinPct      = "fig5_win_pct_rain_by_stadium.png"
)

const (
	labelDry   = "No (Dry)"
	labelRainy = "Yes (Rainy)"
)

// Renderer draws the exported CSVs under outputDir into PNG figures.
type Renderer struct {
	outputDir  string
	figuresDir string
}

func NewRenderer(outputDir, figuresDir string) *Renderer {
	return &Renderer{outputDir: outputDir, figuresDir: figuresDir}
}

type figure struct {
	name   string
	input  string
	render func(t *table, path string) error
}

// RenderAll writes every figure whose input exists and has rows. Missing or
// empty inputs are skipped with a warning. It returns the paths written.
func (r *Renderer) RenderAll() ([]string, error) {
	if err := os.MkdirAll(r.figuresDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating figures directory: %w", err)
	}

	figures := []figure{
		{FigTemperature, export.FileByTemperature, renderTemperature},
		{FigWindPrecip, export.FileByWindPrecip, renderWindPrecip},
		{FigCorrelation, export.FileCorrelation, renderCorrelation},
		{FigMoon, export.FileByMoon, renderMoon},
		{FigWinPct, export.FileWinPct, renderWinPct},
	}

	var written []string
	for _, fig := range figures {
		input := filepath.Join(r.outputDir, fig.input)

		t, err := readTable(input)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn().Str("input", input).Str("figure", fig.name).Msg("Input not found, skipping figure")
			continue
		case errors.Is(err, errNoRows):
			log.Warn().Str("input", input).Str("figure", fig.name).Msg("Input has no rows, skipping figure")
			continue
		case err != nil:
			return written, err
		}

		path := filepath.Join(r.figuresDir, fig.name)
		if err := fig.render(t, path); err != nil {
			return written, fmt.Errorf("rendering %s: %w", fig.name, err)
		}

		log.Info().Str("path", path).Msg("Rendered figure")
		written = append(written, path)
	}

	return written, nil
}

func renderTemperature(t *table, path string) error {
	if err := t.require(export.ColTemperatureBin, export.ColAvgTotalPoints); err != nil {
		return err
	}

	chart := barChart{
		Title:  "Average Total Points by Temperature",
		XLabel: export.ColTemperatureBin + " (F)",
		YLabel: export.ColAvgTotalPoints,
		Series: []string{export.ColAvgTotalPoints},
	}
	for i := range t.rows {
		chart.Categories = append(chart.Categories, t.text(i, export.ColTemperatureBin))
		chart.Values = append(chart.Values, []*float64{t.number(i, export.ColAvgTotalPoints)})
	}

	return drawBarChart(path, chart)
}

func renderMoon(t *table, path string) error {
	if err := t.require(export.ColMoonBin, export.ColAvgTotalPoints); err != nil {
		return err
	}

	chart := barChart{
		Title:  "Average Total Points by Moon Illumination",
		XLabel: export.ColMoonBin,
		YLabel: export.ColAvgTotalPoints,
		Series: []string{export.ColAvgTotalPoints},
	}
	for i := range t.rows {
		chart.Categories = append(chart.Categories, t.text(i, export.ColMoonBin))
		chart.Values = append(chart.Values, []*float64{t.number(i, export.ColAvgTotalPoints)})
	}

	return drawBarChart(path, chart)
}

func renderWindPrecip(t *table, path string) error {
	if err := t.require(export.ColWindBin, export.ColPrecipFlag, export.ColAvgTotalPoints); err != nil {
		return err
	}

	chart := groupedByFlag(t, export.ColWindBin, export.ColPrecipFlag, export.ColAvgTotalPoints)
	chart.Title = "Average Total Points by Wind Speed and Precipitation"
	chart.XLabel = export.ColWindBin
	chart.YLabel = export.ColAvgTotalPoints

	return drawBarChart(path, chart)
}

func renderWinPct(t *table, path string) error {
	if err := t.require(export.ColStadiumCity, export.ColRainy, export.ColHomeWinPct); err != nil {
		return err
	}

	chart := groupedByFlag(t, export.ColStadiumCity, export.ColRainy, export.ColHomeWinPct)
	chart.Title = "Home Win Percentage by Stadium: Dry vs Rainy"
	chart.XLabel = export.ColStadiumCity
	chart.YLabel = export.ColHomeWinPct
	chart.YMax = 1

	return drawBarChart(path, chart)
}

// groupedByFlag pivots rows into one category per distinct groupCol value
// (first-seen order) with a Dry and a Rainy series keyed by flagCol.
func groupedByFlag(t *table, groupCol, flagCol, valueCol string) barChart {
	chart := barChart{Series: []string{labelDry, labelRainy}}
	index := make(map[string]int)

	for i := range t.rows {
		group := t.text(i, groupCol)
		idx, ok := index[group]
		if !ok {
			idx = len(chart.Categories)
			index[group] = idx
			chart.Categories = append(chart.Categories, group)
			chart.Values = append(chart.Values, make([]*float64, 2))
		}

		series := 0
		if t.text(i, flagCol) == export.FlagYes {
			series = 1
		}
		chart.Values[idx][series] = t.number(i, valueCol)
	}

	return chart
}

func renderCorrelation(t *table, path string) error {
	if err := t.require(export.ColMetric); err != nil {
		return err
	}

	labels := make([]string, 0, len(t.rows))
	for i := range t.rows {
		labels = append(labels, t.text(i, export.ColMetric))
	}
	if err := t.require(labels...); err != nil {
		return err
	}

	values := make([][]*float64, len(labels))
	for i := range labels {
		values[i] = make([]*float64, len(labels))
		for j, col := range labels {
			values[i][j] = t.number(i, col)
		}
	}

	return drawHeatmap(path, "Correlation Matrix", labels, values)
}
