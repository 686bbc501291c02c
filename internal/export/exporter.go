package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"ulascansenturk/gameday-weather/internal/analysis"

	"github.com/rs/zerolog/log"
)

type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) Dir() string {
	return e.dir
}

func (e *Exporter) Path(file string) string {
	return filepath.Join(e.dir, file)
}

// Export writes the joined table, the four aggregations and the correlation
// matrix, replacing any earlier files. It returns the paths written.
func (e *Exporter) Export(report *analysis.Report) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(e.dir, "figures"), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	files := []struct {
		name string
		rows [][]string
	}{
		{FileJoined, JoinedRecords(report.Dataset.Rows)},
		{FileByTemperature, TemperatureRecords(report.ByTemperature)},
		{FileByWindPrecip, WindPrecipRecords(report.ByWindPrecip)},
		{FileCorrelation, CorrelationRecords(report.Correlation)},
		{FileByMoon, MoonRecords(report.ByMoon)},
		{FileWinPct, WinPctRecords(report.ByStadiumRain)},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := e.Path(f.name)
		if err := writeCSV(path, f.rows); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		log.Info().Str("path", path).Int("rows", len(f.rows)-1).Msg("Exported")
		written = append(written, path)
	}

	return written, nil
}

func writeCSV(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func JoinedRecords(rows []analysis.GameRow) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, JoinedHeader)

	for _, r := range rows {
		records = append(records, []string{
			strconv.FormatInt(r.GameID, 10),
			r.GameDate,
			r.StadiumCity,
			r.HomeTeamName,
			r.AwayTeamName,
			formatInt(r.HomeScore),
			formatInt(r.AwayScore),
			formatInt(r.TotalPoints),
			formatInt(r.Attendance),
			formatFloat(r.Temperature),
			formatFloat(r.WindSpeed),
			formatFloat(r.Precipitation),
			formatFloat(r.MoonIllumination),
			formatString(r.MoonPhase),
		})
	}

	return records
}

func TemperatureRecords(bins []analysis.TemperatureBin) [][]string {
	records := [][]string{TemperatureHeader}
	for _, b := range bins {
		records = append(records, []string{
			b.Label,
			strconv.Itoa(b.Count),
			formatFloat(b.AvgTotalPoints),
			formatFloat(b.MinTotalPoints),
			formatFloat(b.MaxTotalPoints),
			formatFloat(b.StdTotalPoints),
			formatFloat(b.AvgHomePoints),
			formatFloat(b.AvgAwayPoints),
		})
	}
	return records
}

func WindPrecipRecords(cells []analysis.WindPrecipCell) [][]string {
	records := [][]string{WindPrecipHeader}
	for _, c := range cells {
		records = append(records, []string{
			c.WindBin,
			Flag(c.Precipitation),
			strconv.Itoa(c.Count),
			formatFloat(c.AvgTotalPoints),
		})
	}
	return records
}

func MoonRecords(bins []analysis.MoonBin) [][]string {
	records := [][]string{MoonHeader}
	for _, b := range bins {
		records = append(records, []string{
			b.Label,
			strconv.Itoa(b.Count),
			formatFloat(b.AvgTotalPoints),
		})
	}
	return records
}

func WinPctRecords(groups []analysis.StadiumRainGroup) [][]string {
	records := [][]string{WinPctHeader}
	for _, g := range groups {
		records = append(records, []string{
			g.StadiumCity,
			Flag(g.Rainy),
			strconv.Itoa(g.NumGames),
			strconv.Itoa(g.NumWins),
			formatFloat(g.WinPct),
		})
	}
	return records
}

// CorrelationRecords writes the matrix with metric labels as both the header
// row and the first column.
func CorrelationRecords(m analysis.CorrelationMatrix) [][]string {
	header := make([]string, 0, len(m.Metrics)+1)
	header = append(header, ColMetric)
	for _, metric := range m.Metrics {
		header = append(header, MetricLabel(metric))
	}

	records := [][]string{header}
	for i, metric := range m.Metrics {
		row := make([]string, 0, len(m.Metrics)+1)
		row = append(row, MetricLabel(metric))
		for j := range m.Metrics {
			row = append(row, formatFloat(m.Values[i][j]))
		}
		records = append(records, row)
	}
	return records
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
