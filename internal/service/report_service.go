package service

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"ulascansenturk/gameday-weather/internal/analysis"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/export"

	"github.com/rs/zerolog/log"
)

const (
	correlationThreshold = 0.3
	maxCorrelationPairs  = 10
	maxWinPctGroups      = 10
)

type Options struct {
	SaveCSV bool
}

type ReportExporter interface {
	Export(report *analysis.Report) ([]string, error)
}

type ReportService interface {
	Run(ctx context.Context, opts Options) (*analysis.Report, error)
}

type reportService struct {
	repo     gamedata.Repository
	exporter ReportExporter
	out      io.Writer
}

func NewReportService(repo gamedata.Repository, exporter ReportExporter, out io.Writer) ReportService {
	return &reportService{
		repo:     repo,
		exporter: exporter,
		out:      out,
	}
}

// Run loads the joined dataset, prints the summaries and optionally exports
// every table. An empty join returns analysis.ErrEmptyDataset before anything
// is written.
func (s *reportService) Run(ctx context.Context, opts Options) (*analysis.Report, error) {
	ds, err := s.repo.LoadJoinedGames(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Int("rows", len(ds.Rows)).Int("missing_metrics", len(ds.Missing)).Msg("Loaded joined dataset")

	report, err := analysis.BuildReport(ds)
	if err != nil {
		return nil, err
	}

	if err := s.printSummary(report); err != nil {
		return nil, fmt.Errorf("printing summary: %w", err)
	}

	if !opts.SaveCSV {
		return report, nil
	}

	written, err := s.exporter.Export(report)
	if err != nil {
		return report, err
	}

	log.Info().Int("files", len(written)).Msg("Saved CSV outputs")

	return report, nil
}

func (s *reportService) printSummary(report *analysis.Report) error {
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Joined dataset: %d games\n", len(report.Dataset.Rows))
	for _, m := range report.Dataset.Missing {
		fmt.Fprintf(tw, "  (no %s data collected yet)\n", export.MetricLabel(m))
	}

	fmt.Fprintln(tw, "\nPoints by temperature")
	fmt.Fprintln(tw, "Bin\tGames\tAvg\tMin\tMax\tStd\tHome\tAway")
	for _, b := range report.ByTemperature {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.Label, b.Count,
			formatValue(b.AvgTotalPoints), formatValue(b.MinTotalPoints), formatValue(b.MaxTotalPoints),
			formatValue(b.StdTotalPoints), formatValue(b.AvgHomePoints), formatValue(b.AvgAwayPoints))
	}

	fmt.Fprintln(tw, "\nPoints by wind and precipitation")
	fmt.Fprintln(tw, "Wind (mph)\tPrecipitation\tGames\tAvg")
	for _, c := range report.ByWindPrecip {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.WindBin, export.Flag(c.Precipitation), c.Count, formatValue(c.AvgTotalPoints))
	}

	fmt.Fprintln(tw, "\nPoints by moon illumination")
	fmt.Fprintln(tw, "Bin\tGames\tAvg")
	for _, b := range report.ByMoon {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", b.Label, b.Count, formatValue(b.AvgTotalPoints))
	}

	fmt.Fprintln(tw, "\nHome win pct by stadium and rain")
	fmt.Fprintln(tw, "Stadium\tRainy\tGames\tWins\tPct")
	for i, g := range report.ByStadiumRain {
		if i == maxWinPctGroups {
			fmt.Fprintf(tw, "... %d more\n", len(report.ByStadiumRain)-maxWinPctGroups)
			break
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", g.StadiumCity, export.Flag(g.Rainy), g.NumGames, g.NumWins, formatValue(g.WinPct))
	}

	fmt.Fprintf(tw, "\nCorrelations with |r| > %.1f\n", correlationThreshold)
	pairs := report.Correlation.Strongest(correlationThreshold, maxCorrelationPairs)
	if len(pairs) == 0 {
		fmt.Fprintln(tw, "none")
	}
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\n", export.MetricLabel(p.A), export.MetricLabel(p.B), p.R)
	}

	return tw.Flush()
}

func formatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
