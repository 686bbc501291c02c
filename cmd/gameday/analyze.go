package main

import (
	"os"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/export"
	"ulascansenturk/gameday-weather/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newAnalyzeCmd() *cobra.Command {
	var opts service.Options

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Join games with weather and moon data and print the aggregations",
		Long: "Loads one row per game with its weather and moon readings, prints the temperature, " +
			"wind/precipitation, moon illumination and home win percentage summaries plus the strongest " +
			"correlations. Fails when no games are stored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(_ *gorm.DB, repo gamedata.Repository) error {
				svc := service.NewReportService(repo, export.NewExporter(conf.OutputDir), os.Stdout)
				_, err := svc.Run(cmd.Context(), opts)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&opts.SaveCSV, "save-csv", false, "Write the joined dataset and every aggregation as CSV under OUTPUT_DIR")

	return cmd
}
