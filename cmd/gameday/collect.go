package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"
	"ulascansenturk/gameday-weather/internal/collector"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/inmemorycache"
	"ulascansenturk/gameday-weather/internal/providers"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const sourceAll = "all"

func newCollectCmd() *cobra.Command {
	valid := append([]string{sourceAll}, collector.Sources...)

	return &cobra.Command{
		Use:       "collect {" + strings.Join(valid, "|") + "}",
		Short:     "Fetch the next batch of records for a source",
		Long:      "Fetches up to COLLECT_BATCH_LIMIT records not yet stored for the season. Run repeatedly until nothing remains.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := []string{args[0]}
			if args[0] == sourceAll {
				sources = collector.Sources
			}

			return withRepo(func(_ *gorm.DB, repo gamedata.Repository) error {
				cache := inmemorycache.NewInMemoryCacheProvider(time.Minute)
				defer cache.Close()

				c := collector.NewCollector(repo, cache, newClients(), collector.Options{
					BatchLimit:      conf.CollectBatchLimit,
					RequestDelay:    conf.CollectRequestDelay,
					SeasonYear:      conf.SeasonYear,
					FootballMaxWeek: conf.FootballMaxWeek,
					LocationTTL:     conf.LocationCacheTTL,
				})

				results := make([]collector.Result, 0, len(sources))
				defer func() { printResults(results) }()

				for _, source := range sources {
					res, err := c.Collect(cmd.Context(), source)
					results = append(results, res)
					if err != nil {
						return fmt.Errorf("collecting %s: %w", source, err)
					}
				}
				return nil
			})
		},
	}
}

func newClients() collector.Clients {
	httpClient := providers.NewHTTPClient(conf.HTTPTimeoutDuration())

	return collector.Clients{
		Weather:    providers.NewWeatherArchiveClient(conf.WeatherArchiveBaseURL, httpClient),
		AirQuality: providers.NewAirQualityClient(conf.AirQualityBaseURL, httpClient),
		Astronomy:  providers.NewAstronomyClient(conf.IPGeolocationAPIKey, conf.AstronomyBaseURL, httpClient),
		UV:         providers.NewOpenUVClient(conf.OpenUVAPIKey, conf.OpenUVBaseURL, httpClient),
		Football:   providers.NewFootballClient(conf.CollegeFootballAPIKey, conf.CollegeFootballBaseURL, httpClient),
	}
}

func printResults(results []collector.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Source\tStored\tSkipped\tFailed\tRemaining")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", r.Source, r.Stored, r.Skipped, r.Failed, r.Remaining)
	}
	tw.Flush()
}
