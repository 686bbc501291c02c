package collector

import (
	"context"
	"fmt"
	"ulascansenturk/gameday-weather/internal/db/schema"
	"ulascansenturk/gameday-weather/internal/providers"

	"github.com/rs/zerolog/log"
)

const unknownValue = "Unknown"

// CollectGames walks the regular season week by week and stores completed
// games played at a known stadium. Once BatchLimit games are stored the rest
// of the current week is only counted towards Remaining.
func (c *Collector) CollectGames(ctx context.Context) (Result, error) {
	res := Result{Source: SourceGames}

	existing, err := c.repo.ExistingGameIDs(ctx)
	if err != nil {
		return res, err
	}

	log.Info().
		Int("season", c.opts.SeasonYear).
		Int("existing", len(existing)).
		Int("batch_limit", c.opts.BatchLimit).
		Msg("Starting football collection")

	var wrongVenue, noScore int

	for week := 1; week <= c.opts.FootballMaxWeek; week++ {
		if c.limitReached(res.Stored) {
			log.Info().Int("stored", res.Stored).Msg("Reached batch limit")
			break
		}

		if week > 1 {
			if err := c.wait(ctx); err != nil {
				return res, err
			}
		}

		games, err := c.clients.Football.GetGames(ctx, c.opts.SeasonYear, week)
		if err != nil {
			if isCancellation(ctx, err) {
				return res, ctx.Err()
			}
			res.Failed++
			log.Warn().Err(err).Int("week", week).Msg("Fetching games failed")
			continue
		}

		log.Debug().Int("week", week).Int("games", len(games)).Msg("Fetched week")

		for _, g := range games {
			if _, ok := existing[g.ID]; ok {
				res.Skipped++
				continue
			}

			city, ok := CityForVenue(g.Venue)
			if !ok {
				wrongVenue++
				res.Skipped++
				continue
			}

			if g.HomePoints == nil || g.AwayPoints == nil {
				noScore++
				res.Skipped++
				continue
			}

			if c.limitReached(res.Stored) {
				res.Remaining++
				continue
			}

			inserted, err := c.storeGame(ctx, g, city)
			if err != nil {
				return res, err
			}
			if !inserted {
				res.Skipped++
				continue
			}

			existing[g.ID] = struct{}{}
			res.Stored++

			log.Info().
				Str("date", g.GameDate()).
				Str("city", city).
				Str("home", g.HomeTeam).
				Str("away", g.AwayTeam).
				Int("home_points", *g.HomePoints).
				Int("away_points", *g.AwayPoints).
				Msg("Stored game")
		}
	}

	log.Info().Int("wrong_venue", wrongVenue).Int("no_score", noScore).Msg("Skipped games")
	logResult(res)

	return res, nil
}

func (c *Collector) storeGame(ctx context.Context, g providers.FootballGame, city string) (bool, error) {
	locationID, err := c.locationID(ctx, city)
	if err != nil {
		return false, err
	}

	homeID, err := c.repo.GetOrCreateTeam(ctx, valueOr(g.HomeTeam), valueOr(g.HomeConference), &locationID)
	if err != nil {
		return false, fmt.Errorf("resolving team %q: %w", g.HomeTeam, err)
	}

	awayID, err := c.repo.GetOrCreateTeam(ctx, valueOr(g.AwayTeam), valueOr(g.AwayConference), &locationID)
	if err != nil {
		return false, fmt.Errorf("resolving team %q: %w", g.AwayTeam, err)
	}

	return c.repo.InsertGame(ctx, &schema.Game{
		ID:          g.ID,
		GameDate:    g.GameDate(),
		HomeTeamID:  homeID,
		AwayTeamID:  awayID,
		HomeScore:   g.HomePoints,
		AwayScore:   g.AwayPoints,
		LocationID:  &locationID,
		Attendance:  g.Attendance,
		KickoffTime: g.KickoffTime(),
	})
}

func valueOr(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}
