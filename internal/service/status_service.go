package service

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/db/schema"
)

const recentGamesLimit = 5

type StatusService interface {
	Print(ctx context.Context) error
}

type statusService struct {
	repo gamedata.Repository
	out  io.Writer
}

func NewStatusService(repo gamedata.Repository, out io.Writer) StatusService {
	return &statusService{repo: repo, out: out}
}

// Print writes row counts per table, per-stadium counts for every non-empty
// located table and the most recent stored games.
func (s *statusService) Print(ctx context.Context) error {
	counts, err := s.repo.CountRows(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Table\tRows")
	for _, c := range counts {
		if !c.Exists {
			fmt.Fprintf(tw, "%s\tnot created\n", c.Table)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\n", c.Table, c.Rows)
	}

	hasGames := false
	for _, c := range counts {
		if !c.Exists || c.Rows == 0 || (c.Table != schema.TableGames && !isFact(c.Table)) {
			continue
		}
		if c.Table == schema.TableGames {
			hasGames = true
		}

		byCity, err := s.repo.CountByLocation(ctx, c.Table)
		if err != nil {
			return fmt.Errorf("counting %s by location: %w", c.Table, err)
		}

		fmt.Fprintf(tw, "\n%s by stadium\n", c.Table)
		for _, lc := range byCity {
			fmt.Fprintf(tw, "%s\t%d\n", lc.CityName, lc.Rows)
		}
	}

	if hasGames {
		games, err := s.repo.RecentGames(ctx, recentGamesLimit)
		if err != nil {
			return fmt.Errorf("loading recent games: %w", err)
		}

		fmt.Fprintln(tw, "\nRecent games")
		for _, g := range games {
			fmt.Fprintf(tw, "%s\t%s\t%s %s - %s %s\n",
				g.GameDate, g.StadiumCity,
				g.HomeTeamName, score(g.HomeScore), score(g.AwayScore), g.AwayTeamName)
		}
	}

	return tw.Flush()
}

func isFact(table string) bool {
	for _, t := range schema.FactTables {
		if t == table {
			return true
		}
	}
	return false
}

func score(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprint(*v)
}
