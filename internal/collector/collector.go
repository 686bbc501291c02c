package collector

import (
	"context"
	"errors"
	"fmt"
	"time"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/inmemorycache"
	"ulascansenturk/gameday-weather/internal/providers"

	"github.com/rs/zerolog/log"
)

const (
	SourceGames      = "games"
	SourceWeather    = "weather"
	SourceAirQuality = "airquality"
	SourceUV         = "uv"
	SourceMoon       = "moon"
)

// Sources lists every collect target in the order a full refresh runs them.
var Sources = []string{SourceGames, SourceWeather, SourceAirQuality, SourceUV, SourceMoon}

// Result summarises one collection run.
type Result struct {
	Source string
	Stored int
	// Skipped counts items that were already stored or unusable.
	Skipped int
	Failed  int
	// Remaining is how many eligible items are left for later runs.
	Remaining int
}

type Options struct {
	BatchLimit      int
	RequestDelay    time.Duration
	SeasonYear      int
	FootballMaxWeek int
	LocationTTL     time.Duration
}

type Clients struct {
	Weather    providers.WeatherArchiveAPI
	AirQuality providers.AirQualityAPI
	Astronomy  providers.AstronomyAPI
	UV         providers.OpenUVAPI
	Football   providers.FootballAPI
}

type Collector struct {
	repo    gamedata.Repository
	cache   inmemorycache.Cache
	clients Clients
	opts    Options
}

func NewCollector(repo gamedata.Repository, cache inmemorycache.Cache, clients Clients, opts Options) *Collector {
	return &Collector{
		repo:    repo,
		cache:   cache,
		clients: clients,
		opts:    opts,
	}
}

// Collect runs the collector for one source.
func (c *Collector) Collect(ctx context.Context, source string) (Result, error) {
	switch source {
	case SourceGames:
		return c.CollectGames(ctx)
	case SourceWeather:
		return c.CollectWeather(ctx)
	case SourceAirQuality:
		return c.CollectAirQuality(ctx)
	case SourceUV:
		return c.CollectUV(ctx)
	case SourceMoon:
		return c.CollectMoon(ctx)
	}
	return Result{}, fmt.Errorf("unknown source %q", source)
}

// locationID resolves a stadium city through the cache, creating the
// location row on first use.
func (c *Collector) locationID(ctx context.Context, city string) (uint, error) {
	if id, found := c.cache.Get(city); found {
		return id, nil
	}

	id, err := c.repo.GetOrCreateLocation(ctx, city)
	if err != nil {
		return 0, fmt.Errorf("resolving location %q: %w", city, err)
	}

	c.cache.Set(city, id, c.opts.LocationTTL)

	return id, nil
}

// wait pauses between provider requests.
func (c *Collector) wait(ctx context.Context) error {
	if c.opts.RequestDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.opts.RequestDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Collector) limitReached(stored int) bool {
	return c.opts.BatchLimit > 0 && stored >= c.opts.BatchLimit
}

func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func logResult(res Result) {
	log.Info().
		Str("source", res.Source).
		Int("stored", res.Stored).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Int("remaining", res.Remaining).
		Msg("Collection finished")
}
