package collector

import (
	"context"
	"errors"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/db/schema"
	"ulascansenturk/gameday-weather/internal/providers"

	"github.com/rs/zerolog/log"
)

type pendingFact struct {
	stadium    Stadium
	date       string
	locationID uint
}

// storeFunc fetches one (stadium, date) record and inserts it, reporting
// whether a new row was written.
type storeFunc func(ctx context.Context, p pendingFact) (bool, error)

func (c *Collector) CollectWeather(ctx context.Context) (Result, error) {
	return c.collectFacts(ctx, SourceWeather, schema.TableWeather, func(ctx context.Context, p pendingFact) (bool, error) {
		reading, err := c.clients.Weather.GetGameHourWeather(ctx, p.stadium.Coordinates, p.date)
		if err != nil {
			return false, err
		}

		return stored(c.repo.InsertWeather(ctx, &schema.Weather{
			GameDate:      p.date,
			LocationID:    p.locationID,
			Temperature:   reading.Temperature,
			WindSpeed:     reading.WindSpeed,
			Humidity:      reading.Humidity,
			Precipitation: reading.Precipitation,
			WeatherCode:   reading.WeatherCode,
		}))
	})
}

func (c *Collector) CollectAirQuality(ctx context.Context) (Result, error) {
	return c.collectFacts(ctx, SourceAirQuality, schema.TableAirQuality, func(ctx context.Context, p pendingFact) (bool, error) {
		aqi, err := c.clients.AirQuality.GetGameWindowAQI(ctx, p.stadium.Coordinates, p.date)
		if err != nil {
			return false, err
		}

		return stored(c.repo.InsertAirQuality(ctx, &schema.AirQuality{
			GameDate:       p.date,
			LocationID:     p.locationID,
			PollutantType:  providers.PollutantUSAQI,
			PollutantValue: &aqi,
			Unit:           providers.UnitAQI,
		}))
	})
}

func (c *Collector) CollectUV(ctx context.Context) (Result, error) {
	return c.collectFacts(ctx, SourceUV, schema.TableUV, func(ctx context.Context, p pendingFact) (bool, error) {
		reading, err := c.clients.UV.GetUV(ctx, p.stadium.Coordinates, p.date)
		if err != nil {
			return false, err
		}

		return stored(c.repo.InsertUV(ctx, &schema.UVData{
			GameDate:         p.date,
			LocationID:       p.locationID,
			Latitude:         p.stadium.Coordinates.Latitude,
			Longitude:        p.stadium.Coordinates.Longitude,
			UVIndex:          reading.UVIndex,
			UVMax:            reading.UVMax,
			UVMaxTime:        reading.UVMaxTime,
			Ozone:            reading.Ozone,
			SafeExposureTime: reading.SafeExposureTime,
		}))
	})
}

func (c *Collector) CollectMoon(ctx context.Context) (Result, error) {
	return c.collectFacts(ctx, SourceMoon, schema.TableMoon, func(ctx context.Context, p pendingFact) (bool, error) {
		moon, err := c.clients.Astronomy.GetMoon(ctx, p.stadium.City, p.date)
		if err != nil {
			return false, err
		}

		lat, lon := moon.Latitude, moon.Longitude
		if lat == nil || lon == nil {
			lat, lon = &p.stadium.Coordinates.Latitude, &p.stadium.Coordinates.Longitude
		}

		return stored(c.repo.InsertMoon(ctx, &schema.MoonData{
			GameDate:         p.date,
			LocationID:       p.locationID,
			Latitude:         lat,
			Longitude:        lon,
			MoonPhase:        moon.Phase,
			MoonIllumination: moon.Illumination,
			Moonrise:         moon.Moonrise,
			Moonset:          moon.Moonset,
			MoonAltitude:     moon.Altitude,
			MoonAzimuth:      moon.Azimuth,
		}))
	})
}

// collectFacts walks every (Saturday, stadium) pair missing from table and
// stores up to BatchLimit new records.
func (c *Collector) collectFacts(ctx context.Context, source, table string, store storeFunc) (Result, error) {
	res := Result{Source: source}

	pending, err := c.pendingFacts(ctx, table)
	if err != nil {
		return res, err
	}

	log.Info().
		Str("source", source).
		Int("season", c.opts.SeasonYear).
		Int("pending", len(pending)).
		Int("batch_limit", c.opts.BatchLimit).
		Msg("Starting collection")

	for i, p := range pending {
		if c.limitReached(res.Stored) {
			log.Info().Int("stored", res.Stored).Msg("Reached batch limit")
			break
		}

		if i > 0 {
			if err := c.wait(ctx); err != nil {
				res.Remaining = len(pending) - res.Stored
				return res, err
			}
		}

		inserted, err := store(ctx, p)
		switch {
		case err == nil && inserted:
			res.Stored++
			log.Debug().Str("source", source).Str("city", p.stadium.City).Str("date", p.date).Msg("Stored record")
		case err == nil:
			res.Skipped++
		case errors.Is(err, providers.ErrNoData):
			res.Skipped++
			log.Warn().Str("source", source).Str("city", p.stadium.City).Str("date", p.date).Msg("No data available")
		case isCancellation(ctx, err):
			res.Remaining = len(pending) - res.Stored
			return res, ctx.Err()
		default:
			if isStoreError(err) {
				res.Remaining = len(pending) - res.Stored
				return res, err
			}
			res.Failed++
			log.Warn().Err(err).Str("source", source).Str("city", p.stadium.City).Str("date", p.date).Msg("Fetch failed")
		}
	}

	res.Remaining = len(pending) - res.Stored
	logResult(res)

	return res, nil
}

func (c *Collector) pendingFacts(ctx context.Context, table string) ([]pendingFact, error) {
	existing, err := c.repo.ExistingFactKeys(ctx, table)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]uint, len(Stadiums))
	for _, st := range Stadiums {
		id, err := c.locationID(ctx, st.City)
		if err != nil {
			return nil, err
		}
		ids[st.City] = id
	}

	var pending []pendingFact
	for _, date := range Saturdays(c.opts.SeasonYear) {
		for _, st := range Stadiums {
			key := gamedata.FactKey{GameDate: date, LocationID: ids[st.City]}
			if _, ok := existing[key]; ok {
				continue
			}
			pending = append(pending, pendingFact{stadium: st, date: date, locationID: ids[st.City]})
		}
	}

	return pending, nil
}

type storeError struct {
	err error
}

func (e *storeError) Error() string { return e.err.Error() }

func (e *storeError) Unwrap() error { return e.err }

// stored marks repository failures so they end the run instead of being
// counted as a failed fetch.
func stored(inserted bool, err error) (bool, error) {
	if err != nil {
		return false, &storeError{err: err}
	}
	return inserted, nil
}

func isStoreError(err error) bool {
	var se *storeError
	return errors.As(err, &se)
}
