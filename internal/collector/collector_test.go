package collector_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"ulascansenturk/gameday-weather/internal/collector"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/db/schema"
	"ulascansenturk/gameday-weather/internal/inmemorycache"
	"ulascansenturk/gameday-weather/internal/mocks"
	"ulascansenturk/gameday-weather/internal/providers"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

// locationIDFor numbers stadium cities 1..25 in table order.
func locationIDFor(_ context.Context, city string) uint {
	for i, st := range collector.Stadiums {
		if st.City == city {
			return uint(i + 1)
		}
	}
	return 0
}

type CollectorTestSuite struct {
	suite.Suite
	repo       *mocks.MockRepository
	weather    *mocks.MockWeatherArchiveAPI
	airQuality *mocks.MockAirQualityAPI
	astronomy  *mocks.MockAstronomyAPI
	uv         *mocks.MockOpenUVAPI
	football   *mocks.MockFootballAPI
	cache      *inmemorycache.InMemoryCache
	ctx        context.Context
}

func (s *CollectorTestSuite) SetupTest() {
	s.repo = mocks.NewMockRepository(s.T())
	s.weather = mocks.NewMockWeatherArchiveAPI(s.T())
	s.airQuality = mocks.NewMockAirQualityAPI(s.T())
	s.astronomy = mocks.NewMockAstronomyAPI(s.T())
	s.uv = mocks.NewMockOpenUVAPI(s.T())
	s.football = mocks.NewMockFootballAPI(s.T())
	s.cache = inmemorycache.NewInMemoryCacheProvider(time.Minute)
	s.ctx = context.Background()
}

func (s *CollectorTestSuite) TearDownTest() {
	s.cache.Close()
}

func (s *CollectorTestSuite) newCollector(limit int) *collector.Collector {
	return collector.NewCollector(s.repo, s.cache, collector.Clients{
		Weather:    s.weather,
		AirQuality: s.airQuality,
		Astronomy:  s.astronomy,
		UV:         s.uv,
		Football:   s.football,
	}, collector.Options{
		BatchLimit:      limit,
		SeasonYear:      2024,
		FootballMaxWeek: 3,
		LocationTTL:     time.Minute,
	})
}

func (s *CollectorTestSuite) expectLocations() {
	s.repo.On("GetOrCreateLocation", mock.Anything, mock.AnythingOfType("string")).
		Return(locationIDFor, nil).
		Times(len(collector.Stadiums))
}

func (s *CollectorTestSuite) TestSaturdays() {
	dates := collector.Saturdays(2024)

	s.Len(dates, 13)
	s.Equal("2024-09-07", dates[0])
	s.Equal("2024-11-30", dates[len(dates)-1])

	for _, d := range dates {
		parsed, err := time.Parse(schema.DateLayout, d)
		s.Require().NoError(err)
		s.Equal(time.Saturday, parsed.Weekday())
	}

	s.Equal("2023-09-02", collector.Saturdays(2023)[0])
}

func (s *CollectorTestSuite) TestCityForVenue() {
	city, ok := collector.CityForVenue("Ohio Stadium")
	s.True(ok)
	s.Equal("Columbus", city)

	city, ok = collector.CityForVenue("Tiger Stadium (LA)")
	s.True(ok)
	s.Equal("Baton Rouge", city)

	city, ok = collector.CityForVenue("Kyle Field at College Station")
	s.True(ok)
	s.Equal("College Station", city)

	_, ok = collector.CityForVenue("Rose Bowl")
	s.False(ok)

	_, ok = collector.CityForVenue("")
	s.False(ok)
}

func (s *CollectorTestSuite) TestCollectWeatherStopsAtBatchLimit() {
	s.expectLocations()
	s.repo.On("ExistingFactKeys", mock.Anything, schema.TableWeather).
		Return(map[gamedata.FactKey]struct{}{}, nil).Once()
	s.weather.On("GetGameHourWeather", mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.GameHourWeather{Temperature: floatp(61.5)}, nil).Times(3)
	s.repo.On("InsertWeather", mock.Anything, mock.MatchedBy(func(w *schema.Weather) bool {
		return w.Temperature != nil && *w.Temperature == 61.5
	})).Return(true, nil).Times(3)

	res, err := s.newCollector(3).CollectWeather(s.ctx)

	s.Require().NoError(err)
	s.Equal(3, res.Stored)
	s.Equal(0, res.Failed)
	s.Equal(13*len(collector.Stadiums)-3, res.Remaining)
}

func (s *CollectorTestSuite) TestCollectSkipsStoredPairs() {
	s.expectLocations()
	s.repo.On("ExistingFactKeys", mock.Anything, schema.TableAirQuality).
		Return(map[gamedata.FactKey]struct{}{
			{GameDate: "2024-09-07", LocationID: 1}: {},
		}, nil).Once()

	columbus, _ := collector.StadiumByCity("Columbus")
	s.airQuality.On("GetGameWindowAQI", mock.Anything, columbus.Coordinates, "2024-09-07").
		Return(42.0, nil).Once()
	s.repo.On("InsertAirQuality", mock.Anything, &schema.AirQuality{
		GameDate:       "2024-09-07",
		LocationID:     2,
		PollutantType:  providers.PollutantUSAQI,
		PollutantValue: floatp(42.0),
		Unit:           providers.UnitAQI,
	}).Return(true, nil).Once()

	res, err := s.newCollector(1).CollectAirQuality(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, res.Stored)
	s.Equal(13*len(collector.Stadiums)-1-1, res.Remaining)
}

func (s *CollectorTestSuite) TestCollectCountsFailuresAndKeepsGoing() {
	s.expectLocations()
	s.repo.On("ExistingFactKeys", mock.Anything, schema.TableUV).
		Return(map[gamedata.FactKey]struct{}{}, nil).Once()

	annArbor, _ := collector.StadiumByCity("Ann Arbor")
	columbus, _ := collector.StadiumByCity("Columbus")

	s.uv.On("GetUV", mock.Anything, annArbor.Coordinates, "2024-09-07").
		Return(nil, errors.New("openuv returned status code: 403")).Once()
	s.uv.On("GetUV", mock.Anything, columbus.Coordinates, "2024-09-07").
		Return(nil, providers.ErrNoData).Once()
	s.uv.On("GetUV", mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.UVReading{UVIndex: floatp(4.2), SafeExposureTime: intp(45)}, nil).Once()
	s.repo.On("InsertUV", mock.Anything, mock.MatchedBy(func(uv *schema.UVData) bool {
		return uv.LocationID == 3 && uv.Latitude == 40.7982 && *uv.SafeExposureTime == 45
	})).Return(true, nil).Once()

	res, err := s.newCollector(1).CollectUV(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, res.Stored)
	s.Equal(1, res.Failed)
	s.Equal(1, res.Skipped)
}

func (s *CollectorTestSuite) TestStoreErrorEndsRun() {
	s.expectLocations()
	s.repo.On("ExistingFactKeys", mock.Anything, schema.TableMoon).
		Return(map[gamedata.FactKey]struct{}{}, nil).Once()
	s.astronomy.On("GetMoon", mock.Anything, "Ann Arbor", "2024-09-07").
		Return(&providers.MoonReading{Phase: "Full Moon", Illumination: floatp(99)}, nil).Once()
	s.repo.On("InsertMoon", mock.Anything, mock.MatchedBy(func(m *schema.MoonData) bool {
		return *m.Latitude == 42.2808 && m.MoonPhase == "Full Moon"
	})).Return(false, errors.New("disk I/O error")).Once()

	res, err := s.newCollector(5).CollectMoon(s.ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "disk I/O error")
	s.Equal(0, res.Stored)
	s.Equal(0, res.Failed)
}

func (s *CollectorTestSuite) TestCancellationStopsBetweenRequests() {
	s.expectLocations()
	s.repo.On("ExistingFactKeys", mock.Anything, schema.TableWeather).
		Return(map[gamedata.FactKey]struct{}{}, nil).Once()
	s.weather.On("GetGameHourWeather", mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.GameHourWeather{}, nil).Once()
	s.repo.On("InsertWeather", mock.Anything, mock.Anything).Return(true, nil).Once()

	c := collector.NewCollector(s.repo, s.cache, collector.Clients{Weather: s.weather}, collector.Options{
		BatchLimit:   25,
		RequestDelay: time.Hour,
		SeasonYear:   2024,
		LocationTTL:  time.Minute,
	})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	res, err := c.CollectWeather(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Equal(1, res.Stored)
}

func (s *CollectorTestSuite) TestLocationsResolvedOncePerTTL() {
	s.expectLocations()
	s.repo.On("ExistingFactKeys", mock.Anything, mock.Anything).
		Return(map[gamedata.FactKey]struct{}{}, nil).Twice()
	s.weather.On("GetGameHourWeather", mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.GameHourWeather{}, nil).Once()
	s.repo.On("InsertWeather", mock.Anything, mock.Anything).Return(true, nil).Once()
	s.airQuality.On("GetGameWindowAQI", mock.Anything, mock.Anything, mock.Anything).
		Return(20.0, nil).Once()
	s.repo.On("InsertAirQuality", mock.Anything, mock.Anything).Return(true, nil).Once()

	c := s.newCollector(1)

	_, err := c.Collect(s.ctx, collector.SourceWeather)
	s.Require().NoError(err)
	_, err = c.Collect(s.ctx, collector.SourceAirQuality)
	s.Require().NoError(err)

	s.Equal(len(collector.Stadiums), s.cache.Len())
}

func (s *CollectorTestSuite) TestCollectGames() {
	s.repo.On("ExistingGameIDs", mock.Anything).
		Return(map[int64]struct{}{100: {}}, nil).Once()

	s.football.On("GetGames", mock.Anything, 2024, 1).Return([]providers.FootballGame{
		{ID: 100, Venue: "Ohio Stadium", HomePoints: intp(1), AwayPoints: intp(0)},
		{ID: 101, Venue: "Rose Bowl", HomeTeam: "UCLA", HomePoints: intp(20), AwayPoints: intp(10)},
		{ID: 102, Venue: "Kinnick Stadium", HomeTeam: "Iowa", AwayTeam: "Troy"},
		{
			ID: 103, Venue: "Autzen Stadium", StartDate: "2024-08-31T20:00:00.000Z",
			HomeTeam: "Oregon", AwayTeam: "Idaho", HomeConference: "Big Ten",
			HomePoints: intp(24), AwayPoints: intp(14), Attendance: intp(58000),
		},
		{ID: 104, Venue: "Beaver Stadium", HomeTeam: "Penn State", AwayTeam: "Bowling Green", HomePoints: intp(34), AwayPoints: intp(27)},
	}, nil).Once()

	eugene := locationIDFor(s.ctx, "Eugene")

	s.repo.On("GetOrCreateLocation", mock.Anything, "Eugene").Return(eugene, nil).Once()
	s.repo.On("GetOrCreateTeam", mock.Anything, "Oregon", "Big Ten", &eugene).Return(uint(1), nil).Once()
	s.repo.On("GetOrCreateTeam", mock.Anything, "Idaho", "Unknown", &eugene).Return(uint(2), nil).Once()
	s.repo.On("InsertGame", mock.Anything, mock.MatchedBy(func(g *schema.Game) bool {
		return g.ID == 103 &&
			g.GameDate == "2024-08-31" &&
			g.HomeTeamID == 1 && g.AwayTeamID == 2 &&
			*g.HomeScore == 24 && *g.AwayScore == 14 &&
			*g.LocationID == eugene &&
			*g.Attendance == 58000 &&
			*g.KickoffTime == "20:00:00.000Z"
	})).Return(true, nil).Once()

	res, err := s.newCollector(1).CollectGames(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, res.Stored)
	s.Equal(3, res.Skipped)
	s.Equal(1, res.Remaining)
	s.Equal(0, res.Failed)
}

func (s *CollectorTestSuite) TestCollectGamesContinuesAfterFailedWeek() {
	s.repo.On("ExistingGameIDs", mock.Anything).Return(map[int64]struct{}{}, nil).Once()
	s.football.On("GetGames", mock.Anything, 2024, 1).
		Return(nil, errors.New("college football returned status code: 500")).Once()
	s.football.On("GetGames", mock.Anything, 2024, 2).Return([]providers.FootballGame{}, nil).Once()
	s.football.On("GetGames", mock.Anything, 2024, 3).Return([]providers.FootballGame{
		{ID: 300, Venue: "Sanford Stadium", HomeTeam: "Georgia", AwayTeam: "Kentucky", HomePoints: intp(13), AwayPoints: intp(12)},
	}, nil).Once()

	s.repo.On("GetOrCreateLocation", mock.Anything, "Athens").Return(uint(9), nil).Once()
	s.repo.On("GetOrCreateTeam", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(uint(5), nil).Twice()
	s.repo.On("InsertGame", mock.Anything, mock.Anything).Return(false, nil).Once()

	res, err := s.newCollector(25).CollectGames(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, res.Failed)
	s.Equal(0, res.Stored)
	s.Equal(1, res.Skipped)
}

func (s *CollectorTestSuite) TestUnknownSource() {
	_, err := s.newCollector(1).Collect(s.ctx, "tides")

	s.Error(err)
}

func TestCollectorTestSuite(t *testing.T) {
	suite.Run(t, new(CollectorTestSuite))
}
