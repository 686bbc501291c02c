package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"ulascansenturk/gameday-weather/internal/db/gamedata"
	"ulascansenturk/gameday-weather/internal/mocks"
	"ulascansenturk/gameday-weather/internal/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatusServiceTestSuite struct {
	suite.Suite
	repo    *mocks.MockRepository
	out     *bytes.Buffer
	service service.StatusService
	ctx     context.Context
}

func (s *StatusServiceTestSuite) SetupTest() {
	s.repo = mocks.NewMockRepository(s.T())
	s.out = &bytes.Buffer{}
	s.service = service.NewStatusService(s.repo, s.out)
	s.ctx = context.Background()
}

func (s *StatusServiceTestSuite) TestPrintsCountsAndRecentGames() {
	s.repo.On("CountRows", mock.Anything).Return([]gamedata.TableCount{
		{Table: "locations", Rows: 2, Exists: true},
		{Table: "teams", Rows: 4, Exists: true},
		{Table: "games", Rows: 3, Exists: true},
		{Table: "weather", Rows: 0, Exists: true},
		{Table: "air_quality", Exists: false},
		{Table: "uv_data", Exists: false},
		{Table: "moon_data", Rows: 1, Exists: true},
	}, nil)
	s.repo.On("CountByLocation", mock.Anything, "games").Return([]gamedata.LocationCount{
		{CityName: "Madison", Rows: 2},
		{CityName: "Ann Arbor", Rows: 1},
	}, nil)
	s.repo.On("CountByLocation", mock.Anything, "moon_data").Return([]gamedata.LocationCount{
		{CityName: "Madison", Rows: 1},
	}, nil)
	s.repo.On("RecentGames", mock.Anything, 5).Return([]gamedata.RecentGame{
		{GameDate: "2024-11-30", StadiumCity: "Ann Arbor", HomeTeamName: "Michigan", AwayTeamName: "Ohio State", HomeScore: intp(13), AwayScore: intp(10)},
		{GameDate: "2024-11-23", StadiumCity: "Madison", HomeTeamName: "Wisconsin", AwayTeamName: "Nebraska"},
	}, nil)

	s.Require().NoError(s.service.Print(s.ctx))

	printed := s.out.String()
	s.Contains(printed, "air_quality")
	s.Contains(printed, "not created")
	s.Contains(printed, "games by stadium")
	s.Contains(printed, "moon_data by stadium")
	s.NotContains(printed, "weather by stadium")
	s.Contains(printed, "Michigan 13 - 10 Ohio State")
	s.Contains(printed, "Wisconsin ? - ? Nebraska")
}

func (s *StatusServiceTestSuite) TestEmptyStoreSkipsBreakdown() {
	s.repo.On("CountRows", mock.Anything).Return([]gamedata.TableCount{
		{Table: "locations"},
		{Table: "games"},
	}, nil)

	s.Require().NoError(s.service.Print(s.ctx))

	s.repo.AssertNotCalled(s.T(), "CountByLocation", mock.Anything, mock.Anything)
	s.repo.AssertNotCalled(s.T(), "RecentGames", mock.Anything, mock.Anything)
}

func (s *StatusServiceTestSuite) TestCountErrorIsReturned() {
	s.repo.On("CountRows", mock.Anything).Return(nil, errors.New("database is locked"))

	s.EqualError(s.service.Print(s.ctx), "database is locked")
}

func TestStatusServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}
