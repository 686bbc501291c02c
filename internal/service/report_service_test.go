package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"ulascansenturk/gameday-weather/internal/analysis"
	"ulascansenturk/gameday-weather/internal/mocks"
	"ulascansenturk/gameday-weather/internal/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

type ReportServiceTestSuite struct {
	suite.Suite
	repo     *mocks.MockRepository
	exporter *mocks.MockReportExporter
	out      *bytes.Buffer
	service  service.ReportService
	ctx      context.Context
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.repo = mocks.NewMockRepository(s.T())
	s.exporter = mocks.NewMockReportExporter(s.T())
	s.out = &bytes.Buffer{}
	s.service = service.NewReportService(s.repo, s.exporter, s.out)
	s.ctx = context.Background()
}

func (s *ReportServiceTestSuite) dataset() analysis.Dataset {
	return analysis.Dataset{
		Rows: []analysis.GameRow{
			{
				GameID: 1, GameDate: "2024-09-07", StadiumCity: "Madison",
				HomeScore: intp(30), AwayScore: intp(20), TotalPoints: intp(50),
				Temperature: floatp(35), WindSpeed: floatp(4), Precipitation: floatp(0),
			},
			{
				GameID: 2, GameDate: "2024-09-14", StadiumCity: "Madison",
				HomeScore: intp(17), AwayScore: intp(23), TotalPoints: intp(40),
				Temperature: floatp(65), WindSpeed: floatp(12), Precipitation: floatp(0.3),
			},
		},
		Missing: []analysis.Metric{analysis.MetricMoonIllumination},
	}
}

func (s *ReportServiceTestSuite) TestRunPrintsSummaryWithoutExport() {
	s.repo.On("LoadJoinedGames", mock.Anything).Return(s.dataset(), nil)

	report, err := s.service.Run(s.ctx, service.Options{})

	s.Require().NoError(err)
	s.Len(report.Dataset.Rows, 2)
	s.Equal(1, report.ByTemperature[0].Count)
	s.Equal(50.0, *report.ByTemperature[0].AvgTotalPoints)

	printed := s.out.String()
	s.Contains(printed, "Joined dataset: 2 games")
	s.Contains(printed, "no Moon Illumination data collected yet")
	s.Contains(printed, "Points by temperature")
	s.Contains(printed, "Points by wind and precipitation")
	s.Contains(printed, "Home win pct by stadium and rain")
	s.Contains(printed, "Madison")

	s.exporter.AssertNotCalled(s.T(), "Export", mock.Anything)
}

func (s *ReportServiceTestSuite) TestRunExportsWhenRequested() {
	s.repo.On("LoadJoinedGames", mock.Anything).Return(s.dataset(), nil)
	s.exporter.On("Export", mock.AnythingOfType("*analysis.Report")).
		Return([]string{"outputs/joined_dataset.csv"}, nil)

	_, err := s.service.Run(s.ctx, service.Options{SaveCSV: true})

	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestRunFailsOnEmptyDataset() {
	s.repo.On("LoadJoinedGames", mock.Anything).Return(analysis.Dataset{}, nil)

	report, err := s.service.Run(s.ctx, service.Options{SaveCSV: true})

	s.Nil(report)
	s.ErrorIs(err, analysis.ErrEmptyDataset)
	s.Empty(s.out.String())
	s.exporter.AssertNotCalled(s.T(), "Export", mock.Anything)
}

func (s *ReportServiceTestSuite) TestRunPropagatesLoadError() {
	loadErr := errors.New("loading joined games: no such table: games")
	s.repo.On("LoadJoinedGames", mock.Anything).Return(analysis.Dataset{}, loadErr)

	_, err := s.service.Run(s.ctx, service.Options{})

	s.ErrorIs(err, loadErr)
}

func (s *ReportServiceTestSuite) TestRunPropagatesExportError() {
	s.repo.On("LoadJoinedGames", mock.Anything).Return(s.dataset(), nil)
	s.exporter.On("Export", mock.Anything).Return(nil, errors.New("disk full"))

	report, err := s.service.Run(s.ctx, service.Options{SaveCSV: true})

	s.NotNil(report)
	s.EqualError(err, "disk full")
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
