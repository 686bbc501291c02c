package analysis_test

import (
	"testing"
	"ulascansenturk/gameday-weather/internal/analysis"

	"github.com/stretchr/testify/suite"
)

type ReportTestSuite struct {
	suite.Suite
}

func (s *ReportTestSuite) TestWinPctRainScenario() {
	rows := []analysis.GameRow{
		withPrecip(game("Madison", 28, 14), 0),
		withPrecip(game("Madison", 10, 24), 0.1),
		withPrecip(game("Madison", 7, 21), 0),
	}

	groups := analysis.HomeWinPctByStadiumRain(rows)
	s.Require().Len(groups, 2)

	dry, rainy := groups[0], groups[1]

	s.Equal("Madison", dry.StadiumCity)
	s.False(dry.Rainy)
	s.Equal(2, dry.NumGames)
	s.Equal(1, dry.NumWins)
	s.Require().NotNil(dry.WinPct)
	s.Equal(0.5, *dry.WinPct)

	s.True(rainy.Rainy)
	s.Equal(1, rainy.NumGames)
	s.Equal(0, rainy.NumWins)
	s.Equal(0.0, *rainy.WinPct)
}

func (s *ReportTestSuite) TestWinPctTiesAndMissingScores() {
	rows := []analysis.GameRow{
		game("Austin", 17, 17),
		game("Austin", 31, 3),
		{StadiumCity: "Eugene", Precipitation: floatp(0.3)},
		{StadiumCity: "Athens", HomeScore: intp(21)},
	}

	groups := analysis.HomeWinPctByStadiumRain(rows)
	s.Require().Len(groups, 3)

	s.Equal("Athens", groups[0].StadiumCity)
	s.Equal(0, groups[0].NumGames)
	s.Nil(groups[0].WinPct)

	s.Equal("Austin", groups[1].StadiumCity)
	s.False(groups[1].Rainy)
	s.Equal(2, groups[1].NumGames)
	s.Equal(1, groups[1].NumWins)
	s.Equal(0.5, *groups[1].WinPct)

	s.Equal("Eugene", groups[2].StadiumCity)
	s.True(groups[2].Rainy)
	s.Nil(groups[2].WinPct)

	for _, group := range groups {
		if group.NumGames > 0 {
			s.GreaterOrEqual(*group.WinPct, 0.0)
			s.LessOrEqual(*group.WinPct, 1.0)
		}
	}
}

func (s *ReportTestSuite) TestBuildReportRejectsEmptyDataset() {
	report, err := analysis.BuildReport(analysis.Dataset{})

	s.ErrorIs(err, analysis.ErrEmptyDataset)
	s.Nil(report)
}

func (s *ReportTestSuite) TestBuildReportWithMissingFactTables() {
	ds := analysis.Dataset{
		Rows: []analysis.GameRow{
			game("Lincoln", 24, 17),
			game("Lincoln", 14, 20),
		},
		Missing: []analysis.Metric{analysis.MetricTemperature, analysis.MetricWindSpeed, analysis.MetricPrecipitation, analysis.MetricMoonIllumination},
	}

	report, err := analysis.BuildReport(ds)
	s.Require().NoError(err)

	s.Len(report.ByTemperature, 4)
	for _, bin := range report.ByTemperature {
		s.Equal(0, bin.Count)
	}
	s.Len(report.ByWindPrecip, 6)
	s.Len(report.ByMoon, 4)
	s.Require().Len(report.ByStadiumRain, 1)
	s.Equal(2, report.ByStadiumRain[0].NumGames)
	s.Equal([]analysis.Metric{analysis.MetricTotalPoints, analysis.MetricAttendance}, report.Correlation.Metrics)
}

func TestReportTestSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}
