package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"ulascansenturk/gameday-weather/internal/analysis"
	"ulascansenturk/gameday-weather/internal/export"

	"github.com/stretchr/testify/suite"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }

type ExporterTestSuite struct {
	suite.Suite
	dir      string
	exporter *export.Exporter
}

func (s *ExporterTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "output")
	s.exporter = export.NewExporter(s.dir)
}

func (s *ExporterTestSuite) sampleReport() *analysis.Report {
	rows := []analysis.GameRow{
		{
			GameID: 401, GameDate: "2024-09-07", StadiumCity: "Madison",
			HomeTeamName: "Wisconsin", AwayTeamName: "South Dakota",
			HomeScore: intp(27), AwayScore: intp(13), TotalPoints: intp(40), Attendance: intp(76000),
			Temperature: floatp(72.5), WindSpeed: floatp(8), Precipitation: floatp(0),
			MoonIllumination: floatp(12), MoonPhase: strp("Waxing Crescent"),
		},
		{
			GameID: 402, GameDate: "2024-09-14", StadiumCity: "Madison",
			HomeTeamName: "Wisconsin", AwayTeamName: "Alabama",
			HomeScore: intp(10), AwayScore: intp(42), TotalPoints: intp(52),
			Temperature: floatp(81), WindSpeed: floatp(3), Precipitation: floatp(0.2),
		},
	}

	report, err := analysis.BuildReport(analysis.Dataset{Rows: rows})
	s.Require().NoError(err)
	return report
}

func (s *ExporterTestSuite) read(name string) [][]string {
	f, err := os.Open(filepath.Join(s.dir, name))
	s.Require().NoError(err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	s.Require().NoError(err)
	return records
}

func (s *ExporterTestSuite) TestExportWritesAllFiles() {
	written, err := s.exporter.Export(s.sampleReport())
	s.Require().NoError(err)
	s.Len(written, 6)

	for _, name := range []string{
		export.FileJoined, export.FileByTemperature, export.FileByWindPrecip,
		export.FileByMoon, export.FileWinPct, export.FileCorrelation,
	} {
		s.FileExists(filepath.Join(s.dir, name))
	}
	s.DirExists(filepath.Join(s.dir, "figures"))
}

func (s *ExporterTestSuite) TestJoinedWritesNullsAsEmpty() {
	_, err := s.exporter.Export(s.sampleReport())
	s.Require().NoError(err)

	records := s.read(export.FileJoined)
	s.Require().Len(records, 3)
	s.Equal(export.JoinedHeader, records[0])

	s.Equal([]string{
		"401", "2024-09-07", "Madison", "Wisconsin", "South Dakota",
		"27", "13", "40", "76000", "72.5", "8", "0", "12", "Waxing Crescent",
	}, records[1])

	second := records[2]
	s.Equal("", second[8])
	s.Equal("", second[12])
	s.Equal("", second[13])
}

func (s *ExporterTestSuite) TestAggregationsKeepEveryBin() {
	_, err := s.exporter.Export(s.sampleReport())
	s.Require().NoError(err)

	temps := s.read(export.FileByTemperature)
	s.Require().Len(temps, len(analysis.TemperatureBinLabels)+1)
	s.Equal([]string{"<40", "0", "", "", "", "", "", ""}, temps[1])
	s.Equal("60-79", temps[3][0])
	s.Equal("1", temps[3][1])
	s.Equal("40", temps[3][2])

	wind := s.read(export.FileByWindPrecip)
	s.Len(wind, len(analysis.WindBinLabels)*2+1)
	s.Equal(export.WindPrecipHeader, wind[0])

	moon := s.read(export.FileByMoon)
	s.Len(moon, len(analysis.MoonBinLabels)+1)
	s.Equal([]string{"0-0.25", "1", "40"}, moon[1])
}

func (s *ExporterTestSuite) TestWinPctUsesFlags() {
	_, err := s.exporter.Export(s.sampleReport())
	s.Require().NoError(err)

	records := s.read(export.FileWinPct)
	s.Require().Len(records, 3)
	s.Equal([]string{"Madison", export.FlagNo, "1", "1", "1"}, records[1])
	s.Equal([]string{"Madison", export.FlagYes, "1", "0", "0"}, records[2])
}

func (s *ExporterTestSuite) TestCorrelationHasIndexColumn() {
	records := export.CorrelationRecords(analysis.CorrelationMatrix{
		Metrics: []analysis.Metric{analysis.MetricTemperature, analysis.MetricTotalPoints},
		Values: [][]*float64{
			{floatp(1), floatp(-0.5)},
			{floatp(-0.5), nil},
		},
	})

	s.Equal([][]string{
		{export.ColMetric, export.ColTemperature, export.ColTotalPoints},
		{export.ColTemperature, "1", "-0.5"},
		{export.ColTotalPoints, "-0.5", ""},
	}, records)
}

func (s *ExporterTestSuite) TestExportOverwritesPreviousFiles() {
	s.Require().NoError(os.MkdirAll(s.dir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, export.FileJoined), []byte("stale\n"), 0o644))

	_, err := s.exporter.Export(s.sampleReport())
	s.Require().NoError(err)

	records := s.read(export.FileJoined)
	s.Equal(export.JoinedHeader, records[0])
}

func (s *ExporterTestSuite) TestExportFailsWhenDirIsAFile() {
	parent := s.T().TempDir()
	blocked := filepath.Join(parent, "blocked")
	s.Require().NoError(os.WriteFile(blocked, []byte("x"), 0o644))

	_, err := export.NewExporter(blocked).Export(s.sampleReport())
	s.Error(err)
	s.Contains(err.Error(), "creating output directory")
}

func TestExporterTestSuite(t *testing.T) {
	suite.Run(t, new(ExporterTestSuite))
}
