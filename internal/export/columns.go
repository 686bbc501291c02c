package export

import "ulascansenturk/gameday-weather/internal/analysis"

// File names under the output directory. The chart renderer reads these.
const (
	FileJoined        = "joined_dataset.csv"
	FileByTemperature = "points_by_temp.csv"
	FileByWindPrecip  = "points_by_wind_precip.csv"
	FileByMoon        = "points_by_moon_illumination.csv"
	FileWinPct        = "win_pct_by_stadium_rain.csv"
	FileCorrelation   = "correlation_matrix.csv"
)

// Column headers shared by every file that carries the column.
const (
	ColGameID           = "Game ID"
	ColGameDate         = "Game Date"
	ColStadiumCity      = "Stadium City"
	ColHomeTeam         = "Home Team"
	ColAwayTeam         = "Away Team"
	ColHomeScore        = "Home Score"
	ColAwayScore        = "Away Score"
	ColTotalPoints      = "Total Points"
	ColAttendance       = "Attendance"
	ColTemperature      = "Temperature (F)"
	ColWindSpeed        = "Wind Speed (mph)"
	ColPrecipitation    = "Precipitation (in)"
	ColMoonIllumination = "Moon Illumination (%)"
	ColMoonPhase        = "Moon Phase"

	ColTemperatureBin = "Temperature Bin"
	ColWindBin        = "Wind Bin (mph)"
	ColPrecipFlag     = "Precipitation"
	ColMoonBin        = "Moon Illumination Bin"
	ColRainy          = "Rainy"

	ColGames          = "Games"
	ColHomeWins       = "Home Wins"
	ColHomeWinPct     = "Home Win Pct"
	ColAvgTotalPoints = "Avg Total Points"
	ColMinTotalPoints = "Min Total Points"
	ColMaxTotalPoints = "Max Total Points"
	ColStdTotalPoints = "Std Total Points"
	ColAvgHomePoints  = "Avg Home Points"
	ColAvgAwayPoints  = "Avg Away Points"

	ColMetric = "Metric"
)

// Flag values for ColPrecipFlag and ColRainy.
const (
	FlagYes = "Yes"
	FlagNo  = "No"
)

var JoinedHeader = []string{
	ColGameID, ColGameDate, ColStadiumCity, ColHomeTeam, ColAwayTeam,
	ColHomeScore, ColAwayScore, ColTotalPoints, ColAttendance,
	ColTemperature, ColWindSpeed, ColPrecipitation, ColMoonIllumination, ColMoonPhase,
}

var TemperatureHeader = []string{
	ColTemperatureBin, ColGames, ColAvgTotalPoints, ColMinTotalPoints,
	ColMaxTotalPoints, ColStdTotalPoints, ColAvgHomePoints, ColAvgAwayPoints,
}

var WindPrecipHeader = []string{ColWindBin, ColPrecipFlag, ColGames, ColAvgTotalPoints}

var MoonHeader = []string{ColMoonBin, ColGames, ColAvgTotalPoints}

var WinPctHeader = []string{ColStadiumCity, ColRainy, ColGames, ColHomeWins, ColHomeWinPct}

var metricLabels = map[analysis.Metric]string{
	analysis.MetricTemperature:      ColTemperature,
	analysis.MetricWindSpeed:        ColWindSpeed,
	analysis.MetricPrecipitation:    ColPrecipitation,
	analysis.MetricMoonIllumination: "Moon Illumination",
	analysis.MetricTotalPoints:      ColTotalPoints,
	analysis.MetricAttendance:       ColAttendance,
}

// MetricLabel is the header used for m in the correlation matrix.
func MetricLabel(m analysis.Metric) string {
	if label, ok := metricLabels[m]; ok {
		return label
	}
	return string(m)
}

func Flag(b bool) string {
	if b {
		return FlagYes
	}
	return FlagNo
}
