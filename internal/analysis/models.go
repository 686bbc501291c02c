package analysis

import (
	"errors"
	"math"
)

var ErrEmptyDataset = errors.New("joined dataset has 0 rows, verify database content")

// Metric names a numeric column of the joined dataset.
type Metric string

const (
	MetricTemperature      Metric = "temperature"
	MetricWindSpeed        Metric = "wind_speed"
	MetricPrecipitation    Metric = "precipitation"
	MetricMoonIllumination Metric = "moon_illumination"
	MetricTotalPoints      Metric = "total_points"
	MetricAttendance       Metric = "attendance"
)

// CorrelationMetrics is the candidate column order of the correlation matrix.
var CorrelationMetrics = []Metric{
	MetricTemperature,
	MetricWindSpeed,
	MetricPrecipitation,
	MetricMoonIllumination,
	MetricTotalPoints,
	MetricAttendance,
}

// GameRow is one game of the flat join. Pointer fields are null when the
// store has no value, e.g. no weather collected yet for that date and city.
type GameRow struct {
	GameID           int64
	GameDate         string
	StadiumCity      string
	HomeTeamName     string
	AwayTeamName     string
	HomeScore        *int
	AwayScore        *int
	TotalPoints      *int
	Attendance       *int
	Temperature      *float64
	WindSpeed        *float64
	Precipitation    *float64
	MoonIllumination *float64
	MoonPhase        *string
}

// Value returns the numeric value of m for the row. Moon illumination is
// returned as a 0-1 fraction, the store keeps it as a percentage.
func (r GameRow) Value(m Metric) (float64, bool) {
	switch m {
	case MetricTemperature:
		return floatValue(r.Temperature)
	case MetricWindSpeed:
		return floatValue(r.WindSpeed)
	case MetricPrecipitation:
		return floatValue(r.Precipitation)
	case MetricMoonIllumination:
		v, ok := floatValue(r.MoonIllumination)
		if !ok {
			return 0, false
		}
		return v / 100.0, true
	case MetricTotalPoints:
		return intValue(r.TotalPoints)
	case MetricAttendance:
		return intValue(r.Attendance)
	}
	return 0, false
}

// Rainy treats a missing precipitation value as dry.
func (r GameRow) Rainy() bool {
	v, ok := floatValue(r.Precipitation)
	return ok && v > 0
}

// Dataset is the loaded flat table plus the metric columns the store could
// not supply at all (their values read as null in every row).
type Dataset struct {
	Rows    []GameRow
	Missing []Metric
}

func (d Dataset) Has(m Metric) bool {
	for _, missing := range d.Missing {
		if missing == m {
			return false
		}
	}
	return true
}

func floatValue(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

func intValue(v *int) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}
