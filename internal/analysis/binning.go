package analysis

// Bin boundaries are fixed so reports stay comparable between runs with
// different sample sizes.
var (
	TemperatureBinLabels = []string{"<40", "40-59", "60-79", "80+"}
	WindBinLabels        = []string{"0-5", "6-15", "16+"}
	MoonBinLabels        = []string{"0-0.25", "0.25-0.5", "0.5-0.75", "0.75-1.0"}
)

type TemperatureBin struct {
	Label          string
	Count          int
	AvgTotalPoints *float64
	MinTotalPoints *float64
	MaxTotalPoints *float64
	StdTotalPoints *float64
	AvgHomePoints  *float64
	AvgAwayPoints  *float64
}

type WindPrecipCell struct {
	WindBin        string
	Precipitation  bool
	Count          int
	AvgTotalPoints *float64
}

type MoonBin struct {
	Label          string
	Count          int
	AvgTotalPoints *float64
}

// temperatureBin maps a Fahrenheit reading onto the half-open bins
// (-inf,40) [40,60) [60,80) [80,+inf).
func temperatureBin(t float64) int {
	switch {
	case t < 40:
		return 0
	case t < 60:
		return 1
	case t < 80:
		return 2
	default:
		return 3
	}
}

// windBin maps mph onto [0,5] (5,15] (15,+inf).
func windBin(w float64) int {
	switch {
	case w <= 5:
		return 0
	case w <= 15:
		return 1
	default:
		return 2
	}
}

// moonBin maps a fraction in [0,1] onto [0,.25] (.25,.5] (.5,.75] (.75,1].
func moonBin(f float64) int {
	switch {
	case f <= 0.25:
		return 0
	case f <= 0.5:
		return 1
	case f <= 0.75:
		return 2
	default:
		return 3
	}
}

// PointsByTemperature groups rows into the four temperature bins. Rows
// without a temperature are left out; every bin is emitted even when empty.
func PointsByTemperature(rows []GameRow) []TemperatureBin {
	counts := make([]int, len(TemperatureBinLabels))
	total := make([]accumulator, len(TemperatureBinLabels))
	home := make([]accumulator, len(TemperatureBinLabels))
	away := make([]accumulator, len(TemperatureBinLabels))

	for _, row := range rows {
		t, ok := row.Value(MetricTemperature)
		if !ok {
			continue
		}
		i := temperatureBin(t)
		counts[i]++
		total[i].addIfPresent(row.Value(MetricTotalPoints))
		home[i].addIfPresent(intValue(row.HomeScore))
		away[i].addIfPresent(intValue(row.AwayScore))
	}

	bins := make([]TemperatureBin, 0, len(TemperatureBinLabels))
	for i, label := range TemperatureBinLabels {
		bins = append(bins, TemperatureBin{
			Label:          label,
			Count:          counts[i],
			AvgTotalPoints: total[i].Mean(),
			MinTotalPoints: total[i].Min(),
			MaxTotalPoints: total[i].Max(),
			StdTotalPoints: total[i].Std(),
			AvgHomePoints:  home[i].Mean(),
			AvgAwayPoints:  away[i].Mean(),
		})
	}
	return bins
}

// PointsByWindPrecip cross-tabulates wind bins with the precipitation flag.
// All six cells are emitted, zero-count cells carry a null mean.
func PointsByWindPrecip(rows []GameRow) []WindPrecipCell {
	var counts [3][2]int
	var total [3][2]accumulator

	for _, row := range rows {
		w, ok := row.Value(MetricWindSpeed)
		if !ok {
			continue
		}
		i := windBin(w)
		j := 0
		if row.Rainy() {
			j = 1
		}
		counts[i][j]++
		total[i][j].addIfPresent(row.Value(MetricTotalPoints))
	}

	cells := make([]WindPrecipCell, 0, len(WindBinLabels)*2)
	for i, label := range WindBinLabels {
		for j, precip := range []bool{false, true} {
			cells = append(cells, WindPrecipCell{
				WindBin:        label,
				Precipitation:  precip,
				Count:          counts[i][j],
				AvgTotalPoints: total[i][j].Mean(),
			})
		}
	}
	return cells
}

// PointsByMoonIllumination bins rows with a valid illumination fraction and
// a known total. With no valid rows it still returns the four empty bins.
func PointsByMoonIllumination(rows []GameRow) []MoonBin {
	total := make([]accumulator, len(MoonBinLabels))

	for _, row := range rows {
		f, ok := row.Value(MetricMoonIllumination)
		if !ok || f < 0 || f > 1 {
			continue
		}
		points, ok := row.Value(MetricTotalPoints)
		if !ok {
			continue
		}
		total[moonBin(f)].add(points)
	}

	bins := make([]MoonBin, 0, len(MoonBinLabels))
	for i, label := range MoonBinLabels {
		bins = append(bins, MoonBin{
			Label:          label,
			Count:          total[i].n,
			AvgTotalPoints: total[i].Mean(),
		})
	}
	return bins
}
