package analysis

// Report bundles the flat dataset with every aggregation derived from it.
type Report struct {
	Dataset       Dataset
	ByTemperature []TemperatureBin
	ByWindPrecip  []WindPrecipCell
	ByMoon        []MoonBin
	ByStadiumRain []StadiumRainGroup
	Correlation   CorrelationMatrix
}

// BuildReport runs all aggregations. An empty dataset is the only error:
// every aggregation over it would be vacuous.
func BuildReport(ds Dataset) (*Report, error) {
	if len(ds.Rows) == 0 {
		return nil, ErrEmptyDataset
	}

	return &Report{
		Dataset:       ds,
		ByTemperature: PointsByTemperature(ds.Rows),
		ByWindPrecip:  PointsByWindPrecip(ds.Rows),
		ByMoon:        PointsByMoonIllumination(ds.Rows),
		ByStadiumRain: HomeWinPctByStadiumRain(ds.Rows),
		Correlation:   Correlate(ds),
	}, nil
}
