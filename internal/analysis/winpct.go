package analysis

import "sort"

type StadiumRainGroup struct {
	StadiumCity string
	Rainy       bool
	NumGames    int
	NumWins     int
	WinPct      *float64
}

type stadiumRainKey struct {
	city  string
	rainy bool
}

// HomeWinPctByStadiumRain groups games by stadium city and rain. A game
// counts when both scores are known; a tie counts as played but not won.
func HomeWinPctByStadiumRain(rows []GameRow) []StadiumRainGroup {
	groups := make(map[stadiumRainKey]*StadiumRainGroup)

	for _, row := range rows {
		key := stadiumRainKey{city: row.StadiumCity, rainy: row.Rainy()}
		group, ok := groups[key]
		if !ok {
			group = &StadiumRainGroup{StadiumCity: key.city, Rainy: key.rainy}
			groups[key] = group
		}

		if row.HomeScore == nil || row.AwayScore == nil {
			continue
		}
		group.NumGames++
		if *row.HomeScore > *row.AwayScore {
			group.NumWins++
		}
	}

	result := make([]StadiumRainGroup, 0, len(groups))
	for _, group := range groups {
		if group.NumGames > 0 {
			group.WinPct = ptr(float64(group.NumWins) / float64(group.NumGames))
		}
		result = append(result, *group)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StadiumCity != result[j].StadiumCity {
			return result[i].StadiumCity < result[j].StadiumCity
		}
		return !result[i].Rainy && result[j].Rainy
	})

	return result
}
