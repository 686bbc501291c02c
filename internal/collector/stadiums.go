package collector

import (
	"strings"
	"time"
	"ulascansenturk/gameday-weather/internal/db/schema"
	"ulascansenturk/gameday-weather/internal/providers"
)

type Stadium struct {
	City        string
	Coordinates providers.Coordinates
}

// Stadiums are the cities data is collected for.
var Stadiums = []Stadium{
	{"Ann Arbor", providers.Coordinates{Latitude: 42.2808, Longitude: -83.7430}},
	{"Columbus", providers.Coordinates{Latitude: 40.0012, Longitude: -83.0302}},
	{"State College", providers.Coordinates{Latitude: 40.7982, Longitude: -77.8599}},
	{"Madison", providers.Coordinates{Latitude: 43.0731, Longitude: -89.4012}},
	{"Iowa City", providers.Coordinates{Latitude: 41.6611, Longitude: -91.5302}},
	{"Eugene", providers.Coordinates{Latitude: 44.0521, Longitude: -123.0868}},
	{"Austin", providers.Coordinates{Latitude: 30.2849, Longitude: -97.7341}},
	{"Tuscaloosa", providers.Coordinates{Latitude: 33.2098, Longitude: -87.5692}},
	{"Athens", providers.Coordinates{Latitude: 33.9519, Longitude: -83.3576}},
	{"Baton Rouge", providers.Coordinates{Latitude: 30.4515, Longitude: -91.1871}},
	{"East Lansing", providers.Coordinates{Latitude: 42.7370, Longitude: -84.4839}},
	{"Lincoln", providers.Coordinates{Latitude: 40.8136, Longitude: -96.7026}},
	{"Champaign", providers.Coordinates{Latitude: 40.1164, Longitude: -88.2434}},
	{"West Lafayette", providers.Coordinates{Latitude: 40.4259, Longitude: -86.9081}},
	{"Bloomington", providers.Coordinates{Latitude: 39.1653, Longitude: -86.5264}},
	{"Knoxville", providers.Coordinates{Latitude: 35.9606, Longitude: -83.9207}},
	{"Auburn", providers.Coordinates{Latitude: 32.5990, Longitude: -85.4808}},
	{"College Station", providers.Coordinates{Latitude: 30.6280, Longitude: -96.3344}},
	{"Starkville", providers.Coordinates{Latitude: 33.4504, Longitude: -88.8184}},
	{"Columbia", providers.Coordinates{Latitude: 34.0007, Longitude: -81.0348}},
	{"Gainesville", providers.Coordinates{Latitude: 29.6516, Longitude: -82.3248}},
	{"Tallahassee", providers.Coordinates{Latitude: 30.4383, Longitude: -84.2807}},
	{"Blacksburg", providers.Coordinates{Latitude: 37.2296, Longitude: -80.4139}},
	{"Clemson", providers.Coordinates{Latitude: 34.6834, Longitude: -82.8374}},
	{"Atlanta", providers.Coordinates{Latitude: 33.7756, Longitude: -84.3963}},
}

type venueCity struct {
	Venue string
	City  string
}

// venueCities is checked in order, first for an exact venue name and then
// for a venue name containing the stadium name.
var venueCities = []venueCity{
	{"Michigan Stadium", "Ann Arbor"},
	{"Ohio Stadium", "Columbus"},
	{"Beaver Stadium", "State College"},
	{"Camp Randall Stadium", "Madison"},
	{"Kinnick Stadium", "Iowa City"},
	{"Autzen Stadium", "Eugene"},
	{"DKR-Texas Memorial Stadium", "Austin"},
	{"Bryant-Denny Stadium", "Tuscaloosa"},
	{"Sanford Stadium", "Athens"},
	{"Tiger Stadium (LA)", "Baton Rouge"},
	{"Spartan Stadium", "East Lansing"},
	{"Ross-Ade Stadium", "West Lafayette"},
	{"Neyland Stadium", "Knoxville"},
	{"Jordan-Hare Stadium", "Auburn"},
	{"Kyle Field", "College Station"},
	{"Davis Wade Stadium", "Starkville"},
	{"Williams-Brice Stadium", "Columbia"},
	{"Ben Hill Griffin Stadium", "Gainesville"},
	{"Doak Campbell Stadium", "Tallahassee"},
	{"Lane Stadium", "Blacksburg"},
	{"Bobby Dodd Stadium", "Atlanta"},
}

// CityForVenue maps a venue name from the football API to a stadium city.
func CityForVenue(venue string) (string, bool) {
	if venue == "" {
		return "", false
	}

	for _, vc := range venueCities {
		if vc.Venue == venue {
			return vc.City, true
		}
	}

	for _, vc := range venueCities {
		if strings.Contains(venue, vc.Venue) {
			return vc.City, true
		}
	}

	return "", false
}

func StadiumByCity(city string) (Stadium, bool) {
	for _, st := range Stadiums {
		if st.City == city {
			return st, true
		}
	}
	return Stadium{}, false
}

// Saturdays lists every Saturday from September 1 to November 30 of year.
func Saturdays(year int) []string {
	day := time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC)

	for day.Weekday() != time.Saturday {
		day = day.AddDate(0, 0, 1)
	}

	var dates []string
	for !day.After(end) {
		dates = append(dates, day.Format(schema.DateLayout))
		day = day.AddDate(0, 0, 7)
	}
	return dates
}
