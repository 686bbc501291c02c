package schema

import (
	"time"
)

const (
	TableLocations  = "locations"
	TableTeams      = "teams"
	TableGames      = "games"
	TableWeather    = "weather"
	TableAirQuality = "air_quality"
	TableUV         = "uv_data"
	TableMoon       = "moon_data"
)

// DateLayout is how every game_date column is stored.
const DateLayout = "2006-01-02"

type Location struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CityName string `json:"city_name" gorm:"column:city_name;size:100;not null;uniqueIndex:idx_locations_city_name"`
}

func (Location) TableName() string {
	return TableLocations
}

type Team struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	TeamName   string `json:"team_name" gorm:"column:team_name;size:100;not null;uniqueIndex:idx_teams_team_name"`
	Conference string `json:"conference" gorm:"column:conference;size:100"`
	LocationID *uint  `json:"location_id" gorm:"column:location_id;index:idx_teams_location_id"`
}

func (Team) TableName() string {
	return TableTeams
}

// Game keeps the source API identifier as its primary key so re-running the
// collector cannot duplicate a game.
type Game struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	GameDate    string    `json:"game_date" gorm:"column:game_date;size:10;not null;index:idx_games_date_location"`
	HomeTeamID  uint      `json:"home_team_id" gorm:"column:home_team_id;not null"`
	AwayTeamID  uint      `json:"away_team_id" gorm:"column:away_team_id;not null"`
	HomeScore   *int      `json:"home_score" gorm:"column:home_score"`
	AwayScore   *int      `json:"away_score" gorm:"column:away_score"`
	LocationID  *uint     `json:"location_id" gorm:"column:location_id;index:idx_games_date_location"`
	Attendance  *int      `json:"attendance" gorm:"column:attendance"`
	KickoffTime *string   `json:"kickoff_time" gorm:"column:kickoff_time;size:32"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Game) TableName() string {
	return TableGames
}

// Weather is the game-hour reading for one (date, location).
type Weather struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	GameDate      string   `json:"game_date" gorm:"column:game_date;size:10;not null;uniqueIndex:idx_weather_date_location"`
	LocationID    uint     `json:"location_id" gorm:"column:location_id;not null;uniqueIndex:idx_weather_date_location"`
	Temperature   *float64 `json:"temperature" gorm:"column:temperature"`
	WindSpeed     *float64 `json:"wind_speed" gorm:"column:wind_speed"`
	Humidity      *float64 `json:"humidity" gorm:"column:humidity"`
	Precipitation *float64 `json:"precipitation" gorm:"column:precipitation"`
	WeatherCode   *int     `json:"weather_code" gorm:"column:weather_code"`
}

func (Weather) TableName() string {
	return TableWeather
}

type AirQuality struct {
	ID             uint     `json:"id" gorm:"primaryKey"`
	GameDate       string   `json:"game_date" gorm:"column:game_date;size:10;not null;uniqueIndex:idx_air_quality_date_location"`
	LocationID     uint     `json:"location_id" gorm:"column:location_id;not null;uniqueIndex:idx_air_quality_date_location"`
	PollutantType  string   `json:"pollutant_type" gorm:"column:pollutant_type;size:20"`
	PollutantValue *float64 `json:"pollutant_value" gorm:"column:pollutant_value"`
	Unit           string   `json:"unit" gorm:"column:unit;size:20"`
}

func (AirQuality) TableName() string {
	return TableAirQuality
}

type UVData struct {
	ID               uint     `json:"id" gorm:"primaryKey"`
	GameDate         string   `json:"game_date" gorm:"column:game_date;size:10;not null;uniqueIndex:idx_uv_data_date_location"`
	LocationID       uint     `json:"location_id" gorm:"column:location_id;not null;uniqueIndex:idx_uv_data_date_location"`
	Latitude         float64  `json:"latitude" gorm:"column:latitude"`
	Longitude        float64  `json:"longitude" gorm:"column:longitude"`
	UVIndex          *float64 `json:"uv_index" gorm:"column:uv_index"`
	UVMax            *float64 `json:"uv_max" gorm:"column:uv_max"`
	UVMaxTime        *string  `json:"uv_max_time" gorm:"column:uv_max_time;size:40"`
	Ozone            *float64 `json:"ozone" gorm:"column:ozone"`
	SafeExposureTime *int     `json:"safe_exposure_time" gorm:"column:safe_exposure_time"`
}

func (UVData) TableName() string {
	return TableUV
}

type MoonData struct {
	ID               uint     `json:"id" gorm:"primaryKey"`
	GameDate         string   `json:"game_date" gorm:"column:game_date;size:10;not null;uniqueIndex:idx_moon_data_date_location"`
	LocationID       uint     `json:"location_id" gorm:"column:location_id;not null;uniqueIndex:idx_moon_data_date_location"`
	Latitude         *float64 `json:"latitude" gorm:"column:latitude"`
	Longitude        *float64 `json:"longitude" gorm:"column:longitude"`
	MoonPhase        string   `json:"moon_phase" gorm:"column:moon_phase;size:40"`
	MoonIllumination *float64 `json:"moon_illumination" gorm:"column:moon_illumination"`
	Moonrise         string   `json:"moonrise" gorm:"column:moonrise;size:16"`
	Moonset          string   `json:"moonset" gorm:"column:moonset;size:16"`
	MoonAltitude     *float64 `json:"moon_altitude" gorm:"column:moon_altitude"`
	MoonAzimuth      *float64 `json:"moon_azimuth" gorm:"column:moon_azimuth"`
}

func (MoonData) TableName() string {
	return TableMoon
}
