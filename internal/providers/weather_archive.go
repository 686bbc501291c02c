package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GameHourIndex is the hourly slot used for a game: 13:00 local time.
const GameHourIndex = 13

type GameHourWeather struct {
	Temperature   *float64
	Humidity      *float64
	Precipitation *float64
	WindSpeed     *float64
	WeatherCode   *int
}

type WeatherArchiveAPI interface {
	GetGameHourWeather(ctx context.Context, coords Coordinates, date string) (*GameHourWeather, error)
}

type weatherArchiveClient struct {
	baseURL string
	client  *http.Client
}

func NewWeatherArchiveClient(baseURL string, client *http.Client) WeatherArchiveAPI {
	return &weatherArchiveClient{
		baseURL: baseURL,
		client:  client,
	}
}

type archiveResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
	Hourly struct {
		Time          []string   `json:"time"`
		Temperature   []*float64 `json:"temperature_2m"`
		Humidity      []*float64 `json:"relative_humidity_2m"`
		Precipitation []*float64 `json:"precipitation"`
		WindSpeed     []*float64 `json:"wind_speed_10m"`
		WeatherCode   []*int     `json:"weather_code"`
	} `json:"hourly"`
}

// GetGameHourWeather returns the reading at GameHourIndex, or the last hour
// the archive has for the date when it holds fewer hours.
func (c *weatherArchiveClient) GetGameHourWeather(ctx context.Context, coords Coordinates, date string) (*GameHourWeather, error) {
	params := url.Values{}
	params.Set("latitude", formatCoordinate(coords.Latitude))
	params.Set("longitude", formatCoordinate(coords.Longitude))
	params.Set("start_date", date)
	params.Set("end_date", date)
	params.Set("hourly", "temperature_2m,relative_humidity_2m,precipitation,wind_speed_10m,weather_code")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("wind_speed_unit", "mph")
	params.Set("precipitation_unit", "inch")
	params.Set("timezone", "America/New_York")

	var apiResp archiveResponse
	if err := getJSON(ctx, c.client, "weather archive", c.baseURL, params, nil, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Error {
		return nil, fmt.Errorf("weather archive error: %s", apiResp.Reason)
	}

	hourly := apiResp.Hourly
	if len(hourly.Temperature) == 0 {
		return nil, ErrNoData
	}

	idx := GameHourIndex
	if len(hourly.Temperature) <= idx {
		idx = len(hourly.Temperature) - 1
	}

	return &GameHourWeather{
		Temperature:   at(hourly.Temperature, idx),
		Humidity:      at(hourly.Humidity, idx),
		Precipitation: at(hourly.Precipitation, idx),
		WindSpeed:     at(hourly.WindSpeed, idx),
		WeatherCode:   at(hourly.WeatherCode, idx),
	}, nil
}
