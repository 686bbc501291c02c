package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	PollutantUSAQI = "US_AQI"
	UnitAQI        = "AQI"

	gameWindowStartHour = 12
	gameWindowEndHour   = 15
)

type AirQualityAPI interface {
	// GetGameWindowAQI averages the hourly US AQI over 12:00-15:00 local time.
	GetGameWindowAQI(ctx context.Context, coords Coordinates, date string) (float64, error)
}

type airQualityClient struct {
	baseURL string
	client  *http.Client
}

func NewAirQualityClient(baseURL string, client *http.Client) AirQualityAPI {
	return &airQualityClient{
		baseURL: baseURL,
		client:  client,
	}
}

type airQualityResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
	Hourly struct {
		Time  []string   `json:"time"`
		USAQI []*float64 `json:"us_aqi"`
	} `json:"hourly"`
}

func (c *airQualityClient) GetGameWindowAQI(ctx context.Context, coords Coordinates, date string) (float64, error) {
	params := url.Values{}
	params.Set("latitude", formatCoordinate(coords.Latitude))
	params.Set("longitude", formatCoordinate(coords.Longitude))
	params.Set("start_date", date)
	params.Set("end_date", date)
	params.Set("hourly", "us_aqi,pm2_5,pm10")
	params.Set("timezone", "auto")

	var apiResp airQualityResponse
	if err := getJSON(ctx, c.client, "air quality", c.baseURL, params, nil, &apiResp); err != nil {
		return 0, err
	}

	if apiResp.Error {
		return 0, fmt.Errorf("air quality error: %s", apiResp.Reason)
	}

	var sum float64
	var n int
	for i, ts := range apiResp.Hourly.Time {
		hour, ok := hourOf(ts)
		if !ok || hour < gameWindowStartHour || hour > gameWindowEndHour {
			continue
		}
		if v := at(apiResp.Hourly.USAQI, i); v != nil {
			sum += *v
			n++
		}
	}

	if n == 0 {
		return 0, ErrNoData
	}

	return sum / float64(n), nil
}

// hourOf reads the hour of an ISO8601 local timestamp like 2024-09-07T13:00.
func hourOf(ts string) (int, bool) {
	_, clock, found := strings.Cut(ts, "T")
	if !found {
		return 0, false
	}
	hh, _, _ := strings.Cut(clock, ":")
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	return hour, true
}
