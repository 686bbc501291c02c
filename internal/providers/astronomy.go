package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type MoonReading struct {
	Phase        string
	Illumination *float64
	Moonrise     string
	Moonset      string
	Altitude     *float64
	Azimuth      *float64
	Latitude     *float64
	Longitude    *float64
}

type AstronomyAPI interface {
	GetMoon(ctx context.Context, city, date string) (*MoonReading, error)
}

type astronomyClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAstronomyClient(apiKey, baseURL string, client *http.Client) AstronomyAPI {
	return &astronomyClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

type astronomyResponse struct {
	Message   string `json:"message"`
	Location  struct {
		Latitude  flexFloat `json:"latitude"`
		Longitude flexFloat `json:"longitude"`
	} `json:"location"`
	Astronomy *struct {
		MoonPhase        string    `json:"moon_phase"`
		MoonIllumination flexFloat `json:"moon_illumination_percentage"`
		Moonrise         string    `json:"moonrise"`
		Moonset          string    `json:"moonset"`
		MoonAltitude     flexFloat `json:"moon_altitude"`
		MoonAzimuth      flexFloat `json:"moon_azimuth"`
	} `json:"astronomy"`
}

func (c *astronomyClient) GetMoon(ctx context.Context, city, date string) (*MoonReading, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("location", fmt.Sprintf("%s, US", city))
	params.Set("date", date)

	var apiResp astronomyResponse
	if err := getJSON(ctx, c.client, "astronomy", c.baseURL, params, nil, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Astronomy == nil {
		if apiResp.Message != "" {
			return nil, fmt.Errorf("astronomy error: %s", apiResp.Message)
		}
		return nil, ErrNoData
	}

	a := apiResp.Astronomy
	reading := &MoonReading{
		Phase:        valueOr(a.MoonPhase, "Unknown"),
		Illumination: a.MoonIllumination.Value,
		Moonrise:     valueOr(a.Moonrise, "-:-"),
		Moonset:      valueOr(a.Moonset, "-:-"),
		Altitude:     a.MoonAltitude.Value,
		Azimuth:      a.MoonAzimuth.Value,
		Latitude:     apiResp.Location.Latitude.Value,
		Longitude:    apiResp.Location.Longitude.Value,
	}

	return reading, nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
