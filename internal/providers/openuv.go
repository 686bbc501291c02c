package providers

import (
	"context"
	"net/http"
	"net/url"
)

// uvSampleTime is 13:00 US Eastern daylight time, when most fall Saturday
// games are under way.
const uvSampleTime = "T17:00:00.000Z"

type UVReading struct {
	UVIndex          *float64
	UVMax            *float64
	UVMaxTime        *string
	Ozone            *float64
	SafeExposureTime *int
}

type OpenUVAPI interface {
	GetUV(ctx context.Context, coords Coordinates, date string) (*UVReading, error)
}

type openUVClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenUVClient(apiKey, baseURL string, client *http.Client) OpenUVAPI {
	return &openUVClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

type openUVResponse struct {
	Result *struct {
		UV               *float64 `json:"uv"`
		UVMax            *float64 `json:"uv_max"`
		UVMaxTime        *string  `json:"uv_max_time"`
		Ozone            *float64 `json:"ozone"`
		SafeExposureTime struct {
			// skin type 3
			ST3 *int `json:"st3"`
		} `json:"safe_exposure_time"`
	} `json:"result"`
}

func (c *openUVClient) GetUV(ctx context.Context, coords Coordinates, date string) (*UVReading, error) {
	params := url.Values{}
	params.Set("lat", formatCoordinate(coords.Latitude))
	params.Set("lng", formatCoordinate(coords.Longitude))
	params.Set("dt", date+uvSampleTime)

	headers := map[string]string{
		"x-access-token": c.apiKey,
	}

	var apiResp openUVResponse
	if err := getJSON(ctx, c.client, "openuv", c.baseURL, params, headers, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Result == nil {
		return nil, ErrNoData
	}

	r := apiResp.Result
	return &UVReading{
		UVIndex:          r.UV,
		UVMax:            r.UVMax,
		UVMaxTime:        r.UVMaxTime,
		Ozone:            r.Ozone,
		SafeExposureTime: r.SafeExposureTime.ST3,
	}, nil
}
