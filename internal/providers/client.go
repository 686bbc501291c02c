package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNoData is returned when a provider answers successfully but has nothing
// usable for the requested date and place.
var ErrNoData = errors.New("provider returned no data")

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// getJSON issues a GET and decodes a 200 response body into out.
func getJSON(ctx context.Context, client *http.Client, api, baseURL string, params url.Values, headers map[string]string, out interface{}) error {
	endpoint := baseURL
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%s request could not be built: %w", api, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", api, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status code: %d", api, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s returned malformed JSON: %w", api, err)
	}

	return nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// flexFloat accepts a JSON number, a numeric string (optionally ending in
// "%"), or null.
type flexFloat struct {
	Value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		f.Value = nil
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
		if s == "" || s == "-" {
			f.Value = nil
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		f.Value = &v
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func at[T any](values []*T, i int) *T {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}
