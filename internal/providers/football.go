package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type FootballGame struct {
	ID             int64  `json:"id"`
	Week           int    `json:"week"`
	StartDate      string `json:"startDate"`
	Venue          string `json:"venue"`
	HomeTeam       string `json:"homeTeam"`
	AwayTeam       string `json:"awayTeam"`
	HomeConference string `json:"homeConference"`
	AwayConference string `json:"awayConference"`
	HomePoints     *int   `json:"homePoints"`
	AwayPoints     *int   `json:"awayPoints"`
	Attendance     *int   `json:"attendance"`
}

// GameDate is the calendar date part of the ISO start timestamp.
func (g FootballGame) GameDate() string {
	if len(g.StartDate) < 10 {
		return g.StartDate
	}
	return g.StartDate[:10]
}

// KickoffTime is the time-of-day part of the start timestamp, if present.
func (g FootballGame) KickoffTime() *string {
	_, clock, found := strings.Cut(g.StartDate, "T")
	if !found || clock == "" {
		return nil
	}
	return &clock
}

type FootballAPI interface {
	GetGames(ctx context.Context, year, week int) ([]FootballGame, error)
}

type footballClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFootballClient(apiKey, baseURL string, client *http.Client) FootballAPI {
	return &footballClient{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (c *footballClient) GetGames(ctx context.Context, year, week int) ([]FootballGame, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("week", strconv.Itoa(week))
	params.Set("seasonType", "regular")

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var games []FootballGame
	if err := getJSON(ctx, c.client, "college football", c.baseURL+"/games", params, headers, &games); err != nil {
		return nil, err
	}

	return games, nil
}
