package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const defaultTimeout = 10 * time.Second

// Report holds the current weather for one city, or the reason the lookup
// failed. Exactly one of the two cases is populated.
type Report struct {
	Temperature float64 // degrees Celsius
	Description string
	IconID      string
	Err         string
}

// Failed reports whether the lookup for this city failed.
func (r Report) Failed() bool {
	return r.Err != ""
}

// Client fetches current weather from OpenWeatherMap.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the API endpoint. Used by tests to point the client
// at a stub server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// New creates a weather client. The API key is passed through as-is; an
// unconfigured or placeholder key surfaces as a per-city HTTP 401 failure.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current fetches the current weather for each city. The result always
// contains exactly one entry per requested city; a failed lookup for one
// city does not abort the remaining ones.
func (c *Client) Current(ctx context.Context, cities []string) map[string]Report {
	reports := make(map[string]Report, len(cities))
	for _, city := range cities {
		reports[city] = c.currentCity(ctx, city)
	}
	return reports
}

func (c *Client) currentCity(ctx context.Context, city string) Report {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Report{Err: fmt.Sprintf("an error occurred: %v", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{Err: fmt.Sprintf("an error occurred: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Report{Err: fmt.Sprintf("could not retrieve weather: %d", resp.StatusCode)}
	}

	var payload struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{Err: fmt.Sprintf("an error occurred: %v", err)}
	}
	if len(payload.Weather) == 0 {
		return Report{Err: "an error occurred: response contained no weather conditions"}
	}

	return Report{
		Temperature: payload.Main.Temp,
		Description: payload.Weather[0].Description,
		IconID:      payload.Weather[0].Icon,
	}
}
