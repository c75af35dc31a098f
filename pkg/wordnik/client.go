// Package wordnik provides a client for the Wordnik word-of-the-day API.
// An unconfigured API key is a valid state, not an error: the client reports
// it without touching the network. Actual failures are folded into the Word
// record under the "Error" sentinel.
package wordnik

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the Wordnik word-of-the-day endpoint.
const DefaultBaseURL = "https://api.wordnik.com/v4/words.json/wordOfTheDay"

const defaultTimeout = 10 * time.Second

// Word is the word of the day with its first definition. When the key is
// unconfigured Word is "N/A"; when the fetch fails Word is "Error" and
// Definition carries the failure detail.
type Word struct {
	Word       string
	Definition string
}

// Client fetches the word of the day from Wordnik.
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

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// New creates a wordnik client. An empty apiKey is allowed; see WordOfTheDay.
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

// WordOfTheDay fetches today's word. With no API key configured it returns
// the N/A record immediately, without any network I/O.
func (c *Client) WordOfTheDay(ctx context.Context) Word {
	if c.apiKey == "" {
		return Word{Word: "N/A", Definition: "WORDNIK_API_KEY not set."}
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Word{Word: "Error", Definition: fmt.Sprintf("an error occurred: %v", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Word{Word: "Error", Definition: fmt.Sprintf("an error occurred: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Word{Word: "Error", Definition: fmt.Sprintf("could not retrieve word of the day: %d", resp.StatusCode)}
	}

	var payload struct {
		Word        string `json:"word"`
		Definitions []struct {
			Text string `json:"text"`
		} `json:"definitions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Word{Word: "Error", Definition: fmt.Sprintf("an error occurred: %v", err)}
	}
	if len(payload.Definitions) == 0 {
		return Word{Word: "Error", Definition: "an error occurred: response contained no definitions"}
	}

	return Word{Word: payload.Word, Definition: payload.Definitions[0].Text}
}
