// Package news provides a client for the NewsAPI top-headlines endpoint.
// A failed fetch never returns a Go error: all failure modes collapse into a
// single sentinel article carrying the failure detail, so the briefing always
// has exactly one user-visible line for a broken news source.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the NewsAPI top-headlines endpoint.
const DefaultBaseURL = "https://newsapi.org/v2/top-headlines"

// ErrorTitle is the title of the sentinel article returned when the fetch
// fails.
const ErrorTitle = "Error fetching news"

const (
	defaultTimeout  = 10 * time.Second
	defaultCategory = "technology"
	defaultLanguage = "en"
	defaultPageSize = 3
)

// Article is one news headline. URL may be empty.
type Article struct {
	Title       string
	Description string
	URL         string
}

// Client fetches top headlines from NewsAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	category   string
	language   string
	pageSize   int
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

// WithCategory overrides the headline category (default "technology").
func WithCategory(category string) Option {
	return func(c *Client) {
		if category != "" {
			c.category = category
		}
	}
}

// WithLanguage overrides the headline language (default "en").
func WithLanguage(language string) Option {
	return func(c *Client) {
		if language != "" {
			c.language = language
		}
	}
}

// WithPageSize overrides the number of headlines requested (default 3).
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New creates a news client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		category:   defaultCategory,
		language:   defaultLanguage,
		pageSize:   defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TopHeadlines fetches the configured number of headlines. On any failure it
// returns a single sentinel article whose description embeds the failure
// detail.
func (c *Client) TopHeadlines(ctx context.Context) []Article {
	q := url.Values{}
	q.Set("category", c.category)
	q.Set("language", c.language)
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return sentinel(fmt.Sprintf("an error occurred: %v", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sentinel(fmt.Sprintf("an error occurred: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return sentinel(fmt.Sprintf("could not retrieve news: %d", resp.StatusCode))
	}

	var payload struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return sentinel(fmt.Sprintf("an error occurred: %v", err))
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
		})
	}
	return articles
}

func sentinel(detail string) []Article {
	return []Article{{Title: ErrorTitle, Description: detail}}
}
