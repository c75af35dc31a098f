package news_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdireddad/dailybrief/pkg/news"
)

func TestClient_TopHeadlines_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "technology", r.URL.Query().Get("category"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "3", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

		_, _ = w.Write([]byte(`{"articles":[
			{"title":"First","description":"first desc","url":"https://example.com/1"},
			{"title":"Second","description":"second desc","url":"https://example.com/2"},
			{"title":"Third","description":"third desc"}
		]}`))
	}))
	defer srv.Close()

	client := news.New("test-key", news.WithBaseURL(srv.URL))
	articles := client.TopHeadlines(context.Background())

	require.Len(t, articles, 3)
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "https://example.com/1", articles[0].URL)
	assert.Equal(t, "second desc", articles[1].Description)
	assert.Empty(t, articles[2].URL) // absent URL is valid
}

func TestClient_TopHeadlines_HTTPStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := news.New("bad-key", news.WithBaseURL(srv.URL))
	articles := client.TopHeadlines(context.Background())

	require.Len(t, articles, 1)
	assert.Equal(t, news.ErrorTitle, articles[0].Title)
	assert.Contains(t, articles[0].Description, "401")
}

func TestClient_TopHeadlines_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	client := news.New("test-key", news.WithBaseURL(srv.URL))
	articles := client.TopHeadlines(context.Background())

	require.Len(t, articles, 1)
	assert.Equal(t, news.ErrorTitle, articles[0].Title)
	assert.Contains(t, articles[0].Description, "an error occurred")
}

func TestClient_TopHeadlines_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := news.New("test-key", news.WithBaseURL(srv.URL))
	articles := client.TopHeadlines(context.Background())

	require.Len(t, articles, 1)
	assert.Equal(t, news.ErrorTitle, articles[0].Title)
}

func TestClient_TopHeadlines_Options(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "science", r.URL.Query().Get("category"))
		assert.Equal(t, "fr", r.URL.Query().Get("language"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(`{"articles":[]}`))
	}))
	defer srv.Close()

	client := news.New("test-key",
		news.WithBaseURL(srv.URL),
		news.WithCategory("science"),
		news.WithLanguage("fr"),
		news.WithPageSize(5),
	)
	articles := client.TopHeadlines(context.Background())

	assert.Empty(t, articles)
}
