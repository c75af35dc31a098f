package briefing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdireddad/dailybrief/pkg/briefing"
	"github.com/mehdireddad/dailybrief/pkg/news"
	"github.com/mehdireddad/dailybrief/pkg/weather"
	"github.com/mehdireddad/dailybrief/pkg/wordnik"
)

func TestView_WeatherCities(t *testing.T) {
	t.Parallel()

	b := &briefing.Briefing{
		Date:   time.Date(2026, time.August, 23, 7, 0, 0, 0, time.UTC),
		Cities: []string{"Paris", "New York"},
		Weather: map[string]weather.Report{
			"Paris":    {Temperature: 21.5, Description: "clear sky", IconID: "01d"},
			"New York": {Err: "could not retrieve weather: 502"},
		},
		Word: wordnik.Word{Word: "petrichor", Definition: "The smell of rain."},
	}

	data := b.View()

	assert.Equal(t, "Sunday, August 23, 2026", data.Date)

	require.Len(t, data.Cities, 2)
	paris := data.Cities[0]
	assert.Equal(t, "Paris", paris.Name)
	assert.False(t, paris.Failed())
	assert.Equal(t, "Clear Sky", paris.Description)
	assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", paris.IconURL)

	ny := data.Cities[1]
	assert.Equal(t, "New York", ny.Name)
	assert.True(t, ny.Failed())
	assert.Contains(t, ny.Err, "502")

	assert.Equal(t, "Petrichor", data.Word.Word)
}

func TestView_NewsDefaultsAndSanitization(t *testing.T) {
	t.Parallel()

	b := &briefing.Briefing{
		Date: time.Now(),
		News: []news.Article{
			{Title: `Breaking<script>alert("x")</script>`, Description: "<b>bold</b> move"},
			{},
		},
	}

	data := b.View()

	require.Len(t, data.News, 2)
	assert.Equal(t, "Breaking", data.News[0].Title)
	assert.Equal(t, "bold move", data.News[0].Description)
	assert.Equal(t, "#", data.News[0].URL)

	assert.Equal(t, "N/A", data.News[1].Title)
	assert.Equal(t, "No description available.", data.News[1].Description)
	assert.Equal(t, "#", data.News[1].URL)
}

func TestView_KeepsSpecialCharactersRaw(t *testing.T) {
	t.Parallel()

	b := &briefing.Briefing{
		Date: time.Now(),
		News: []news.Article{
			{Title: "AT&T buys rival", Description: `Apple's "big" deal & more`},
		},
		Word: wordnik.Word{Word: "ampersand", Definition: "The sign & for 'and'."},
	}

	data := b.View()

	// Sanitized strings stay plain text; escaping is the template's job.
	require.Len(t, data.News, 1)
	assert.Equal(t, "AT&T buys rival", data.News[0].Title)
	assert.Equal(t, `Apple's "big" deal & more`, data.News[0].Description)
	assert.Equal(t, "The sign & for 'and'.", data.Word.Definition)
}
