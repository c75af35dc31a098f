package briefing

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mehdireddad/dailybrief/pkg/news"
	"github.com/mehdireddad/dailybrief/pkg/weather"
	"github.com/mehdireddad/dailybrief/pkg/wordnik"
)

// WeatherSource fetches current weather for a set of cities.
type WeatherSource interface {
	Current(ctx context.Context, cities []string) map[string]weather.Report
}

// NewsSource fetches top headlines.
type NewsSource interface {
	TopHeadlines(ctx context.Context) []news.Article
}

// WordSource fetches the word of the day.
type WordSource interface {
	WordOfTheDay(ctx context.Context) wordnik.Word
}

// Sources bundles the three source clients consumed by Collect.
type Sources struct {
	Weather WeatherSource
	News    NewsSource
	Word    WordSource
}

// Briefing is the aggregate payload for one run. It lives for the duration
// of a single run: built once, rendered once, discarded.
type Briefing struct {
	Date    time.Time
	Cities  []string // configured order, used for display
	Weather map[string]weather.Report
	News    []news.Article
	Word    wordnik.Word
}

// Collect builds one Briefing from the three sources. The fetches are
// independent and run concurrently; the result is identical to calling them
// in sequence since each source folds its own failures into its records.
func Collect(ctx context.Context, src Sources, cities []string) *Briefing {
	b := &Briefing{
		Date:   time.Now(),
		Cities: cities,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.Weather = src.Weather.Current(ctx, cities)
		return nil
	})
	g.Go(func() error {
		b.News = src.News.TopHeadlines(ctx)
		return nil
	})
	g.Go(func() error {
		b.Word = src.Word.WordOfTheDay(ctx)
		return nil
	})

	// Source clients never return errors; Wait only synchronizes.
	_ = g.Wait()

	return b
}
