package briefing

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mehdireddad/dailybrief/pkg/sanitizer"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// EmailData is the Briefing shaped for the email templates.
type EmailData struct {
	Date   string
	Cities []CityView
	News   []ArticleView
	Word   WordView
}

// CityView is one city's weather block.
type CityView struct {
	Name        string
	Temperature float64
	Description string
	IconURL     string
	Err         string
}

// Failed reports whether this city's lookup failed.
func (v CityView) Failed() bool {
	return v.Err != ""
}

// ArticleView is one headline block.
type ArticleView struct {
	Title       string
	Description string
	URL         string
}

// WordView is the word-of-the-day block.
type WordView struct {
	Word       string
	Definition string
}

// View prepares the Briefing for rendering: cities in configured order with
// icon URLs, title-cased descriptions, sanitized news strings, and defaults
// for absent news fields. All remote strings pass through the sanitizer
// since they end up inside the email HTML.
func (b *Briefing) View() EmailData {
	title := cases.Title(language.English)

	data := EmailData{
		Date: b.Date.Format("Monday, January 2, 2006"),
		Word: WordView{
			Word:       title.String(b.Word.Word),
			Definition: sanitizer.PlainText(b.Word.Definition),
		},
	}

	for _, city := range b.Cities {
		report := b.Weather[city]
		view := CityView{Name: city, Err: report.Err}
		if !report.Failed() {
			view.Temperature = report.Temperature
			view.Description = title.String(report.Description)
			view.IconURL = fmt.Sprintf(iconURLFormat, report.IconID)
		}
		data.Cities = append(data.Cities, view)
	}

	for _, article := range b.News {
		view := ArticleView{
			Title:       sanitizer.PlainText(article.Title),
			Description: sanitizer.PlainText(article.Description),
			URL:         article.URL,
		}
		if view.Title == "" {
			view.Title = "N/A"
		}
		if view.Description == "" {
			view.Description = "No description available."
		}
		if view.URL == "" {
			view.URL = "#"
		}
		data.News = append(data.News, view)
	}

	return data
}
