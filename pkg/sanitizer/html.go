// Package sanitizer strips unsafe HTML from strings fetched from external
// APIs before they are embedded in the briefing email.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

// PlainText strips all HTML, returning text only. Use for remote strings
// (headlines, definitions) that are interpolated into the email body.
//
// bluemonday entity-escapes its output; that is unescaped here so the
// result is plain text and html/template performs the single escape when
// the string lands in the HTML part.
func PlainText(s string) string {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
