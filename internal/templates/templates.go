// Package templates embeds the briefing email templates: an HTML layout, the
// briefing content template, and its plain-text sibling.
package templates

import "embed"

//go:embed briefing.html briefing.txt layouts
var FS embed.FS
