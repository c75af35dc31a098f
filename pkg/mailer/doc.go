// Package mailer provides email sending with template rendering, separated
// into three parts:
//
//   - Sender: interface that delivery providers implement
//   - Renderer: renders embedded HTML templates with YAML frontmatter and an
//     optional plain-text sibling template
//   - Mailer: high-level client combining Sender and Renderer
//
// Templates are html/template files with optional frontmatter:
//
//	---
//	Subject: Your Daily Briefing for {{.Date}}
//	---
//	<div class="header">...</div>
//
// The rendered content is wrapped in a layout template via its {{.Content}}
// slot. When a sibling file with a .txt extension exists (briefing.html →
// briefing.txt), it is rendered as the plain-text alternative.
//
// Subject resolution for Mailer.Send: params.Subject, then the template's
// frontmatter Subject, then the configured fallback. Subjects support
// {{.Variable}} expansion against the template data.
//
// The SMTP provider lives in the smtp subpackage. Custom providers only need
// to implement Sender.
package mailer
