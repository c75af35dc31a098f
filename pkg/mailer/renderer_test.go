package mailer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"report.html": &fstest.MapFile{
			Data: []byte("---\nSubject: Report for {{.Date}}\n---\n<h1>{{.Title}}</h1>"),
		},
		"report.txt": &fstest.MapFile{
			Data: []byte("REPORT: {{.Title}}"),
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS())
	result, err := r.Render("base.html", "report.html", map[string]string{
		"Title": "Morning",
		"Date":  "Monday",
	})

	require.NoError(t, err)
	assert.Equal(t, `<html><body><h1>Morning</h1></body></html>`, result.HTML)
	assert.Equal(t, "REPORT: Morning", result.Text)
	assert.Equal(t, "Report for {{.Date}}", result.Metadata["Subject"])
}

func TestRenderer_Render_EscapesData(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS())
	result, err := r.Render("base.html", "report.html", map[string]string{
		"Title": `<script>alert("x")</script>`,
	})

	require.NoError(t, err)
	assert.NotContains(t, result.HTML, "<script>")
}

func TestRenderer_Render_NoTextSibling(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"plain.html":        &fstest.MapFile{Data: []byte(`<p>hi</p>`)},
	}

	r := NewRenderer(fs)
	result, err := r.Render("base.html", "plain.html", nil)

	require.NoError(t, err)
	assert.Equal(t, `<p>hi</p>`, result.HTML)
	assert.Empty(t, result.Text)
}

func TestRenderer_Render_TemplateNotFound(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS())
	_, err := r.Render("base.html", "missing.html", nil)

	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRenderer_Render_LayoutNotFound(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS())
	_, err := r.Render("missing.html", "report.html", nil)

	require.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestRenderer_Render_CachedTemplateReuse(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS())

	first, err := r.Render("base.html", "report.html", map[string]string{"Title": "One"})
	require.NoError(t, err)
	second, err := r.Render("base.html", "report.html", map[string]string{"Title": "Two"})
	require.NoError(t, err)

	assert.Contains(t, first.HTML, "One")
	assert.Contains(t, second.HTML, "Two")
}
