package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"
)

// Renderer renders embedded email templates. Content templates are
// html/template files with optional YAML frontmatter; a sibling .txt file
// (rendered with text/template) provides the plain-text alternative.
type Renderer struct {
	fs fs.FS

	// Caches hold parsed templates, never rendered output.
	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*template.Template
	textCache     map[string]*texttemplate.Template
	templateDir   string
	layoutDir     string

	mu sync.RWMutex
}

// cachedTemplate holds a parsed content template for reuse.
type cachedTemplate struct {
	metadata map[string]any
	tmpl     *template.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer with default config.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom config.
func NewRendererWithConfig(filesystem fs.FS, opts RendererConfig) *Renderer {
	if opts.TemplateDir == "" {
		opts.TemplateDir = "."
	}
	if opts.LayoutDir == "" {
		opts.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:            filesystem,
		templateDir:   opts.TemplateDir,
		layoutDir:     opts.LayoutDir,
		templateCache: make(map[string]*cachedTemplate),
		layoutCache:   make(map[string]*template.Template),
		textCache:     make(map[string]*texttemplate.Template),
	}
}

// RenderResult contains the rendered HTML, plain text, and extracted
// frontmatter metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // Empty when no .txt sibling template exists
}

// Render executes the content template with data, wraps it in the layout,
// and renders the plain-text sibling when one exists.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(templateName)
	if err != nil {
		return nil, err
	}

	var content bytes.Buffer
	if err := cached.tmpl.Execute(&content, data); err != nil {
		return nil, fmt.Errorf("%w: failed to execute template: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var finalHTML bytes.Buffer
	layoutData := map[string]any{
		"Content":  template.HTML(content.String()),
		"Metadata": cached.metadata,
	}
	if err := layoutTmpl.Execute(&finalHTML, layoutData); err != nil {
		return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}

	text, err := r.renderText(templateName, data)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		HTML:     finalHTML.String(),
		Text:     text,
		Metadata: cached.metadata,
	}, nil
}

func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templateCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(string(parsed.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse template %s: %v", ErrRenderFailed, name, err)
	}

	cached = &cachedTemplate{metadata: parsed.Metadata, tmpl: tmpl}

	r.mu.Lock()
	r.templateCache[name] = cached
	r.mu.Unlock()

	return cached, nil
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.layoutCache[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}

	tmpl, err = template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.mu.Lock()
	r.layoutCache[name] = tmpl
	r.mu.Unlock()

	return tmpl, nil
}

// renderText renders the .txt sibling of an HTML template, if present.
func (r *Renderer) renderText(templateName string, data any) (string, error) {
	name := strings.TrimSuffix(templateName, path.Ext(templateName)) + ".txt"

	r.mu.RLock()
	tmpl, ok := r.textCache[name]
	r.mu.RUnlock()

	if !ok {
		content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", nil
			}
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}

		tmpl, err = texttemplate.New(name).Parse(string(content))
		if err != nil {
			return "", fmt.Errorf("%w: failed to parse text template %s: %v", ErrRenderFailed, name, err)
		}

		r.mu.Lock()
		r.textCache[name] = tmpl
		r.mu.Unlock()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: failed to execute text template: %v", ErrRenderFailed, err)
	}

	return buf.String(), nil
}
