// Package vanilla is the default renderer: it composes the enhancer
// fragments into a single annotated HTML fragment through the embedded
// pongo2 template bundle. The output is host-framework agnostic markup: the
// caller decides where it lands in a page.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/mikeymoomin/FastGEO/pkg/page"
	"github.com/mikeymoomin/FastGEO/pkg/render"
	rendertemplate "github.com/mikeymoomin/FastGEO/pkg/render/template"
	gotemplate "github.com/mikeymoomin/FastGEO/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits annotated HTML.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render composes the page model into annotated markup.
func (r *Renderer) Render(ctx context.Context, model page.Model, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fragments, err := composeFragments(model, options)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: compose page: %w", err)
	}

	result, err := r.templates.RenderTemplate("templates/page", map[string]any{
		"article": fragments.article,
		"chunks":  fragments.chunks,
		"faq":     fragments.faq,
		"blocks":  fragments.blocks,
		"theme":   themeContext(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
