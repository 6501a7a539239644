// Package orchestrator coordinates the full pipeline from page definition
// to rendered output. It applies sensible defaults (vanilla renderer,
// embedded templates) while remaining open to dependency injection for
// advanced callers.
package orchestrator

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/mikeymoomin/FastGEO/pkg/loader"
	"github.com/mikeymoomin/FastGEO/pkg/page"
	"github.com/mikeymoomin/FastGEO/pkg/render"
	"github.com/mikeymoomin/FastGEO/pkg/renderers/llmstext"
	"github.com/mikeymoomin/FastGEO/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom definition loader.
func WithLoader(l *loader.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithBuilder injects a custom page model builder.
func WithBuilder(builder page.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector registers a go-theme selector so theme/variant choices
// can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider wires a go-theme provider (a manifest registry) as the
// selector, with the theme/variant applied when a request names none.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		selector, ok := provider.(theme.ThemeSelector)
		if !ok {
			o.initialiseErr = fmt.Errorf("orchestrator: theme provider %T cannot select themes", provider)
			return
		}
		o.themeSelector = selector
		o.defaultTheme = defaultTheme
		o.defaultVariant = defaultVariant
	}
}

// WithDefaultTheme sets the theme/variant used when a request does not name
// one.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// Request identifies what to generate. Exactly one of Source or Definition
// must be set.
type Request struct {
	// Source locates a page definition for the loader.
	Source loader.Source
	// Definition supplies a pre-built page model, bypassing the loader.
	Definition *page.Model
	// Renderer names the output format; empty means the default renderer.
	Renderer string
	// ThemeName/ThemeVariant select a go-theme theme for renderers that
	// support it.
	ThemeName    string
	ThemeVariant string
	// SanitizeFragments forwards to render.RenderOptions.
	SanitizeFragments bool
}

// Orchestrator wires loader, builder, renderer registry and theme
// resolution together.
type Orchestrator struct {
	loader          *loader.Loader
	builder         page.Builder
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = loader.New()
	}
	if o.builder == nil {
		o.builder = page.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		htmlRenderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise vanilla renderer: %w", err)
			return
		}
		if err := o.registry.Register(htmlRenderer); err != nil {
			o.initialiseErr = err
			return
		}
		if err := o.registry.Register(llmstext.New()); err != nil {
			o.initialiseErr = err
			return
		}
	}
}

// Generate resolves the page model and renders it with the requested
// renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}

	model, err := o.resolveModel(ctx, req)
	if err != nil {
		return nil, err
	}

	built, err := o.builder.Build(model)
	if err != nil {
		return nil, err
	}

	rendererName := req.Renderer
	if rendererName == "" {
		rendererName = o.defaultRenderer
	}
	renderer, err := o.registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	options := render.RenderOptions{SanitizeFragments: req.SanitizeFragments}
	options.Theme, err = o.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	return renderer.Render(ctx, built, options)
}

func (o *Orchestrator) resolveModel(ctx context.Context, req Request) (page.Model, error) {
	switch {
	case req.Definition != nil && req.Source != nil:
		return page.Model{}, fmt.Errorf("orchestrator: request must not set both source and definition")
	case req.Definition != nil:
		return *req.Definition, nil
	case req.Source != nil:
		return o.loader.Load(ctx, req.Source)
	default:
		return page.Model{}, fmt.Errorf("orchestrator: request needs a source or a definition")
	}
}
