// Package render defines the renderer contract shared by the output formats
// (annotated HTML, llms.txt markdown) and the registry used to discover
// them.
package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/mikeymoomin/FastGEO/pkg/page"
)

// Renderer converts a page model into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model page.Model, options RenderOptions) ([]byte, error)
}

// RenderOptions describe per-request data renderers can use to customise
// output without mutating the page model.
type RenderOptions struct {
	// Theme carries the resolved go-theme configuration: class tokens, CSS
	// variables and asset references. Nil when no theme is selected.
	Theme *theme.RendererConfig
	// SanitizeFragments runs caller-supplied section and context-block
	// markup through the fragment sanitization policy before composing.
	SanitizeFragments bool
}
