// Package fastgeo wraps HTML fragments with structured metadata (schema.org
// JSON-LD, microdata attributes) so pages are easier for search engines and
// language-model answer engines to read. The root package re-exports the
// common types and the simplest generation entry points; the pkg tree holds
// the composable pieces.
package fastgeo

import (
	"context"

	"github.com/mikeymoomin/FastGEO/pkg/enhance"
	"github.com/mikeymoomin/FastGEO/pkg/loader"
	"github.com/mikeymoomin/FastGEO/pkg/orchestrator"
	"github.com/mikeymoomin/FastGEO/pkg/page"
	"github.com/mikeymoomin/FastGEO/pkg/render"
)

// Section is one titled block of an article.
type Section = enhance.Section

// QA is a single FAQ question/answer pair.
type QA = enhance.QA

// Citation is the metadata for one cited work.
type Citation = enhance.Citation

// Model is the page model renderers consume.
type Model = page.Model

// Request identifies what to generate.
type Request = orchestrator.Request

// RenderOptions describes per-request renderer overrides.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to configure the pipeline once and reuse it.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads a page definition and renders it with the named
// renderer (the annotated-HTML renderer when rendererName is empty). It is
// the simplest entry point for callers that just want markup output.
func GenerateHTML(ctx context.Context, source loader.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromModel renders a pre-built page model, bypassing the loader
// while still delegating to the orchestrator.
func GenerateFromModel(ctx context.Context, model Model, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Definition: &model,
		Renderer:   rendererName,
	})
}
