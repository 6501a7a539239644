// Package page defines the page model consumed by renderers: the title,
// sections, FAQ entries, glossary, citations and chunking settings that the
// enhancers turn into annotated markup.
package page

import (
	"github.com/mikeymoomin/FastGEO/pkg/chunk"
	"github.com/mikeymoomin/FastGEO/pkg/enhance"
)

// Chunking configures the optional chunked view of the page body.
type Chunking struct {
	// Enabled switches the chunked view on.
	Enabled bool `json:"enabled" yaml:"enabled"`
	// MaxTokens is the per-chunk budget (chunk.DefaultMaxTokens when zero).
	MaxTokens int `json:"maxTokens,omitempty" yaml:"maxTokens,omitempty"`
	// Overlap carried between chunks (chunk.DefaultOverlap when negative or
	// unset in a definition document).
	Overlap *int `json:"overlap,omitempty" yaml:"overlap,omitempty"`
	// Strategy is "elements" (default) or "tokens".
	Strategy chunk.OverlapStrategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// ContextBlock attaches hidden LLM context to a fragment of the page.
type ContextBlock struct {
	Element    string `json:"element" yaml:"element"`
	Context    string `json:"context" yaml:"context"`
	Role       string `json:"role,omitempty" yaml:"role,omitempty"`
	SchemaType string `json:"schemaType,omitempty" yaml:"schemaType,omitempty"`
}

// Model is the top-level representation renderers consume.
type Model struct {
	Title string `json:"title" yaml:"title"`
	Lang  string `json:"lang,omitempty" yaml:"lang,omitempty"`
	// Meta holds extra schema.org Article properties (author,
	// datePublished, ...).
	Meta     map[string]any     `json:"meta,omitempty" yaml:"meta,omitempty"`
	Sections []enhance.Section  `json:"sections,omitempty" yaml:"sections,omitempty"`
	FAQ      []enhance.QA       `json:"faq,omitempty" yaml:"faq,omitempty"`
	Glossary map[string]string  `json:"glossary,omitempty" yaml:"glossary,omitempty"`
	Cites    []enhance.Citation `json:"citations,omitempty" yaml:"citations,omitempty"`
	Blocks   []ContextBlock     `json:"contextBlocks,omitempty" yaml:"contextBlocks,omitempty"`
	Chunking Chunking           `json:"chunking,omitempty" yaml:"chunking,omitempty"`
}
