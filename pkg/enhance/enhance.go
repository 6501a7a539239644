// Package enhance implements the GEO content helpers: thin transformations
// that wrap HTML fragments with schema.org JSON-LD and microdata so crawlers
// and language-model answer engines can read the structure the visible
// markup only implies.
//
// Every helper is a single-pass composition over its input. None of them
// hold state or perform I/O; output is a markup fragment the caller places
// into a page.
package enhance

import (
	"strings"
	"time"

	"github.com/mikeymoomin/FastGEO/pkg/schema"
)

// Enhancer produces an annotated HTML fragment.
type Enhancer interface {
	Enhance() (string, error)
}

// DefaultRole is the context role recorded when none is provided.
const DefaultRole = "summary"

// DefaultSchemaType is the JSON-LD @type used for arbitrary wrapped markup.
const DefaultSchemaType = "WebPageElement"

// LLMBlock wraps a visible HTML fragment and appends hidden JSON-LD context
// intended for language models: summaries, enhanced alt text, Q&A hints or
// other non-visual nuance about the fragment.
type LLMBlock struct {
	element    string
	context    string
	role       string
	schemaType string
	now        func() time.Time
}

// LLMBlockOption configures an LLMBlock.
type LLMBlockOption func(*LLMBlock)

// WithRole labels the kind of context carried (e.g. "summary", "altText",
// "qa"). Defaults to DefaultRole.
func WithRole(role string) LLMBlockOption {
	return func(b *LLMBlock) {
		if strings.TrimSpace(role) != "" {
			b.role = role
		}
	}
}

// WithSchemaType overrides the JSON-LD @type. Defaults to DefaultSchemaType.
func WithSchemaType(schemaType string) LLMBlockOption {
	return func(b *LLMBlock) {
		if strings.TrimSpace(schemaType) != "" {
			b.schemaType = schemaType
		}
	}
}

// WithClock injects the timestamp source used for dateCreated. Defaults to
// time.Now.
func WithClock(now func() time.Time) LLMBlockOption {
	return func(b *LLMBlock) {
		if now != nil {
			b.now = now
		}
	}
}

// NewLLMBlock wraps element markup with the given LLM context.
func NewLLMBlock(element, context string, options ...LLMBlockOption) *LLMBlock {
	block := &LLMBlock{
		element:    element,
		context:    context,
		role:       DefaultRole,
		schemaType: DefaultSchemaType,
		now:        time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(block)
	}
	return block
}

// Enhance returns the element followed by its JSON-LD context script.
func (b *LLMBlock) Enhance() (string, error) {
	payload := schema.WebPageElement{
		Context:     schema.ContextURL,
		Type:        b.schemaType,
		Role:        b.role,
		DateCreated: b.now().UTC().Format("2006-01-02T15:04:05") + "Z",
		LLMContext:  strings.TrimSpace(b.context),
	}
	script, err := schema.ScriptTag(payload)
	if err != nil {
		return "", err
	}
	return b.element + script, nil
}
