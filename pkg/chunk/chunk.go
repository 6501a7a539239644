// Package chunk splits HTML content into token-bounded segments along block
// element boundaries, carrying overlap between neighbouring chunks so
// downstream consumers keep context across the cut.
package chunk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeymoomin/FastGEO/internal/htmlx"
	"github.com/mikeymoomin/FastGEO/pkg/token"
)

// Block-level elements considered chunk units, in document order.
var blockTags = []string{"p", "li", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote"}

// OverlapStrategy selects how the tail of a closed chunk seeds the next one.
type OverlapStrategy string

const (
	// OverlapElements carries the last N block elements forward.
	OverlapElements OverlapStrategy = "elements"
	// OverlapTokens carries trailing blocks totalling at most N tokens.
	OverlapTokens OverlapStrategy = "tokens"
)

const (
	// DefaultMaxTokens is the per-chunk token budget.
	DefaultMaxTokens = 500
	// DefaultOverlap is the default overlap amount (elements or tokens,
	// depending on strategy).
	DefaultOverlap = 50
)

// Chunk is one token-bounded segment of the input.
type Chunk struct {
	// Index is the zero-based chunk position, also used as data-chunk-id.
	Index int
	// HTML is the concatenated markup of the chunk's blocks.
	HTML string
	// Tokens is the estimated token cost of the chunk.
	Tokens int
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithMaxTokens sets the per-chunk token budget.
func WithMaxTokens(max int) Option {
	return func(s *Splitter) {
		if max > 0 {
			s.maxTokens = max
		}
	}
}

// WithOverlap sets the overlap amount.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// WithEstimator replaces the token estimator.
func WithEstimator(estimator token.Estimator) Option {
	return func(s *Splitter) {
		if estimator != nil {
			s.estimator = estimator
		}
	}
}

// WithOverlapStrategy selects the overlap strategy.
func WithOverlapStrategy(strategy OverlapStrategy) Option {
	return func(s *Splitter) {
		switch strategy {
		case OverlapElements, OverlapTokens:
			s.strategy = strategy
		}
	}
}

// Splitter chunks HTML along block boundaries. Construct with New; the zero
// value is not usable.
type Splitter struct {
	maxTokens int
	overlap   int
	estimator token.Estimator
	strategy  OverlapStrategy
}

// New constructs a Splitter applying any provided options.
func New(options ...Option) *Splitter {
	s := &Splitter{
		maxTokens: DefaultMaxTokens,
		overlap:   DefaultOverlap,
		estimator: token.Words,
		strategy:  OverlapElements,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

type block struct {
	html   string
	tokens int
}

// Split parses markup and returns its chunks. Blocks with no text content
// are skipped. A single block above the budget still forms its own chunk.
func (s *Splitter) Split(markup string) ([]Chunk, error) {
	fragment, err := htmlx.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("chunk: parse content: %w", err)
	}

	var blocks []block
	for _, node := range fragment.Elements(blockTags...) {
		text := htmlx.Text(node)
		if text == "" {
			continue
		}
		blocks = append(blocks, block{
			html:   htmlx.OuterHTML(node),
			tokens: s.estimator.Estimate(text),
		})
	}

	var chunks []Chunk
	var current []block
	tokens := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		var b strings.Builder
		total := 0
		for _, blk := range current {
			b.WriteString(blk.html)
			total += blk.tokens
		}
		chunks = append(chunks, Chunk{Index: len(chunks), HTML: b.String(), Tokens: total})
	}

	for _, blk := range blocks {
		if tokens+blk.tokens > s.maxTokens && len(current) > 0 {
			flush()
			current = s.carryOver(current)
			tokens = 0
			for _, kept := range current {
				tokens += kept.tokens
			}
		}
		current = append(current, blk)
		tokens += blk.tokens
	}
	flush()

	return chunks, nil
}

// carryOver returns the tail of a closed chunk that seeds the next one.
func (s *Splitter) carryOver(closed []block) []block {
	if s.overlap <= 0 {
		return nil
	}
	switch s.strategy {
	case OverlapTokens:
		total := 0
		start := len(closed)
		for start > 0 && total+closed[start-1].tokens <= s.overlap {
			total += closed[start-1].tokens
			start--
		}
		return append([]block(nil), closed[start:]...)
	default:
		start := len(closed) - s.overlap
		if start < 0 {
			start = 0
		}
		return append([]block(nil), closed[start:]...)
	}
}

// WrapHTML renders chunks in the annotated container markup: an outer
// optimized-content div holding one content-chunk div per chunk with its
// data-chunk-id.
func WrapHTML(chunks []Chunk) string {
	var b strings.Builder
	b.WriteString(`<div class="optimized-content chunked-view">`)
	for _, c := range chunks {
		b.WriteString(`<div class="content-chunk" data-chunk-id="`)
		b.WriteString(strconv.Itoa(c.Index))
		b.WriteString(`">`)
		b.WriteString(c.HTML)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
