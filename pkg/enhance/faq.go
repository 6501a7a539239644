package enhance

import (
	"html"
	"strings"

	"github.com/mikeymoomin/FastGEO/pkg/schema"
)

// QA is a single question/answer pair.
type QA struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// FAQOptimizer structures question/answer pairs as a schema.org FAQPage,
// rendering the visible Q&A section alongside the JSON-LD payload that lets
// search engines surface the answers directly.
type FAQOptimizer struct {
	pairs []QA
}

// NewFAQOptimizer builds the FAQ helper from ordered pairs.
func NewFAQOptimizer(pairs []QA) *FAQOptimizer {
	return &FAQOptimizer{pairs: pairs}
}

// Enhance returns the JSON-LD script followed by the FAQ section markup.
func (f *FAQOptimizer) Enhance() (string, error) {
	entities := make([][2]string, 0, len(f.pairs))
	for _, pair := range f.pairs {
		entities = append(entities, [2]string{pair.Question, pair.Answer})
	}
	script, err := schema.ScriptTag(schema.NewFAQPage(entities))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<section class="faq">`)
	for _, pair := range f.pairs {
		b.WriteString(`<div class="faq-item">`)
		b.WriteString("<h3>")
		b.WriteString(html.EscapeString(pair.Question))
		b.WriteString("</h3>")
		b.WriteString(`<div class="faq-answer">`)
		b.WriteString(html.EscapeString(pair.Answer))
		b.WriteString("</div>")
		b.WriteString("</div>")
	}
	b.WriteString("</section>")

	return script + b.String(), nil
}
