package enhance

import (
	"fmt"
	"html"
	"strings"

	"github.com/mikeymoomin/FastGEO/pkg/schema"
)

// Section is one titled block of a SemanticArticle. Content is trusted
// markup supplied by the caller; run it through the sanitize package first
// when it comes from user input.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Content string `json:"content" yaml:"content"`
	// Level is the heading level (2 when zero, clamped to 1..6).
	Level int `json:"level,omitempty" yaml:"level,omitempty"`
}

// SemanticArticle structures content as a schema.org Article: an <article>
// element with microdata attributes plus the matching JSON-LD payload.
type SemanticArticle struct {
	title    string
	sections []Section
	meta     map[string]any
}

// ArticleOption configures a SemanticArticle.
type ArticleOption func(*SemanticArticle)

// WithArticleMeta merges extra schema.org Article properties (author,
// datePublished, image, ...) into the JSON-LD payload.
func WithArticleMeta(meta map[string]any) ArticleOption {
	return func(a *SemanticArticle) {
		if len(meta) == 0 {
			return
		}
		if a.meta == nil {
			a.meta = make(map[string]any, len(meta))
		}
		for key, value := range meta {
			a.meta[key] = value
		}
	}
}

// NewSemanticArticle builds an article helper from a title and its sections.
func NewSemanticArticle(title string, sections []Section, options ...ArticleOption) *SemanticArticle {
	article := &SemanticArticle{
		title:    title,
		sections: sections,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(article)
	}
	return article
}

// Enhance returns the JSON-LD script followed by the article markup.
func (a *SemanticArticle) Enhance() (string, error) {
	headings := make([]string, 0, len(a.sections))
	for _, section := range a.sections {
		headings = append(headings, section.Heading)
	}

	script, err := schema.ScriptTag(schema.Article{
		Headline: a.title,
		Sections: headings,
		Extra:    a.meta,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<article itemscope itemtype="https://schema.org/Article">`)
	b.WriteString("<h1>")
	b.WriteString(html.EscapeString(a.title))
	b.WriteString("</h1>")
	for _, section := range a.sections {
		level := headingLevel(section.Level)
		fmt.Fprintf(&b, "<h%d>%s</h%d>", level, html.EscapeString(section.Heading), level)
		b.WriteString(`<div itemprop="articleBody">`)
		b.WriteString(section.Content)
		b.WriteString("</div>")
	}
	b.WriteString("</article>")

	return script + b.String(), nil
}

func headingLevel(level int) int {
	switch {
	case level <= 0:
		return 2
	case level > 6:
		return 6
	default:
		return level
	}
}
