package enhance

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/mikeymoomin/FastGEO/internal/htmlx"
	"github.com/mikeymoomin/FastGEO/pkg/schema"
)

const termClass = "technical-term"

// TechnicalTermOptimizer rewrites an HTML fragment so glossary terms are
// wrapped in spans carrying their definition, and embeds the glossary as a
// schema.org DefinedTermSet. Front-end code can hang tooltips off the
// data-definition attribute; no visible glossary is rendered.
type TechnicalTermOptimizer struct {
	element  string
	glossary map[string]string
}

// NewTechnicalTermOptimizer builds the glossary helper for element markup.
func NewTechnicalTermOptimizer(element string, glossary map[string]string) *TechnicalTermOptimizer {
	return &TechnicalTermOptimizer{element: element, glossary: glossary}
}

// Enhance returns the JSON-LD script followed by the rewritten markup.
func (t *TechnicalTermOptimizer) Enhance() (string, error) {
	fragment, err := htmlx.Parse(t.element)
	if err != nil {
		return "", fmt.Errorf("enhance: parse element: %w", err)
	}

	// Longest term first so an occurrence is claimed by the most specific
	// glossary entry and spans never nest.
	terms := make([]string, 0, len(t.glossary))
	for term := range t.glossary {
		if term != "" {
			terms = append(terms, term)
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	for _, node := range fragment.TextNodes() {
		if skipTermWrap(node) {
			continue
		}
		t.wrapTerms(node, terms)
	}

	script, err := schema.ScriptTag(schema.NewDefinedTermSet(t.glossary))
	if err != nil {
		return "", err
	}
	return script + fragment.Render(), nil
}

// wrapTerms splits a text node around the earliest term occurrence and
// recurses into the remainder, so every occurrence of every term is wrapped
// exactly once.
func (t *TechnicalTermOptimizer) wrapTerms(node *html.Node, terms []string) {
	text := node.Data
	matchAt, matchTerm := -1, ""
	for _, term := range terms {
		if at := strings.Index(text, term); at >= 0 && (matchAt < 0 || at < matchAt) {
			matchAt, matchTerm = at, term
		}
	}
	if matchAt < 0 {
		return
	}

	span := htmlx.Element("span",
		"class", termClass,
		"data-definition", t.glossary[matchTerm],
	)
	span.AppendChild(htmlx.TextNode(matchTerm))

	var pieces []*html.Node
	if before := text[:matchAt]; before != "" {
		pieces = append(pieces, htmlx.TextNode(before))
	}
	pieces = append(pieces, span)

	var rest *html.Node
	if after := text[matchAt+len(matchTerm):]; after != "" {
		rest = htmlx.TextNode(after)
		pieces = append(pieces, rest)
	}

	htmlx.Replace(node, pieces...)
	if rest != nil {
		t.wrapTerms(rest, terms)
	}
}

// skipTermWrap reports whether a text node must not be rewritten: script and
// style payloads, and text already inside a wrapped term.
func skipTermWrap(node *html.Node) bool {
	if parent := node.Parent; parent != nil && parent.Type == html.ElementNode {
		switch parent.Data {
		case "script", "style":
			return true
		}
	}
	return htmlx.Ancestor(node, func(n *html.Node) bool {
		return n.Data == "span" && htmlx.HasClass(n, termClass)
	})
}
