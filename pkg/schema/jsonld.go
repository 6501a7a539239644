// Package schema builds the schema.org JSON-LD payloads embedded by the
// enhancers. Encoding is compact, keeps UTF-8 intact (no HTML escaping) and
// emits @context/@type before the remaining members so crawler diffs stay
// stable.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// ContextURL is the @context value for every payload produced here.
const ContextURL = "https://schema.org"

// Marshal encodes v compactly without HTML escaping.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("schema: encode json-ld: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ScriptTag encodes v and wraps it in an application/ld+json script element.
func ScriptTag(v any) (string, error) {
	payload, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return `<script type="application/ld+json">` + string(payload) + `</script>`, nil
}

// WebPageElement carries hidden LLM context for a visible fragment.
type WebPageElement struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Role        string `json:"role"`
	DateCreated string `json:"dateCreated"`
	LLMContext  string `json:"llmContext"`
}

// Article describes a structured article. Extra holds additional schema.org
// properties merged after the fixed members in sorted key order.
type Article struct {
	Headline string
	Sections []string
	Extra    map[string]any
}

// MarshalJSON writes @context/@type/headline/articleSection followed by the
// extra properties.
func (a Article) MarshalJSON() ([]byte, error) {
	doc := newOrdered()
	doc.add("@context", ContextURL)
	doc.add("@type", "Article")
	doc.add("headline", a.Headline)
	doc.add("articleSection", a.Sections)

	keys := make([]string, 0, len(a.Extra))
	for key := range a.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		doc.add(key, a.Extra[key])
	}
	return doc.bytes()
}

// FAQPage holds the question/answer entities for an FAQ section.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a single FAQ entry.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// NewFAQPage builds an FAQPage from ordered question/answer pairs.
func NewFAQPage(pairs [][2]string) FAQPage {
	page := FAQPage{
		Context:    ContextURL,
		Type:       "FAQPage",
		MainEntity: make([]Question, 0, len(pairs)),
	}
	for _, pair := range pairs {
		page.MainEntity = append(page.MainEntity, Question{
			Type:           "Question",
			Name:           pair[0],
			AcceptedAnswer: Answer{Type: "Answer", Text: pair[1]},
		})
	}
	return page
}

// DefinedTermSet is the glossary payload.
type DefinedTermSet struct {
	Context string        `json:"@context"`
	Type    string        `json:"@type"`
	Terms   []DefinedTerm `json:"definedTerm"`
}

// DefinedTerm is one glossary entry.
type DefinedTerm struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewDefinedTermSet builds a DefinedTermSet from a glossary map. Terms are
// sorted by name so the payload is deterministic.
func NewDefinedTermSet(glossary map[string]string) DefinedTermSet {
	set := DefinedTermSet{
		Context: ContextURL,
		Type:    "DefinedTermSet",
		Terms:   make([]DefinedTerm, 0, len(glossary)),
	}
	names := make([]string, 0, len(glossary))
	for name := range glossary {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		set.Terms = append(set.Terms, DefinedTerm{
			Type:        "DefinedTerm",
			Name:        name,
			Description: glossary[name],
		})
	}
	return set
}

// ScholarlyArticle carries the citation list for a cited fragment.
type ScholarlyArticle struct {
	Context  string         `json:"@context"`
	Type     string         `json:"@type"`
	Citation []CreativeWork `json:"citation"`
}

// CreativeWork describes a single cited work. Empty members are omitted.
type CreativeWork struct {
	Type          string   `json:"@type"`
	Name          string   `json:"name,omitempty"`
	Author        []string `json:"author,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	DatePublished string   `json:"datePublished,omitempty"`
	URL           string   `json:"url,omitempty"`
}

// ordered accumulates members in insertion order for custom marshalling.
type ordered struct {
	buf   bytes.Buffer
	first bool
	err   error
}

func newOrdered() *ordered {
	doc := &ordered{first: true}
	doc.buf.WriteByte('{')
	return doc
}

func (o *ordered) add(key string, value any) {
	if o.err != nil {
		return
	}
	if !o.first {
		o.buf.WriteByte(',')
	}
	o.first = false

	name, err := Marshal(key)
	if err != nil {
		o.err = err
		return
	}
	o.buf.Write(name)
	o.buf.WriteByte(':')

	encoded, err := Marshal(value)
	if err != nil {
		o.err = err
		return
	}
	o.buf.Write(encoded)
}

func (o *ordered) bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	o.buf.WriteByte('}')
	return o.buf.Bytes(), nil
}
