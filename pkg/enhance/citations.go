package enhance

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mikeymoomin/FastGEO/internal/htmlx"
	"github.com/mikeymoomin/FastGEO/pkg/schema"
)

const markerClass = "citation-marker"

// Citation is the metadata for one cited work.
type Citation struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Authors   []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Publisher string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Date      string   `json:"date,omitempty" yaml:"date,omitempty"`
	URL       string   `json:"url,omitempty" yaml:"url,omitempty"`
}

// CitationOptimizer manages citations inside an HTML fragment: citation
// markers (span.citation-marker with data-citation-id) become <cite>
// elements, a References section is appended, and the citation list is
// embedded as schema.org ScholarlyArticle JSON-LD. Citations with no marker
// in the fragment get one appended at the end so every work is cited.
type CitationOptimizer struct {
	element   string
	citations []Citation
}

// NewCitationOptimizer builds the citation helper for element markup.
func NewCitationOptimizer(element string, citations []Citation) *CitationOptimizer {
	return &CitationOptimizer{element: element, citations: citations}
}

// Enhance returns the JSON-LD script followed by the rewritten markup and
// appended references section.
func (c *CitationOptimizer) Enhance() (string, error) {
	fragment, err := htmlx.Parse(c.element)
	if err != nil {
		return "", fmt.Errorf("enhance: parse element: %w", err)
	}

	for _, citation := range c.citations {
		if len(findMarkers(fragment, citation.ID)) == 0 {
			marker := htmlx.Element("span",
				"class", markerClass,
				"data-citation-id", citation.ID,
			)
			fragment.Append(marker)
		}
	}

	for _, citation := range c.citations {
		for _, marker := range findMarkers(fragment, citation.ID) {
			cite := htmlx.Element("cite", "id", "cite-"+citation.ID)
			cite.AppendChild(htmlx.TextNode("[" + citation.ID + "]"))
			htmlx.Replace(marker, cite)
		}
	}

	fragment.Append(c.referencesSection())

	script, err := schema.ScriptTag(c.jsonLD())
	if err != nil {
		return "", err
	}
	return script + fragment.Render(), nil
}

func findMarkers(fragment *htmlx.Fragment, id string) []*html.Node {
	var markers []*html.Node
	for _, span := range fragment.Elements("span") {
		if htmlx.HasClass(span, markerClass) && htmlx.Attr(span, "data-citation-id") == id {
			markers = append(markers, span)
		}
	}
	return markers
}

// referencesSection builds the visible bibliography appended to the
// fragment.
func (c *CitationOptimizer) referencesSection() *html.Node {
	section := htmlx.Element("section", "id", "references", "class", "references")
	heading := htmlx.Element("h2")
	heading.AppendChild(htmlx.TextNode("References"))
	section.AppendChild(heading)

	list := htmlx.Element("ol")
	for _, citation := range c.citations {
		item := htmlx.Element("li")
		entry := fmt.Sprintf("%s. %q. %s %s",
			strings.Join(citation.Authors, ", "), citation.Title,
			citation.Publisher, citation.Date)
		item.AppendChild(htmlx.TextNode(entry))
		if citation.URL != "" {
			link := htmlx.Element("a", "href", citation.URL)
			link.AppendChild(htmlx.TextNode(citation.URL))
			item.AppendChild(link)
		}
		list.AppendChild(item)
	}
	section.AppendChild(list)
	return section
}

func (c *CitationOptimizer) jsonLD() schema.ScholarlyArticle {
	article := schema.ScholarlyArticle{
		Context:  schema.ContextURL,
		Type:     "ScholarlyArticle",
		Citation: make([]schema.CreativeWork, 0, len(c.citations)),
	}
	for _, citation := range c.citations {
		article.Citation = append(article.Citation, schema.CreativeWork{
			Type:          "CreativeWork",
			Name:          citation.Title,
			Author:        citation.Authors,
			Publisher:     citation.Publisher,
			DatePublished: citation.Date,
			URL:           citation.URL,
		})
	}
	return article
}
