// Package llmstext renders a page model as llms.txt-style markdown: the
// same content the annotated HTML carries, flattened into plain text that
// language-model crawlers ingest directly.
package llmstext

import (
	"context"
	"fmt"
	"sort"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/mikeymoomin/FastGEO/pkg/page"
	"github.com/mikeymoomin/FastGEO/pkg/render"
)

// Renderer emits markdown.
type Renderer struct {
	converter *md.Converter
}

// New constructs the llms.txt renderer.
func New() *Renderer {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &Renderer{converter: converter}
}

func (r *Renderer) Name() string {
	return "llmstxt"
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render flattens the page model into markdown. Section markup is converted
// with html-to-markdown; FAQ, glossary and citations are emitted from the
// model directly so nothing depends on the HTML composition.
func (r *Renderer) Render(ctx context.Context, model page.Model, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", model.Title)

	if description, ok := model.Meta["description"].(string); ok && description != "" {
		fmt.Fprintf(&b, "\n> %s\n", description)
	}

	for _, block := range model.Blocks {
		note := strings.TrimSpace(block.Context)
		if note == "" {
			continue
		}
		fmt.Fprintf(&b, "\n> %s\n", note)
	}

	for _, section := range model.Sections {
		markdown, err := r.converter.ConvertString(section.Content)
		if err != nil {
			return nil, fmt.Errorf("llmstxt renderer: convert section %q: %w", section.Heading, err)
		}
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", section.Heading, strings.TrimSpace(markdown))
	}

	if len(model.FAQ) > 0 {
		b.WriteString("\n## FAQ\n")
		for _, pair := range model.FAQ {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", pair.Question, pair.Answer)
		}
	}

	if len(model.Glossary) > 0 {
		b.WriteString("\n## Glossary\n\n")
		for _, name := range sortedKeys(model.Glossary) {
			fmt.Fprintf(&b, "- **%s**: %s\n", name, model.Glossary[name])
		}
	}

	if len(model.Cites) > 0 {
		b.WriteString("\n## References\n\n")
		for i, citation := range model.Cites {
			entry := fmt.Sprintf("%d. %s. %q. %s %s",
				i+1, strings.Join(citation.Authors, ", "), citation.Title,
				citation.Publisher, citation.Date)
			if citation.URL != "" {
				entry += " " + citation.URL
			}
			b.WriteString(entry + "\n")
		}
	}

	return []byte(b.String()), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
