package vanilla

import (
	"strings"

	"github.com/mikeymoomin/FastGEO/pkg/enhance"
	"github.com/mikeymoomin/FastGEO/pkg/page"
	"github.com/mikeymoomin/FastGEO/pkg/render"
	"github.com/mikeymoomin/FastGEO/pkg/sanitize"
)

// pageFragments holds the pre-rendered pieces handed to the page template.
type pageFragments struct {
	article string
	chunks  string
	faq     string
	blocks  []string
}

// composeFragments runs the enhancer chain over the page model. The article
// is built first, then rewritten by the glossary and citation passes so
// term spans and cite markers land inside the final markup. Chunking reads
// the raw section content, not the annotated article, so chunk boundaries
// follow the author's blocks.
func composeFragments(model page.Model, options render.RenderOptions) (pageFragments, error) {
	sections := model.Sections
	if options.SanitizeFragments {
		sections = append([]enhance.Section(nil), model.Sections...)
		for i := range sections {
			sections[i].Content = sanitize.Fragment(sections[i].Content)
		}
	}

	article, err := enhance.NewSemanticArticle(
		model.Title, sections,
		enhance.WithArticleMeta(model.Meta),
	).Enhance()
	if err != nil {
		return pageFragments{}, err
	}

	if len(model.Glossary) > 0 {
		article, err = enhance.NewTechnicalTermOptimizer(article, model.Glossary).Enhance()
		if err != nil {
			return pageFragments{}, err
		}
	}

	if len(model.Cites) > 0 {
		article, err = enhance.NewCitationOptimizer(article, model.Cites).Enhance()
		if err != nil {
			return pageFragments{}, err
		}
	}

	fragments := pageFragments{article: article}

	if model.Chunking.Enabled {
		var body strings.Builder
		for _, section := range sections {
			body.WriteString(section.Content)
		}
		fragments.chunks, err = enhance.NewContentChunker(
			body.String(), model.Chunking.ChunkOptions()...,
		).Enhance()
		if err != nil {
			return pageFragments{}, err
		}
	}

	if len(model.FAQ) > 0 {
		fragments.faq, err = enhance.NewFAQOptimizer(model.FAQ).Enhance()
		if err != nil {
			return pageFragments{}, err
		}
	}

	for _, block := range model.Blocks {
		element := block.Element
		if options.SanitizeFragments {
			element = sanitize.Fragment(element)
		}
		var blockOptions []enhance.LLMBlockOption
		if block.Role != "" {
			blockOptions = append(blockOptions, enhance.WithRole(block.Role))
		}
		if block.SchemaType != "" {
			blockOptions = append(blockOptions, enhance.WithSchemaType(block.SchemaType))
		}
		rendered, err := enhance.NewLLMBlock(element, block.Context, blockOptions...).Enhance()
		if err != nil {
			return pageFragments{}, err
		}
		fragments.blocks = append(fragments.blocks, rendered)
	}

	return fragments, nil
}
