package page

import (
	"fmt"
	"strings"

	"github.com/mikeymoomin/FastGEO/pkg/chunk"
	"github.com/mikeymoomin/FastGEO/pkg/enhance"
)

// Builder validates and normalises page models before rendering.
type Builder interface {
	Build(model Model) (Model, error)
}

type builder struct{}

// NewBuilder returns the default builder.
func NewBuilder() Builder {
	return builder{}
}

// Build returns a normalised copy of model or a validation error. Section
// levels default to 2, chunking settings fall back to the chunk package
// defaults, and role/type defaults on context blocks are left to the
// enhancers.
func (builder) Build(model Model) (Model, error) {
	if strings.TrimSpace(model.Title) == "" {
		return Model{}, fmt.Errorf("page: title is required")
	}

	out := model
	out.Sections = append([]enhance.Section(nil), model.Sections...)
	for i, section := range out.Sections {
		if strings.TrimSpace(section.Heading) == "" {
			return Model{}, fmt.Errorf("page: section %d: heading is required", i)
		}
		if section.Level == 0 {
			out.Sections[i].Level = 2
		}
		if section.Level < 0 || section.Level > 6 {
			return Model{}, fmt.Errorf("page: section %d: heading level %d out of range", i, section.Level)
		}
	}

	for i, pair := range model.FAQ {
		if strings.TrimSpace(pair.Question) == "" || strings.TrimSpace(pair.Answer) == "" {
			return Model{}, fmt.Errorf("page: faq entry %d: question and answer are required", i)
		}
	}

	seen := make(map[string]struct{}, len(model.Cites))
	for i, citation := range model.Cites {
		id := strings.TrimSpace(citation.ID)
		if id == "" {
			return Model{}, fmt.Errorf("page: citation %d: id is required", i)
		}
		if _, dup := seen[id]; dup {
			return Model{}, fmt.Errorf("page: citation %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}
	}

	for i, block := range model.Blocks {
		if strings.TrimSpace(block.Context) == "" {
			return Model{}, fmt.Errorf("page: context block %d: context is required", i)
		}
	}

	if out.Chunking.Enabled {
		if out.Chunking.MaxTokens <= 0 {
			out.Chunking.MaxTokens = chunk.DefaultMaxTokens
		}
		if out.Chunking.Overlap == nil {
			overlap := chunk.DefaultOverlap
			out.Chunking.Overlap = &overlap
		} else if *out.Chunking.Overlap < 0 {
			return Model{}, fmt.Errorf("page: chunking overlap must not be negative")
		}
		switch out.Chunking.Strategy {
		case "":
			out.Chunking.Strategy = chunk.OverlapElements
		case chunk.OverlapElements, chunk.OverlapTokens:
		default:
			return Model{}, fmt.Errorf("page: unknown chunking strategy %q", out.Chunking.Strategy)
		}
	}

	return out, nil
}

// ChunkOptions translates the model's chunking settings into chunk options.
func (c Chunking) ChunkOptions() []chunk.Option {
	options := []chunk.Option{
		chunk.WithMaxTokens(c.MaxTokens),
		chunk.WithOverlapStrategy(c.Strategy),
	}
	if c.Overlap != nil {
		options = append(options, chunk.WithOverlap(*c.Overlap))
	}
	return options
}
