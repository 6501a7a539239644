package enhance

import "github.com/mikeymoomin/FastGEO/pkg/chunk"

// ContentChunker breaks HTML content into token-bounded chunk divs so large
// documents can be fed to size-limited consumers one segment at a time. It
// is a thin wrapper over the chunk package that renders the annotated
// container markup.
type ContentChunker struct {
	content  string
	splitter *chunk.Splitter
}

// NewContentChunker builds a chunking helper over content markup. Options
// are forwarded to chunk.New.
func NewContentChunker(content string, options ...chunk.Option) *ContentChunker {
	return &ContentChunker{
		content:  content,
		splitter: chunk.New(options...),
	}
}

// Chunks returns the underlying chunks without markup wrapping.
func (c *ContentChunker) Chunks() ([]chunk.Chunk, error) {
	return c.splitter.Split(c.content)
}

// Enhance returns the chunked container markup.
func (c *ContentChunker) Enhance() (string, error) {
	chunks, err := c.splitter.Split(c.content)
	if err != nil {
		return "", err
	}
	return chunk.WrapHTML(chunks), nil
}
