package chunk

import (
	"strings"
	"testing"
)

const threeParagraphs = `<p>one two three</p><p>four five six</p><p>seven eight nine</p>`

func TestSplitWithoutOverlap(t *testing.T) {
	splitter := New(WithMaxTokens(4), WithOverlap(0))

	chunks, err := splitter.Split(threeParagraphs)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Fatalf("chunk %d has index %d", i, c.Index)
		}
		if c.Tokens != 3 {
			t.Fatalf("chunk %d has %d tokens, want 3", i, c.Tokens)
		}
	}
	if chunks[1].HTML != "<p>four five six</p>" {
		t.Fatalf("unexpected middle chunk: %s", chunks[1].HTML)
	}
}

func TestSplitCarriesElementOverlap(t *testing.T) {
	splitter := New(WithMaxTokens(4), WithOverlap(1))

	chunks, err := splitter.Split(threeParagraphs)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	// The second chunk opens with the block that closed the first.
	if !strings.HasPrefix(chunks[1].HTML, "<p>one two three</p>") {
		t.Fatalf("expected overlap block first, got: %s", chunks[1].HTML)
	}
	if !strings.Contains(chunks[1].HTML, "<p>four five six</p>") {
		t.Fatalf("expected new block in second chunk, got: %s", chunks[1].HTML)
	}
}

func TestSplitTokenOverlapRespectsBudget(t *testing.T) {
	splitter := New(
		WithMaxTokens(6),
		WithOverlap(3),
		WithOverlapStrategy(OverlapTokens),
	)

	chunks, err := splitter.Split(threeParagraphs)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// Each carried tail stays within the 3-token overlap budget, so a chunk
	// never starts with more than one 3-token paragraph of carry-over.
	for _, c := range chunks[1:] {
		if strings.Count(c.HTML, "<p>") > 2 {
			t.Fatalf("chunk carries too much overlap: %s", c.HTML)
		}
	}
}

func TestSplitSkipsEmptyBlocks(t *testing.T) {
	chunks, err := New().Split(`<p>   </p><p>real content here</p>`)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if strings.Contains(chunks[0].HTML, "<p>   </p>") {
		t.Fatalf("empty block not skipped: %s", chunks[0].HTML)
	}
}

func TestSplitOversizedBlockFormsOwnChunk(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 20) + "</p>"
	chunks, err := New(WithMaxTokens(5), WithOverlap(0)).Split(long + "<p>tail block</p>")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Tokens != 20 {
		t.Fatalf("oversized chunk tokens = %d, want 20", chunks[0].Tokens)
	}
}

func TestSplitNoBlocks(t *testing.T) {
	chunks, err := New().Split(`<div>bare text outside blocks</div>`)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %d", len(chunks))
	}
}

func TestWrapHTML(t *testing.T) {
	markup := WrapHTML([]Chunk{
		{Index: 0, HTML: "<p>a</p>"},
		{Index: 1, HTML: "<p>b</p>"},
	})

	if !strings.HasPrefix(markup, `<div class="optimized-content chunked-view">`) {
		t.Fatalf("missing container: %s", markup)
	}
	if !strings.Contains(markup, `<div class="content-chunk" data-chunk-id="0"><p>a</p></div>`) {
		t.Fatalf("missing first chunk: %s", markup)
	}
	if !strings.Contains(markup, `data-chunk-id="1"`) {
		t.Fatalf("missing second chunk id: %s", markup)
	}
}
