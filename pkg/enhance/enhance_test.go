package enhance

import (
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, 4, 17, 12, 30, 45, 0, time.UTC)
}

func TestLLMBlockAppendsContextScript(t *testing.T) {
	block := NewLLMBlock("<p>Hello World!</p>", "  Friendly greeting in page header  ",
		WithClock(fixedClock))

	got, err := block.Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}

	want := `<p>Hello World!</p>` +
		`<script type="application/ld+json">` +
		`{"@context":"https://schema.org","@type":"WebPageElement",` +
		`"role":"summary","dateCreated":"2025-04-17T12:30:45Z",` +
		`"llmContext":"Friendly greeting in page header"}` +
		`</script>`
	if got != want {
		t.Fatalf("unexpected output:\n got: %s\nwant: %s", got, want)
	}
}

func TestLLMBlockOptions(t *testing.T) {
	block := NewLLMBlock("<img src=\"x.png\">", "A chart of GEO adoption",
		WithRole("altText"),
		WithSchemaType("ImageObject"),
		WithClock(fixedClock))

	got, err := block.Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.Contains(got, `"@type":"ImageObject"`) {
		t.Fatalf("schema type not applied: %s", got)
	}
	if !strings.Contains(got, `"role":"altText"`) {
		t.Fatalf("role not applied: %s", got)
	}
}

func TestLLMBlockElementPrecedesScript(t *testing.T) {
	got, err := NewLLMBlock("<p>x</p>", "ctx", WithClock(fixedClock)).Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.HasPrefix(got, "<p>x</p><script") {
		t.Fatalf("element must come first: %s", got)
	}
}
