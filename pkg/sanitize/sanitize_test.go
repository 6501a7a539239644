package sanitize

import (
	"strings"
	"testing"
)

func TestFragmentStripsScripts(t *testing.T) {
	got := Fragment(`<p>Safe</p><script>alert(1)</script><p onclick="x()">Click</p>`)

	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Fatalf("script survived: %s", got)
	}
	if strings.Contains(got, "onclick") {
		t.Fatalf("event handler survived: %s", got)
	}
	if !strings.Contains(got, "<p>Safe</p>") {
		t.Fatalf("safe markup dropped: %s", got)
	}
}

func TestFragmentKeepsAnnotationMarkup(t *testing.T) {
	input := `<section class="faq" id="faq" itemscope itemtype="https://schema.org/FAQPage">` +
		`<span class="technical-term" data-definition="A term.">GEO</span>` +
		`<span class="citation-marker" data-citation-id="1"></span>` +
		`<cite id="cite-1">[1]</cite>` +
		`</section>`

	got := Fragment(input)
	for _, want := range []string{
		`class="faq"`,
		`itemtype="https://schema.org/FAQPage"`,
		`data-definition="A term."`,
		`data-citation-id="1"`,
		`<cite id="cite-1">[1]</cite>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in: %s", want, got)
		}
	}
}

func TestFragmentDropsDataAttrsOnWrongElements(t *testing.T) {
	got := Fragment(`<p data-definition="nope">text</p>`)
	if strings.Contains(got, "data-definition") {
		t.Fatalf("data-definition allowed outside span: %s", got)
	}
}

func TestStrict(t *testing.T) {
	if got := Strict(` <p>Hello <b>world</b></p> `); got != "Hello world" {
		t.Fatalf("unexpected text: %q", got)
	}
}
