package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalCompactWithoutHTMLEscaping(t *testing.T) {
	payload, err := Marshal(map[string]string{"text": "<b>é</b>"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(payload); got != `{"text":"<b>é</b>"}` {
		t.Fatalf("unexpected encoding: %s", got)
	}
}

func TestScriptTagWrapsPayload(t *testing.T) {
	tag, err := ScriptTag(map[string]string{"@type": "Thing"})
	if err != nil {
		t.Fatalf("script tag: %v", err)
	}
	if !strings.HasPrefix(tag, `<script type="application/ld+json">`) {
		t.Fatalf("missing script prefix: %s", tag)
	}
	if !strings.HasSuffix(tag, "</script>") {
		t.Fatalf("missing script suffix: %s", tag)
	}
}

func TestArticleMarshalOrdersMembers(t *testing.T) {
	article := Article{
		Headline: "GEO in a Nutshell",
		Sections: []string{"Introduction", "Why GEO?"},
		Extra: map[string]any{
			"datePublished": "2025-04-17",
			"author":        "Jane Dev",
		},
	}

	payload, err := Marshal(article)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"@context":"https://schema.org","@type":"Article",` +
		`"headline":"GEO in a Nutshell","articleSection":["Introduction","Why GEO?"],` +
		`"author":"Jane Dev","datePublished":"2025-04-17"}`
	if got := string(payload); got != want {
		t.Fatalf("unexpected payload:\n got: %s\nwant: %s", got, want)
	}
}

func TestNewFAQPage(t *testing.T) {
	page := NewFAQPage([][2]string{
		{"What is GEO?", "Optimising pages for LLM-driven search."},
	})

	want := FAQPage{
		Context: ContextURL,
		Type:    "FAQPage",
		MainEntity: []Question{
			{
				Type: "Question",
				Name: "What is GEO?",
				AcceptedAnswer: Answer{
					Type: "Answer",
					Text: "Optimising pages for LLM-driven search.",
				},
			},
		},
	}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Fatalf("faq page mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDefinedTermSetSortsTerms(t *testing.T) {
	set := NewDefinedTermSet(map[string]string{
		"transformer":    "Attention-based architecture.",
		"self-attention": "Tokens attending to all others.",
	})

	if len(set.Terms) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(set.Terms))
	}
	if set.Terms[0].Name != "self-attention" || set.Terms[1].Name != "transformer" {
		t.Fatalf("terms not sorted: %+v", set.Terms)
	}
}

func TestCreativeWorkOmitsEmptyMembers(t *testing.T) {
	payload, err := Marshal(CreativeWork{Type: "CreativeWork", Name: "Attention Is All You Need"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), "publisher") {
		t.Fatalf("expected empty publisher omitted: %s", payload)
	}
}
