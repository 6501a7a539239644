package enhance

import (
	"strings"
	"testing"
)

func testCitations() []Citation {
	return []Citation{
		{
			ID:        "1",
			Title:     "Attention Is All You Need",
			Authors:   []string{"Vaswani, A.", "et al."},
			Publisher: "NeurIPS",
			Date:      "2017",
			URL:       "https://arxiv.org/abs/1706.03762",
		},
	}
}

func TestCitationOptimizerReplacesMarkers(t *testing.T) {
	body := `<p>Deep learning has revolutionised NLP` +
		`<span class="citation-marker" data-citation-id="1"></span>.</p>`

	got, err := NewCitationOptimizer(body, testCitations()).Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}

	if strings.Contains(got, "citation-marker") {
		t.Fatalf("marker span survived: %s", got)
	}
	if !strings.Contains(got, `<cite id="cite-1">[1]</cite>.</p>`) {
		t.Fatalf("cite element not in place: %s", got)
	}
}

func TestCitationOptimizerAppendsMissingMarkers(t *testing.T) {
	got, err := NewCitationOptimizer("<p>No markers here.</p>", testCitations()).Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.Contains(got, `<cite id="cite-1">[1]</cite>`) {
		t.Fatalf("auto-inserted citation missing: %s", got)
	}
	// The auto-inserted cite lands after the existing content.
	para := strings.Index(got, "No markers here.")
	cite := strings.Index(got, `<cite id="cite-1">`)
	if para < 0 || cite < 0 || cite < para {
		t.Fatalf("cite not appended after content: %s", got)
	}
}

func TestCitationOptimizerBuildsReferences(t *testing.T) {
	got, err := NewCitationOptimizer("<p>Body.</p>", testCitations()).Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}

	for _, want := range []string{
		`<section id="references" class="references">`,
		`<h2>References</h2>`,
		`Vaswani, A., et al.`,
		`Attention Is All You Need`,
		`NeurIPS 2017`,
		`<a href="https://arxiv.org/abs/1706.03762">https://arxiv.org/abs/1706.03762</a>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestCitationOptimizerJSONLD(t *testing.T) {
	got, err := NewCitationOptimizer("<p>Body.</p>", testCitations()).Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}

	if !strings.HasPrefix(got, `<script type="application/ld+json">`) {
		t.Fatalf("script must precede markup: %s", got)
	}
	for _, want := range []string{
		`"@type":"ScholarlyArticle"`,
		`"citation":[{"@type":"CreativeWork","name":"Attention Is All You Need"`,
		`"author":["Vaswani, A.","et al."]`,
		`"publisher":"NeurIPS"`,
		`"datePublished":"2017"`,
		`"url":"https://arxiv.org/abs/1706.03762"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestCitationOptimizerLeavesUnknownMarkers(t *testing.T) {
	body := `<p>Cited<span class="citation-marker" data-citation-id="99"></span>.</p>`
	got, err := NewCitationOptimizer(body, testCitations()).Enhance()
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.Contains(got, `data-citation-id="99"`) {
		t.Fatalf("unknown marker must be left alone: %s", got)
	}
}
