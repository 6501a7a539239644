package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/mikeymoomin/FastGEO/pkg/enhance"
	"github.com/mikeymoomin/FastGEO/pkg/page"
)

const yamlDefinition = `
title: Generative Engine Optimization
lang: en
sections:
  - heading: Introduction
    content: "<p>GEO in a nutshell.</p>"
faq:
  - question: What is GEO?
    answer: Structured content for answer engines.
glossary:
  GEO: Generative Engine Optimization.
`

func TestLoadFromBytesYAML(t *testing.T) {
	source := SourceFromBytes("page.yaml", []byte(yamlDefinition))

	model, err := New().Load(context.Background(), source)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := page.Model{
		Title: "Generative Engine Optimization",
		Lang:  "en",
		Sections: []enhance.Section{
			{Heading: "Introduction", Content: "<p>GEO in a nutshell.</p>"},
		},
		FAQ: []enhance.QA{
			{Question: "What is GEO?", Answer: "Structured content for answer engines."},
		},
		Glossary: map[string]string{"GEO": "Generative Engine Optimization."},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromBytesJSONBySniffing(t *testing.T) {
	source := SourceFromBytes("page.json", []byte(`{"title":"GEO","lang":"en"}`))

	model, err := New().Load(context.Background(), source)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if model.Title != "GEO" || model.Lang != "en" {
		t.Fatalf("unexpected model: %+v", model)
	}
}

func TestLoadForcedFormatWins(t *testing.T) {
	// JSON content behind a YAML name still decodes when forced.
	source := SourceFromBytes("page.yaml", []byte(`{"title":"GEO"}`))

	model, err := New(WithFormat(FormatJSON)).Load(context.Background(), source)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if model.Title != "GEO" {
		t.Fatalf("unexpected model: %+v", model)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	if err := os.WriteFile(path, []byte(yamlDefinition), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	model, err := New().Load(context.Background(), SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if model.Title != "Generative Engine Optimization" {
		t.Fatalf("unexpected title: %q", model.Title)
	}
}

func TestLoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"pages/geo.yaml": &fstest.MapFile{Data: []byte(yamlDefinition)},
	}

	model, err := New(WithFS(files)).Load(context.Background(), SourceFromFS("pages/geo.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(model.Sections) != 1 || model.Sections[0].Heading != "Introduction" {
		t.Fatalf("unexpected sections: %+v", model.Sections)
	}
}

func TestLoadFSSourceWithoutFS(t *testing.T) {
	_, err := New().Load(context.Background(), SourceFromFS("pages/geo.yaml"))
	if err == nil || !strings.Contains(err.Error(), "requires WithFS") {
		t.Fatalf("expected fs error, got %v", err)
	}
}

func TestLoadNilSource(t *testing.T) {
	_, err := New().Load(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "source is required") {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Load(ctx, SourceFromBytes("page.yaml", []byte("title: x")))
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestLoadDecodeError(t *testing.T) {
	_, err := New().Load(context.Background(), SourceFromBytes("page.json", []byte("{")))
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}
