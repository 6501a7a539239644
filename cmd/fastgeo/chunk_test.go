package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChunkCmdRejectsUnknownStrategy(t *testing.T) {
	cmd := chunkCmd()
	cmd.SetArgs([]string{"--strategy", "sentences", "page.html"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), `unknown strategy "sentences"`) {
		t.Fatalf("expected strategy error, got %v", err)
	}
}

func TestChunkCmdRejectsUnknownEstimator(t *testing.T) {
	cmd := chunkCmd()
	cmd.SetArgs([]string{"--estimator", "bytes", "page.html"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), `unknown estimator "bytes"`) {
		t.Fatalf("expected estimator error, got %v", err)
	}
}

func TestChunkCmdWritesChunkedMarkup(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	if err := os.WriteFile(input, []byte("<p>one two</p><p>three four</p>"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	output := filepath.Join(dir, "chunks.html")

	cmd := chunkCmd()
	cmd.SetArgs([]string{"--max-tokens", "2", "--overlap", "0", "-o", output, input})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `class="optimized-content chunked-view"`) {
		t.Fatalf("chunk wrapper missing: %s", got)
	}
	if !strings.Contains(got, `data-chunk-id="1"`) {
		t.Fatalf("expected a second chunk: %s", got)
	}
}
