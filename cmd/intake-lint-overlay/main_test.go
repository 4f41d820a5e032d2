package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLintEmbeddedOverlay(t *testing.T) {
	var stderr bytes.Buffer
	if code := lint(nil, &stderr); code != 0 {
		t.Fatalf("embedded overlay has violations:\n%s", stderr.String())
	}
}

func TestLintDirectory(t *testing.T) {
	dir := t.TempDir()
	overlay := "topics:\n  capacity:\n    fields:\n      boxes:\n        label: Boxes\n"
	if err := os.WriteFile(filepath.Join(dir, "capacity.yaml"), []byte(overlay), 0o600); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	var stderr bytes.Buffer
	if code := lint([]string{dir}, &stderr); code != 1 {
		t.Fatalf("expected failure, got %d", code)
	}
	want := filepath.Join(dir, "capacity.yaml") + ": capacity > boxes -> no such field"
	if !strings.Contains(stderr.String(), want) {
		t.Fatalf("expected %q in:\n%s", want, stderr.String())
	}
}

func TestLintRejectsFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte("topics: {}\n"), 0o600); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	var stderr bytes.Buffer
	if code := lint([]string{path}, &stderr); code != 1 || !strings.Contains(stderr.String(), "expected a directory") {
		t.Fatalf("expected directory error, got %d: %s", code, stderr.String())
	}
}
