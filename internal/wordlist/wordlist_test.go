package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWordsTrimsAndSkipsBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "find_words.txt")
	if err := os.WriteFile(path, []byte("  love \n\nhate\r\n\t\nword\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	want := []string{"love", "hate", "word"}
	if strings.Join(words, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, words)
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	if _, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadLinesKeepsEmptyLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("first\n\n  indented\r\nlast"))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	want := []string{"first", "", "  indented", "last"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestReadLinesEmptyInput(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}
