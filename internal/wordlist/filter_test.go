package wordlist

import "testing"

func TestStrictFilterRejectsNonWords(t *testing.T) {
	filter := FilterFor(true)
	for _, word := range []string{"hello", "résumé", "naïve", "word_2"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass strict filter", word)
		}
	}
	for _, word := range []string{"", "don’t", "co-op", "two words"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestLenientFilterKeepsPunctuation(t *testing.T) {
	filter := FilterFor(false)
	if !filter("co-op") {
		t.Fatalf("expected co-op to pass lenient filter")
	}
	if filter("") {
		t.Fatalf("expected empty word to be rejected")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	kept, dropped := Filter([]string{"b", "x-y", "a", "b"}, FilterFor(true))
	want := []string{"b", "a", "b"}
	if len(kept) != len(want) {
		t.Fatalf("expected %d kept words, got %d", len(want), len(kept))
	}
	for i := range want {
		if kept[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, kept[i])
		}
	}
	if len(dropped) != 1 || dropped[0] != "x-y" {
		t.Fatalf("unexpected dropped words: %v", dropped)
	}
}
