// Package wordlist provides target word filtering helpers.
package wordlist

import "unicode"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterFor returns the filter used for target words. Strict mode keeps only
// words made entirely of word runes; otherwise every non-empty word passes.
func FilterFor(strict bool) FilterFunc {
	if strict {
		return IsWord
	}
	return func(word string) bool { return word != "" }
}

// IsWord reports whether word is non-empty and consists only of letters,
// digits and underscores.
func IsWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !IsWordRune(r) {
			return false
		}
	}
	return true
}

// IsWordRune reports whether r can be part of a word.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Filter splits words into kept and dropped, preserving order.
func Filter(words []string, keep FilterFunc) (kept, dropped []string) {
	kept = make([]string, 0, len(words))
	for _, word := range words {
		if keep(word) {
			kept = append(kept, word)
			continue
		}
		dropped = append(dropped, word)
	}
	return kept, dropped
}
