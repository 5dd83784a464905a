package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/wordswap/internal/wordlist"
)

// ReplaceWord replaces every whole-word, case-insensitive occurrence of word
// in line with repl and returns the new line and the number of replacements.
// A whole word is preceded by the start of line or a non-word rune and
// followed by the end of line or a non-word rune.
func ReplaceWord(line, word, repl string) (string, int) {
	if word == "" || len(line) == 0 {
		return line, 0
	}
	var b strings.Builder
	count := 0
	last := 0
	prevWord := false
	for i := 0; i < len(line); {
		if !prevWord {
			if end, ok := matchAt(line, i, word); ok && !wordRuneAt(line, end) {
				if count == 0 {
					b.Grow(len(line))
				}
				b.WriteString(line[last:i])
				b.WriteString(repl)
				last = end
				count++
				r, _ := utf8.DecodeLastRuneInString(line[i:end])
				prevWord = wordlist.IsWordRune(r)
				i = end
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		prevWord = wordlist.IsWordRune(r)
		i += size
	}
	if count == 0 {
		return line, 0
	}
	b.WriteString(line[last:])
	return b.String(), count
}

// CountWord returns the number of whole-word, case-insensitive occurrences
// of word in line.
func CountWord(line, word string) int {
	_, n := ReplaceWord(line, word, "")
	return n
}

// matchAt reports whether word matches s at byte offset i ignoring case and
// returns the offset just past the match.
func matchAt(s string, i int, word string) (int, bool) {
	j := i
	for k := 0; k < len(word); {
		if j >= len(s) {
			return 0, false
		}
		wr, wsize := utf8.DecodeRuneInString(word[k:])
		sr, ssize := utf8.DecodeRuneInString(s[j:])
		if !equalFoldRune(sr, wr) {
			return 0, false
		}
		k += wsize
		j += ssize
	}
	return j, true
}

func wordRuneAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return wordlist.IsWordRune(r)
}

// equalFoldRune follows the simple case folding orbit, as strings.EqualFold does.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return lowerASCII(a) == lowerASCII(b)
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
