// Package tokenizer normalizes raw whitespace-delimited tokens into clean
// lowercase alphabetic words. Every function is pure and safe to call from
// any number of goroutines.
package tokenizer

import "strings"

// Normalize strips every non-alphabetic rune from raw and lowercases the
// remainder. An empty result means the token carried no letters and should
// be discarded.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, raw)
}

// Letter returns the shard index (0..25) for a normalized word's first
// character. The second return is false for the empty string or a word whose
// first byte falls outside 'a'..'z'; Normalize never produces the latter, but
// callers feeding unnormalized input still get a safe answer.
func Letter(word string) (int, bool) {
	if word == "" {
		return 0, false
	}
	c := word[0]
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}
