package tokenizer

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercase kept", "cat", "cat"},
		{"uppercase folded", "DOG", "dog"},
		{"mixed case", "CaT", "cat"},
		{"punctuation stripped", "don't!", "dont"},
		{"digits stripped", "c3p0", "cp"},
		{"only digits", "12345", ""},
		{"only punctuation", "?!...", ""},
		{"empty", "", ""},
		{"unicode letters stripped", "café", "caf"},
		{"leading punctuation", "(word)", "word"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestLetter(t *testing.T) {
	cases := []struct {
		word   string
		want   int
		wantOK bool
	}{
		{"apple", 0, true},
		{"zebra", 25, true},
		{"mango", 12, true},
		{"", 0, false},
		{"Apple", 0, false},
		{"1abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := Letter(tc.word)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Letter(%q) = (%d, %v), want (%d, %v)",
				tc.word, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormalizeThenLetterAlwaysInRange(t *testing.T) {
	// Everything Normalize keeps starts with an ASCII letter, so Letter must
	// succeed on any non-empty normalized word.
	inputs := []string{"Hello,", "WORLD!!!", "a1b2c3", "éclair", "x"}
	for _, raw := range inputs {
		word := Normalize(raw)
		if word == "" {
			continue
		}
		if _, ok := Letter(word); !ok {
			t.Errorf("Letter(Normalize(%q)) = Letter(%q) failed", raw, word)
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	tokens := []string{
		"word", "Don't", "OVER-ENGINEERED", "c3p0", "straight-forward!",
		strings.Repeat("abcDEF123", 20),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, tok := range tokens {
			_ = Normalize(tok)
		}
	}
}
