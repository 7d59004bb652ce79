// Package sentiment provides a lexicon-based polarity scorer for short
// social-media text. Scoring is deterministic and requires no I/O: tokens are
// matched against an embedded AFINN-style word list and their weights summed.
package sentiment

import (
	"strings"
	"unicode"
)

// Result holds the polarity score for one piece of text.
type Result struct {
	// Score is the sum of lexicon weights over all matched tokens.
	Score int
	// Comparative is Score normalized by token count, so longer texts do not
	// dominate purely by volume. Zero for empty text.
	Comparative float64
}

// Score analyzes text and returns its polarity. Tokenization is
// case-insensitive and splits on anything that is not a letter, digit or
// apostrophe. Tokens absent from the lexicon contribute 0, so unknown or empty
// input always yields {0, 0}.
func Score(text string) Result {
	tokens := Tokenize(text)

	score := 0
	for _, tok := range tokens {
		score += lexicon[tok]
	}

	n := len(tokens)
	if n < 1 {
		n = 1
	}

	return Result{
		Score:       score,
		Comparative: float64(score) / float64(n),
	}
}

// Tokenize lowercases text and splits it into word tokens. Apostrophes are
// kept so contractions like "can't" match lexicon entries.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
