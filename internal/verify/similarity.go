package verify

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes drops short words that carry little signal (i, w, na).
const minTokenRunes = 3

// fingerprint is a term-frequency vector over the words of a text.
type fingerprint struct {
	terms map[string]float64
	norm  float64
}

func newFingerprint(text string) *fingerprint {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &fingerprint{terms: counts, norm: math.Sqrt(norm)}
}

// tokenize lowercases text and splits it on anything that is not a letter or
// digit, so diacritics stay inside their words.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// similarity is the cosine similarity of the word vectors of a and b. Two
// texts without any words are identical; one without words shares nothing.
func similarity(a, b string) float64 {
	fa, fb := newFingerprint(a), newFingerprint(b)
	switch {
	case fa == nil && fb == nil:
		return 1.0
	case fa == nil || fb == nil:
		return 0
	}
	var dot float64
	for term, count := range fa.terms {
		if other, ok := fb.terms[term]; ok {
			dot += count * other
		}
	}
	return dot / (fa.norm * fb.norm)
}
