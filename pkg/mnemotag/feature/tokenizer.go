// Package feature converts record text into the numeric matrices the
// classifier bank trains on: a shared TF-IDF bag-of-n-grams vectorizer and
// per-category binary label matrices.
package feature

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into normalized tokens for n-gram extraction.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into lowercase tokens, removing stopwords.
// Tokens keep letters, digits and interior hyphens; single-rune tokens are
// dropped. Numeric tokens are kept: publication years are real signal for
// the time category.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := cleanToken(current.String())
		current.Reset()
		if len(word) <= 1 {
			return
		}
		if _, stop := t.stopwords[word]; stop {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// cleanToken strips leading/trailing hyphens and collapses hyphen runs.
func cleanToken(token string) string {
	token = strings.Trim(token, "-")
	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}
	return token
}

// ngrams expands a token sequence into space-joined n-grams for n in
// [min, max]. Order follows the text: all n-grams at position i are emitted
// before those at i+1.
func ngrams(tokens []string, min, max int) []string {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}

	var out []string
	for i := range tokens {
		for n := min; n <= max && i+n <= len(tokens); n++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
