package matcher

import (
	"strings"
	"unicode/utf8"
)

// asciiPunctuation matches Python's string.punctuation.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// KeywordSeparator joins keywords in the processed-sentence log.
const KeywordSeparator = "|"

// Tokenize strips ASCII punctuation from the sentence, keeping apostrophes so
// possessives survive, and splits it on single spaces. Empty tokens left by
// repeated spaces are dropped.
func Tokenize(sentence string) []string {
	stripped := strings.Map(func(r rune) rune {
		if r == '\'' || r >= utf8.RuneSelf {
			return r
		}
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, sentence)

	parts := strings.Split(stripped, " ")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}
