package analyzer

import (
	"strings"
	"unicode"
)

// tokenize lowercases, strips punctuation to whitespace, splits, and
// drops tokens shorter than 3 characters or in the stop-word set.
func (a *implAnalyzer) tokenize(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	fields := strings.Fields(mapped)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < 3 {
			continue
		}
		if a.vocab.isStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// rawTokens lowercases and splits without length or stop-word
// filtering. Used for sentiment counting.
func rawTokens(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(mapped)
}

// capitalize upper-cases the first rune of a word.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
