// Package lexical holds the text normalization and overlap scoring shared by
// every resolution strategy. Patterns and messages must go through the same
// Tokenize call, otherwise overlap scores silently drift apart.
package lexical

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// TokenSet is an unordered set of normalized tokens.
type TokenSet map[string]struct{}

// Tokenize lower-cases text, turns every rune that is not a letter, digit,
// underscore or whitespace into a space and splits on whitespace.
func Tokenize(text string) TokenSet {
	set := make(TokenSet)
	for _, tok := range Tokens(text) {
		set[tok] = struct{}{}
	}
	return set
}

// Tokens is Tokenize without de-duplication, in message order.
func Tokens(text string) []string {
	if text == "" {
		return nil
	}

	// cases.Caser is stateful; one per call keeps Tokens safe for concurrent use.
	lowered := cases.Lower(language.Und).String(norm.NFC.String(text))

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)

	return strings.Fields(cleaned)
}

// Union tokenizes every text and merges the results.
func Union(texts []string) TokenSet {
	set := make(TokenSet)
	for _, t := range texts {
		for _, tok := range Tokens(t) {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Add merges other into s.
func (s TokenSet) Add(other TokenSet) {
	for tok := range other {
		s[tok] = struct{}{}
	}
}

// Has reports whether tok is in the set.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Sorted returns the tokens in ascending order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
