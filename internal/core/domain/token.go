package domain

import (
	"strings"
	"unicode"
)

// Tokenize splits a gloss or morpheme line into its ordered tokens.
// Tokens are delimited by runs of whitespace and punctuation and are
// compared case-sensitively. An empty line yields no tokens.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
}

// NormalizeGloss collapses runs of whitespace in a gloss line to single
// spaces and trims the ends. It is the key function for gloss-identity
// clustering: two records are context variants iff their normalised
// gloss strings are character-equal.
func NormalizeGloss(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// TokenSet is the set of distinct tokens in a line.
// Repeated tokens collapse; set operations ignore order.
type TokenSet map[string]struct{}

// NewTokenSet builds the distinct-token set of a token sequence.
func NewTokenSet(tokens []string) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, tok := range tokens {
		s[tok] = struct{}{}
	}
	return s
}

// Contains reports exact membership of tok in the set.
func (s TokenSet) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// SymmetricDifferenceSize returns the number of tokens unique to either
// set, each counted once.
func (s TokenSet) SymmetricDifferenceSize(other TokenSet) int {
	n := 0
	for tok := range s {
		if !other.Contains(tok) {
			n++
		}
	}
	for tok := range other {
		if !s.Contains(tok) {
			n++
		}
	}
	return n
}

// IsMinimalPair reports whether two gloss lines form a minimal pair:
// the total number of tokens unique to either side equals exactly one.
// That corresponds to one side being a strict superset of the other by a
// single token. A one-token substitution yields a difference of two and
// is therefore NOT a minimal pair under this rule.
func IsMinimalPair(a, b string) bool {
	sa := NewTokenSet(Tokenize(a))
	sb := NewTokenSet(Tokenize(b))
	return sa.SymmetricDifferenceSize(sb) == 1
}
