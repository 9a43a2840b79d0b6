// Package tokenize normalizes free-text skill and requirement phrases into
// match token sets used for fuzzy overlap comparison.
package tokenize

import (
	"sort"
	"strings"
)

// Set is a deduplicated collection of match tokens.
type Set map[string]struct{}

// NewSet returns an empty token set.
func NewSet() Set {
	return make(Set)
}

// Add inserts a token into the set.
func (s Set) Add(token string) {
	s[token] = struct{}{}
}

// Contains reports whether the exact token is present.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of distinct tokens.
func (s Set) Len() int {
	return len(s)
}

// Union merges the other set into s.
func (s Set) Union(other Set) {
	for token := range other {
		s[token] = struct{}{}
	}
}

// Sorted returns the tokens in lexical order for deterministic iteration.
func (s Set) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// separators are folded into commas before fragment splitting. The literal
// word " and " is treated the same way so "Python and SQL" splits cleanly.
var separators = []string{"/", "&", "|", ";", "(", ")", ".", "-", "_"}

// Tokenize normalizes a phrase into its match token set.
//
// The phrase is lowercased, separators become commas, and each comma or
// newline delimited fragment is stripped down to lowercase letters, digits
// and single spaces. Both the cleaned fragment and each of its words are
// added as tokens, so phrase-level and word-level matches are discoverable.
// Empty input yields an empty set.
func Tokenize(text string) Set {
	tokens := NewSet()
	if text == "" {
		return tokens
	}

	s := strings.ToLower(text)
	for _, sep := range separators {
		s = strings.ReplaceAll(s, sep, ",")
	}
	s = strings.ReplaceAll(s, " and ", ",")

	for _, fragment := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		cleaned := cleanFragment(fragment)
		if cleaned == "" {
			continue
		}
		tokens.Add(cleaned)
		for _, word := range strings.Fields(cleaned) {
			tokens.Add(word)
		}
	}

	return tokens
}

// TokenizeAll tokenizes every phrase into a single combined set.
func TokenizeAll(phrases []string) Set {
	tokens := NewSet()
	for _, phrase := range phrases {
		tokens.Union(Tokenize(phrase))
	}
	return tokens
}

// cleanFragment strips everything except lowercase letters, digits and
// spaces, then collapses whitespace runs to single spaces.
func cleanFragment(fragment string) string {
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			return r
		}
		return ' '
	}, fragment)
	return strings.Join(strings.Fields(mapped), " ")
}

// Overlaps reports whether a requirement token matches a candidate token:
// exact equality, substring containment in either direction, or a non-empty
// word-set intersection between the two tokens.
func Overlaps(requirement, candidate string) bool {
	if requirement == candidate ||
		strings.Contains(candidate, requirement) ||
		strings.Contains(requirement, candidate) {
		return true
	}

	candidateWords := strings.Fields(candidate)
	for _, rw := range strings.Fields(requirement) {
		for _, cw := range candidateWords {
			if rw == cw {
				return true
			}
		}
	}
	return false
}
