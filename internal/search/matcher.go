package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher decides whether a single line is a match.
type Matcher interface {
	// Match reports whether line contains the search term.
	Match(line string) bool
}

// ExactMatcher implements substring matching with a case sensitivity option.
type ExactMatcher struct {
	term          string
	caseSensitive bool
	lower         cases.Caser
}

// NewExactMatcher creates a substring matcher. When caseSensitive is false
// the term is lowercased once here and every line is lowercased with the
// same caser before comparison.
func NewExactMatcher(term string, caseSensitive bool) *ExactMatcher {
	m := &ExactMatcher{
		term:          term,
		caseSensitive: caseSensitive,
	}
	if !caseSensitive {
		m.lower = cases.Lower(language.Und)
		m.term = m.lower.String(term)
	}
	return m
}

// Match checks if line contains the search term.
func (m *ExactMatcher) Match(line string) bool {
	if m.term == "" {
		return true
	}
	if !m.caseSensitive {
		line = m.lower.String(line)
	}
	return strings.Contains(line, m.term)
}
