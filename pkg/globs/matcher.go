package globs

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a slash-separated path matches.
type Matcher interface {
	Match(name string) bool
}

// CompileMatcher validates patterns and returns a matcher that accepts a path
// when any of them matches it. A "*" never crosses a "/"; only "**" does.
// An empty pattern list matches nothing.
func CompileMatcher(patterns []string) (Matcher, error) {
	for _, pattern := range patterns {
		if err := ValidatePattern(pattern); err != nil {
			return nil, err
		}
	}

	return &globMatcher{patterns: slices.Clone(patterns)}, nil
}

// ValidatePattern returns a *PatternError when pattern is not valid glob syntax.
func ValidatePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return &PatternError{Pattern: pattern}
	}

	return nil
}

// globMatcher is the doublestar-backed Matcher.
type globMatcher struct {
	patterns []string
}

// Match implements Matcher.
func (m *globMatcher) Match(name string) bool {
	for _, pattern := range m.patterns {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}

	return false
}
