package errors

import (
	"errors"
	"regexp"
	"strings"

	"github.com/joe/list-files/pkg/globs"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled once, shared by all enrichers
	pathExtractionPatterns = []*regexp.Regexp{
		// "open /path/to/file: ..." and relative paths
		regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
		// Windows paths with backslashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
		// Windows paths with forward slashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:/[^\s:]+):`),
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich wraps err with a category and suggestions.
// Errors that are already actionable are returned unchanged, and nil stays nil.
// When affectedPath is empty it is taken from the error itself.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	if affectedPath == "" {
		affectedPath = affectedPathOf(err)
	}

	category := e.matcher.Match(err)

	return NewActionableError(err, category, e.generator.Generate(category, affectedPath), affectedPath)
}

// affectedPathOf finds the pattern or path an error is about.
func affectedPathOf(err error) string {
	var patternErr *globs.PatternError
	if errors.As(err, &patternErr) {
		return patternErr.Pattern
	}

	var traversalErr *globs.TraversalError
	if errors.As(err, &traversalErr) {
		return traversalErr.Path
	}

	return extractPath(err.Error())
}

// extractPath pulls a path out of the usual Go error message shape
// "operation /path/to/file: description". Returns "" when there is none.
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
