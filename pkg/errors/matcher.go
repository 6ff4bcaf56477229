package errors

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joe/list-files/pkg/filesystem"
	"github.com/joe/list-files/pkg/globs"
)

// PatternMatcher assigns an error to a category.
type PatternMatcher interface {
	Match(err error) ErrorCategory
}

// NewPatternMatcher creates a PatternMatcher that checks error types first and
// then known message phrases, in a fixed order.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		phrases: []categoryPhrases{
			{CategoryPattern, []string{"syntax error in pattern", "cannot compile glob"}},
			{CategoryPermission, []string{"permission denied", "access denied", "operation not permitted"}},
			{CategoryPath, []string{"no such file or directory", "file not found", "not a directory"}},
			{CategoryRemote, []string{
				"ssh connection failed",
				"sftp session",
				"no ssh authentication methods",
				"unable to authenticate",
				"knownhosts",
			}},
		},
	}
}

// categoryPhrases lists the lowercase phrases that identify a category.
type categoryPhrases struct {
	category ErrorCategory
	phrases  []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	phrases []categoryPhrases
}

// Match returns the category of err, CategoryUnknown when nothing fits.
func (m *patternMatcher) Match(err error) ErrorCategory {
	if category, ok := matchType(err); ok {
		return category
	}

	lowerMsg := strings.ToLower(err.Error())

	for _, entry := range m.phrases {
		for _, phrase := range entry.phrases {
			if strings.Contains(lowerMsg, phrase) {
				return entry.category
			}
		}
	}

	return CategoryUnknown
}

// matchType categorizes the errors this module defines or wraps.
func matchType(err error) (ErrorCategory, bool) {
	switch {
	case errors.Is(err, globs.ErrBadPattern):
		return CategoryPattern, true
	case errors.Is(err, fs.ErrPermission):
		return CategoryPermission, true
	case errors.Is(err, fs.ErrNotExist):
		return CategoryPath, true
	case errors.Is(err, filesystem.ErrInvalidURL),
		errors.Is(err, filesystem.ErrMissingUser),
		errors.Is(err, filesystem.ErrMissingHost):
		return CategoryRemote, true
	default:
		return "", false
	}
}
