// Package errors turns listing failures into actionable errors: a category and
// a few suggestions the CLI prints under the message.
//
//	enricher := errors.NewEnricher()
//	if _, err := globs.ListFiles(root, patterns, opts); err != nil {
//	    enriched := enricher.Enrich(err, "")
//	    fmt.Fprintln(os.Stderr, enriched)
//	    fmt.Fprintln(os.Stderr, errors.FormatSuggestions(enriched))
//	}
//
// Typed errors (glob syntax errors, traversal errors, SFTP location errors and
// the os sentinels) are categorized by type; anything else falls back to
// matching well-known phrases in the message. When no path is given, one is
// extracted from messages like "open /some/file: permission denied".
package errors

import "strings"

// Exported constants.
const (
	CategoryPattern    ErrorCategory = "pattern"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryRemote     ErrorCategory = "remote"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	Unwrap() error
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError wrapping cause.
func NewActionableError(
	cause error,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		cause:        cause,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions of an ActionableError as a bulleted
// list. Returns "" if err is nil, not actionable, or has no suggestions.
func FormatSuggestions(err error) string {
	actionable, ok := err.(ActionableError) //nolint:errorlint // Only the outermost error carries suggestions
	if !ok {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range actionable.Suggestions() {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	cause        error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

// AffectedPath returns the path or pattern the error is about.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.cause.Error()
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap returns the enriched error.
func (e *actionableError) Unwrap() error {
	return e.cause
}
