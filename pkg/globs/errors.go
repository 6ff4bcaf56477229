package globs

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is wrapped by every PatternError.
//
//nolint:gochecknoglobals // Sentinel shared with doublestar so errors.Is works against either
var ErrBadPattern = doublestar.ErrBadPattern

// PatternError reports a syntactically invalid include or exclude glob.
// It is only ever returned while building an iterator, before any I/O.
type PatternError struct {
	Pattern string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("cannot compile glob %q: %v", e.Pattern, ErrBadPattern)
}

// Unwrap returns ErrBadPattern.
func (e *PatternError) Unwrap() error {
	return ErrBadPattern
}

// TraversalError reports an entry that could not be read during a walk.
// The walk skips the entry and carries on.
type TraversalError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *TraversalError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *TraversalError) Unwrap() error {
	return e.Err
}
