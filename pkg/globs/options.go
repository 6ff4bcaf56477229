package globs

import (
	"github.com/joe/list-files/pkg/filesystem"
)

// Exported constants.
const (
	// MaxDepth bounds the traversal of patterns that can recurse without limit ("**").
	MaxDepth = 100
	// MatchAll is the include pattern used when none is given.
	MatchAll = "**"
)

// DefaultExcludeGlobs are applied when the caller supplies no exclude list.
//
//nolint:gochecknoglobals // Read-only defaults
var DefaultExcludeGlobs = []string{"**/.git", "**/.DS_Store", "**/target", "**/node_modules"}

// ErrorHandler receives the per-entry traversal failures that are otherwise skipped.
type ErrorHandler func(err *TraversalError)

// ListOptions configures a listing. The zero value (or a nil *ListOptions) lists
// from the local filesystem with the default excludes and absolute-path matching.
type ListOptions struct {
	// ExcludeGlobs replaces DefaultExcludeGlobs when non-nil. An empty, non-nil
	// slice disables excludes entirely.
	ExcludeGlobs []string

	// RelativeGlob matches excludes against paths relative to the listed root
	// instead of absolute paths.
	RelativeGlob bool

	// Depth overrides the per-group depth derived from the patterns when > 0.
	Depth int

	// Source is the directory-entry source to walk. Defaults to the local filesystem.
	Source filesystem.DirSource

	// OnError is called for every entry skipped because of an I/O failure.
	OnError ErrorHandler
}

// NewListOptions creates options with the given exclude globs.
func NewListOptions(excludeGlobs ...string) *ListOptions {
	return &ListOptions{ExcludeGlobs: excludeGlobs}
}

// WithDepth sets an explicit traversal depth.
func (o *ListOptions) WithDepth(depth int) *ListOptions {
	o.Depth = depth
	return o
}

// WithErrorHandler sets the traversal error callback.
func (o *ListOptions) WithErrorHandler(handler ErrorHandler) *ListOptions {
	o.OnError = handler
	return o
}

// WithExcludeGlobs replaces the exclude globs.
func (o *ListOptions) WithExcludeGlobs(globs ...string) *ListOptions {
	if globs == nil {
		globs = []string{}
	}

	o.ExcludeGlobs = globs

	return o
}

// WithRelativeGlob switches exclude matching to root-relative paths.
func (o *ListOptions) WithRelativeGlob() *ListOptions {
	o.RelativeGlob = true
	return o
}

// WithSource sets the directory-entry source.
func (o *ListOptions) WithSource(source filesystem.DirSource) *ListOptions {
	o.Source = source
	return o
}

// source returns the configured source or the local filesystem.
func (o *ListOptions) source() filesystem.DirSource {
	if o == nil || o.Source == nil {
		return filesystem.NewLocalSource()
	}

	return o.Source
}
