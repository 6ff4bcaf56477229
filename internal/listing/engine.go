// Package listing runs a glob listing end to end for the CLI: it opens the
// root (local or SFTP), streams matching entries to a visitor, optionally
// orders them by sort globs, and reports progress through events.
package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/joe/list-files/pkg/filesystem"
	"github.com/joe/list-files/pkg/globs"
)

// Exported variables.
var (
	ErrListCancelled = errors.New("listing cancelled")
)

// Engine lists the entries under Root that match Patterns.
type Engine struct {
	Root         string
	Patterns     []string
	Options      *globs.ListOptions   // Excludes, depth and error handler; Source defaults to the engine's
	Dirs         bool                 // List directories instead of files
	SortGlobs    []string             // Order entries by the first (or last) matching glob
	EndWeighted  bool                 // Rank by the last matching sort glob
	Source       filesystem.DirSource // Where entries are read from
	TimeProvider TimeProvider         // Time provider (for dependency injection)
	emitter      EventEmitter         // Event emitter for TUI communication (optional)
	logger       *log.Logger
	cancelChan   chan struct{} // Channel to signal cancellation
	cancelOnce   sync.Once     // Ensure Cancel() is only called once
	closeFunc    func()        // Function to close SFTP connections (if any)
}

// Entry is one listed file or directory.
type Entry struct {
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Result summarizes a finished listing.
type Result struct {
	Count    int   // Entries handed to the visitor
	Skipped  int   // Entries skipped because they could not be read
	Bytes    int64 // Total size of the listed files
	Duration time.Duration
}

// NewEngine creates a listing engine.
// Supports both local paths and SFTP URLs (sftp://user@host:port/path).
func NewEngine(root string, patterns []string) (*Engine, error) {
	source, path, closer, err := filesystem.CreateSource(root)
	if err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}

	engine := NewEngineWithSource(path, patterns, source)
	engine.closeFunc = closer

	return engine, nil
}

// NewEngineWithSource creates a listing engine over an already open source.
func NewEngineWithSource(root string, patterns []string, source filesystem.DirSource) *Engine {
	return &Engine{
		Root:         root,
		Patterns:     patterns,
		Source:       source,
		TimeProvider: &RealTimeProvider{},
		logger:       log.New(io.Discard),
		cancelChan:   make(chan struct{}),
	}
}

// Cancel stops the listing before the next entry is pulled.
func (e *Engine) Cancel() {
	e.cancelOnce.Do(func() {
		close(e.cancelChan)
	})
}

// Close cleans up resources, including SFTP connections if any.
func (e *Engine) Close() {
	if e.closeFunc != nil {
		e.closeFunc()
		e.closeFunc = nil
	}
}

// GetEventEmitter returns the current event emitter.
func (e *Engine) GetEventEmitter() EventEmitter {
	return e.emitter
}

// Run lists the matching entries and calls visit for each, in order.
// A visit error stops the listing and is returned as is. Unreadable entries
// are skipped, counted in the result and reported through events.
func (e *Engine) Run(ctx context.Context, visit func(Entry) error) (*Result, error) {
	result := &Result{}
	start := e.TimeProvider.Now()

	e.emit(ListStarted{Root: e.Root, Patterns: e.Patterns, Dirs: e.Dirs})
	e.logger.Debug("listing started", "root", e.Root, "patterns", e.Patterns, "dirs", e.Dirs)

	err := e.run(ctx, result, visit)

	result.Duration = e.TimeProvider.Now().Sub(start)

	if err != nil {
		e.logger.Debug("listing stopped", "err", err, "count", result.Count)
		e.emit(ErrorOccurred{Err: err})
	} else {
		e.logger.Debug("listing complete", "count", result.Count, "skipped", result.Skipped, "duration", result.Duration)
	}

	e.emit(ListComplete{Result: result})

	return result, err
}

// SetEventEmitter sets the event emitter for TUI communication.
// The emitter is optional - if nil, no events will be emitted.
func (e *Engine) SetEventEmitter(emitter EventEmitter) {
	e.emitter = emitter
}

// SetLogger routes the engine's log output to l. A nil logger silences it.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}

	e.logger = l
}

func (e *Engine) checkCancellation(ctx context.Context) error {
	select {
	case <-e.cancelChan:
		return ErrListCancelled
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrListCancelled, ctx.Err())
	default:
		return nil
	}
}

// emit sends an event if an emitter is configured.
func (e *Engine) emit(event Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}

// entries starts the underlying glob iterator. Pattern errors surface here,
// before any directory is read.
func (e *Engine) entries(opts *globs.ListOptions) (iter.Seq[Entry], error) {
	if e.Dirs {
		dirs, err := globs.IterDirs(e.Root, e.Patterns, opts)
		if err != nil {
			return nil, err
		}

		return func(yield func(Entry) bool) {
			for dir := range dirs.All() {
				if !yield(Entry{Path: dir.Path, IsDir: true}) {
					return
				}
			}
		}, nil
	}

	files, err := globs.IterFiles(e.Root, e.Patterns, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(Entry) bool) {
		for file := range files.All() {
			if !yield(Entry{Path: file.Path, Size: file.Size, ModTime: file.ModTime}) {
				return
			}
		}
	}, nil
}

// listOptions copies the configured options, filling in the engine's source
// and chaining a skip counter in front of any caller error handler.
func (e *Engine) listOptions(result *Result) *globs.ListOptions {
	opts := globs.ListOptions{}
	if e.Options != nil {
		opts = *e.Options
	}

	if opts.Source == nil {
		opts.Source = e.Source
	}

	next := opts.OnError
	opts.OnError = func(err *globs.TraversalError) {
		result.Skipped++
		e.logger.Warn("skipping unreadable entry", "path", err.Path, "err", err.Err)
		e.emit(EntrySkipped{Path: err.Path, Err: err.Err})

		if next != nil {
			next(err)
		}
	}

	return &opts
}

func (e *Engine) run(ctx context.Context, result *Result, visit func(Entry) error) error {
	if err := e.checkCancellation(ctx); err != nil {
		return err
	}

	for _, glob := range e.SortGlobs {
		if err := globs.ValidatePattern(glob); err != nil {
			return fmt.Errorf("invalid sort glob: %w", err)
		}
	}

	entries, err := e.entries(e.listOptions(result))
	if err != nil {
		return err
	}

	if len(e.SortGlobs) > 0 {
		entries, err = e.sorted(ctx, entries)
		if err != nil {
			return err
		}
	}

	for entry := range entries {
		if err := e.checkCancellation(ctx); err != nil {
			return err
		}

		result.Count++
		result.Bytes += entry.Size
		e.emit(EntryFound{Entry: entry, Count: result.Count})

		if err := visit(entry); err != nil {
			return err
		}
	}

	return nil
}

// sorted drains entries and orders them by the sort globs. Ties keep their
// listing order.
func (e *Engine) sorted(ctx context.Context, entries iter.Seq[Entry]) (iter.Seq[Entry], error) {
	var collected []Entry

	for entry := range entries {
		if err := e.checkCancellation(ctx); err != nil {
			return nil, err
		}

		collected = append(collected, entry)
	}

	ordered, err := globs.SortByGlobs(collected, func(entry Entry) string { return entry.Path }, e.SortGlobs, e.EndWeighted)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("sorted entries", "count", len(ordered), "globs", e.SortGlobs, "endWeighted", e.EndWeighted)

	return slices.Values(ordered), nil
}
