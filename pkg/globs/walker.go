package globs

import (
	"os"

	"github.com/kr/fs"

	"github.com/joe/list-files/pkg/filesystem"
)

// walkEntry is one entry that survived pruning.
type walkEntry struct {
	path string // as walked, normalized
	rel  string // relative to the group base
	abs  string // absolute, for exclude matching
	info os.FileInfo
}

// excluder applies the exclude matcher to absolute or root-relative paths.
type excluder struct {
	matcher  Matcher
	relative bool
	absRoot  string
}

// excludes reports whether the entry at abs is excluded.
func (e *excluder) excludes(abs string) bool {
	if e.relative {
		return e.matcher.Match(rootRelative(e.absRoot, abs))
	}

	return e.matcher.Match(abs)
}

// groupWalk lazily walks one group's base directory, skipping subtrees that
// are excluded, outside every literal prefix, or below the depth limit.
// The base itself is never returned.
type groupWalk struct {
	group    *Group
	depth    int
	source   filesystem.DirSource
	exclude  *excluder
	onError  ErrorHandler
	walker   *fs.Walker
	basePath string
}

// newGroupWalk prepares a walk; no I/O happens until the first next call.
func newGroupWalk(group *Group, depth int, source filesystem.DirSource, exclude *excluder, onError ErrorHandler) *groupWalk {
	return &groupWalk{
		group:   group,
		depth:   depth,
		source:  source,
		exclude: exclude,
		onError: onError,
	}
}

// next returns the next surviving entry, or false once the walk is over.
func (w *groupWalk) next() (walkEntry, bool) {
	if w.walker == nil {
		w.walker = fs.WalkFS(w.group.Base, &rootFollowingSource{DirSource: w.source, root: w.group.Base})
		w.basePath = w.group.Base
	}

	for w.walker.Step() {
		walked := NormalizePath(w.walker.Path())

		if err := w.walker.Err(); err != nil {
			w.report(walked, err)
			continue
		}

		rel := relativeTo(w.basePath, walked)
		if rel == "." {
			continue
		}

		entry := walkEntry{
			path: walked,
			rel:  rel,
			abs:  joinRelative(w.group.absBase, rel),
			info: w.walker.Stat(),
		}

		if !entry.info.IsDir() {
			return entry, true
		}

		if w.prune(entry) {
			w.walker.SkipDir()
			continue
		}

		if segmentDepth(rel) >= w.depth {
			w.walker.SkipDir()
		}

		return entry, true
	}

	return walkEntry{}, false
}

// prune reports whether a directory must not be descended into.
func (w *groupWalk) prune(entry walkEntry) bool {
	if w.exclude.excludes(entry.abs) {
		logger.Debug("pruned excluded directory", "path", entry.path)
		return true
	}

	if !w.group.allowsDir(entry.rel) {
		logger.Debug("pruned directory outside literal prefixes", "path", entry.path, "prefixes", w.group.Prefixes)
		return true
	}

	return false
}

// report hands a skipped entry to the error handler.
func (w *groupWalk) report(path string, err error) {
	logger.Debug("skipped unreadable entry", "path", path, "error", err)

	if w.onError != nil {
		w.onError(&TraversalError{Path: path, Err: err})
	}
}

// rootFollowingSource resolves a symlinked walk root so that a base reached
// through a link is still listed; entries below it are not followed.
type rootFollowingSource struct {
	filesystem.DirSource
	root string
}

// Lstat stats the walk root through symlinks and everything else without.
func (s *rootFollowingSource) Lstat(name string) (os.FileInfo, error) {
	if name == s.root {
		return s.DirSource.Stat(name)
	}

	return s.DirSource.Lstat(name)
}
