// Package globs enumerates files and directories matching include/exclude glob
// patterns.
//
// Patterns may be relative to the listed root or absolute, pointing anywhere
// on the source; a leading "!" turns an include into an exclude. Patterns are
// grouped by the wildcard-free directory they start from, each group is walked
// once with subtrees pruned by literal prefixes, excludes and depth, and the
// results are chained and deduplicated:
//
//	it, err := globs.IterFiles("project", []string{"**/*.go", "!**/vendor/**"}, nil)
//	if err != nil {
//	    return err // invalid glob syntax
//	}
//	for file := range it.All() {
//	    fmt.Println(file.Path)
//	}
//
// A "*" never matches across "/"; "**" does. Entries that cannot be read are
// skipped; set ListOptions.OnError to observe them.
package globs

import (
	"iter"
	"time"
)

// File is a regular file produced by a listing.
type File struct {
	// Path is the normalized path, rooted like the group base it was found
	// under (relative roots give relative paths).
	Path string

	Size    int64
	ModTime time.Time
}

// FileIter is a lazy, deduplicated sequence of files.
// It performs I/O only as Next is called and is not safe for concurrent use.
type FileIter struct {
	inner stream[File]
}

// IterFiles returns the files under root matching includes.
//
// A nil or empty includes list matches everything ("**"). A *PatternError is
// returned when any include or exclude glob is invalid; no other error is
// possible, and nothing is read before the first call to Next.
func IterFiles(root string, includes []string, opts *ListOptions) (*FileIter, error) {
	p, err := newPlan(root, includes, opts)
	if err != nil {
		return nil, err
	}

	parts := make([]stream[File], 0, len(p.groups))
	for i := range p.groups {
		group := &p.groups[i]
		parts = append(parts, &fileStream{
			walk:    p.walk(group),
			include: group.include,
			exclude: p.exclude,
		})
	}

	return &FileIter{
		inner: newDedupStream[File](&chainStream[File]{parts: parts}, func(f File) string { return f.Path }),
	}, nil
}

// ListFiles collects IterFiles into a slice, in iteration order.
func ListFiles(root string, includes []string, opts *ListOptions) ([]File, error) {
	it, err := IterFiles(root, includes, opts)
	if err != nil {
		return nil, err
	}

	var files []File
	for file := range it.All() {
		files = append(files, file)
	}

	return files, nil
}

// All returns the remaining files as a range-over-func sequence.
func (it *FileIter) All() iter.Seq[File] {
	return func(yield func(File) bool) {
		for {
			file, ok := it.Next()
			if !ok || !yield(file) {
				return
			}
		}
	}
}

// Next advances to the next file.
// Returns (File{}, false) once the sequence is exhausted.
func (it *FileIter) Next() (File, bool) {
	return it.inner.next()
}

// fileStream filters one group's walk down to matching regular files.
type fileStream struct {
	walk    *groupWalk
	include Matcher
	exclude *excluder
}

// next implements stream.
func (s *fileStream) next() (File, bool) {
	for {
		entry, ok := s.walk.next()
		if !ok {
			return File{}, false
		}

		if !entry.info.Mode().IsRegular() {
			continue
		}

		if s.exclude.excludes(entry.abs) || !s.include.Match(entry.rel) {
			continue
		}

		return File{
			Path:    entry.path,
			Size:    entry.info.Size(),
			ModTime: entry.info.ModTime(),
		}, true
	}
}
