package globs

import "iter"

// Dir is a directory produced by a listing.
type Dir struct {
	Path string
}

// DirIter is a lazy, deduplicated sequence of directories.
// Group base directories are never part of it.
type DirIter struct {
	inner stream[Dir]
}

// IterDirs is IterFiles for directories: the same grouping, pruning and
// exclusion, with includes matched against directory paths.
func IterDirs(root string, includes []string, opts *ListOptions) (*DirIter, error) {
	p, err := newPlan(root, includes, opts)
	if err != nil {
		return nil, err
	}

	parts := make([]stream[Dir], 0, len(p.groups))
	for i := range p.groups {
		group := &p.groups[i]
		parts = append(parts, &dirStream{
			walk:    p.walk(group),
			include: group.include,
		})
	}

	return &DirIter{
		inner: newDedupStream[Dir](&chainStream[Dir]{parts: parts}, func(d Dir) string { return d.Path }),
	}, nil
}

// ListDirs collects IterDirs into a slice, in iteration order.
func ListDirs(root string, includes []string, opts *ListOptions) ([]Dir, error) {
	it, err := IterDirs(root, includes, opts)
	if err != nil {
		return nil, err
	}

	var dirs []Dir
	for dir := range it.All() {
		dirs = append(dirs, dir)
	}

	return dirs, nil
}

// All returns the remaining directories as a range-over-func sequence.
func (it *DirIter) All() iter.Seq[Dir] {
	return func(yield func(Dir) bool) {
		for {
			dir, ok := it.Next()
			if !ok || !yield(dir) {
				return
			}
		}
	}
}

// Next advances to the next directory.
func (it *DirIter) Next() (Dir, bool) {
	return it.inner.next()
}

// dirStream filters one group's walk down to matching directories.
// Excluded directories never reach it since the walk prunes them.
type dirStream struct {
	walk    *groupWalk
	include Matcher
}

// next implements stream.
func (s *dirStream) next() (Dir, bool) {
	for {
		entry, ok := s.walk.next()
		if !ok {
			return Dir{}, false
		}

		if !entry.info.IsDir() || !s.include.Match(entry.rel) {
			continue
		}

		return Dir{Path: entry.path}, true
	}
}
