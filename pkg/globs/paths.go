package globs

import (
	"path"
	"path/filepath"
	"strings"
)

// NormalizePath converts p to forward slashes and collapses redundant
// separators and "." / ".." segments. Two entries refer to the same file iff
// their normalized paths are equal.
func NormalizePath(p string) string {
	if p == "" {
		return "."
	}

	return path.Clean(filepath.ToSlash(p))
}

// isAbsPattern reports whether a pattern is anchored at a filesystem root.
func isAbsPattern(pattern string) bool {
	return path.IsAbs(pattern) || filepath.IsAbs(pattern)
}

// isAncestor reports whether dir is base itself or lies below it, comparing
// whole segments so that /a/b is not treated as an ancestor of /a/bc.
func isAncestor(base, dir string) bool {
	switch {
	case base == dir:
		return true
	case base == "/":
		return strings.HasPrefix(dir, "/")
	case base == ".":
		return !path.IsAbs(dir) && dir != ".." && !strings.HasPrefix(dir, "../")
	default:
		return strings.HasPrefix(dir, base+"/")
	}
}

// relativeTo returns dir relative to base, assuming isAncestor(base, dir).
// Returns "." when they are equal.
func relativeTo(base, dir string) string {
	switch {
	case base == dir:
		return "."
	case base == ".":
		return dir
	case base == "/":
		return strings.TrimPrefix(dir, "/")
	default:
		return strings.TrimPrefix(dir, base+"/")
	}
}

// joinRelative joins a group-relative path onto base.
func joinRelative(base, rel string) string {
	if rel == "." || rel == "" {
		return base
	}

	return path.Join(base, rel)
}

// rootRelative returns abs relative to absRoot. Paths outside the root come
// back with leading "../" segments.
func rootRelative(absRoot, abs string) string {
	if isAncestor(absRoot, abs) {
		return relativeTo(absRoot, abs)
	}

	rel, err := filepath.Rel(filepath.FromSlash(absRoot), filepath.FromSlash(abs))
	if err != nil {
		return abs
	}

	return filepath.ToSlash(rel)
}

// hasSegmentPrefix reports whether p equals prefix or continues it with a
// separator.
func hasSegmentPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// segmentDepth counts the segments of a relative path: "a" is 1, "a/b" is 2.
func segmentDepth(rel string) int {
	if rel == "." || rel == "" {
		return 0
	}

	return strings.Count(rel, "/") + 1
}

// escapeMeta escapes glob metacharacters so a literal directory path can be
// prepended to a pattern.
func escapeMeta(literal string) string {
	if !strings.ContainsAny(literal, `*?[]{}\`) {
		return literal
	}

	var b strings.Builder
	for _, r := range literal {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
