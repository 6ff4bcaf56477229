package globs

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LiteralBase splits a pattern into its wildcard-free leading directory and the
// remaining pattern. A pattern without wildcards splits into its parent
// directory and its file component.
//
//	LiteralBase("/data/shared/**/*.go") // "/data/shared", "**/*.go"
//	LiteralBase("src/main.go")          // "src", "main.go"
//	LiteralBase("**")                   // ".", "**"
func LiteralBase(pattern string) (base, rest string) {
	return doublestar.SplitPattern(filepath.ToSlash(pattern))
}

// LiteralPrefixes returns the literal directory prefixes a match of pattern
// must live under, expanding brace alternation in leading directory segments.
// Returns nil when no prefix can be proven, meaning the traversal cannot be
// pruned for this pattern.
//
//	LiteralPrefixes("assets/images/*.png")   // ["assets/images"]
//	LiteralPrefixes("{src,lib}/**/*.rs")     // ["lib", "src"]
//	LiteralPrefixes("*.md")                  // nil
func LiteralPrefixes(pattern string) []string {
	segments := directorySegments(pattern)
	if len(segments) == 0 {
		return nil
	}

	prefixes := []string{""}

	for _, segment := range segments {
		alternatives, ok := literalAlternatives(segment)
		if !ok {
			break
		}

		next := make([]string, 0, len(prefixes)*len(alternatives))
		for _, prefix := range prefixes {
			for _, alt := range alternatives {
				if prefix == "" {
					next = append(next, alt)
				} else {
					next = append(next, prefix+"/"+alt)
				}
			}
		}

		prefixes = next
	}

	if len(prefixes) == 1 && prefixes[0] == "" {
		return nil
	}

	slices.Sort(prefixes)

	return slices.Compact(prefixes)
}

// directorySegments returns every segment of pattern except the last one,
// ignoring empty and "." segments.
func directorySegments(pattern string) []string {
	clean := strings.TrimLeft(strings.TrimPrefix(filepath.ToSlash(pattern), "./"), "/")

	var segments []string
	for _, s := range strings.Split(clean, "/") {
		if s != "" && s != "." {
			segments = append(segments, s)
		}
	}

	if len(segments) <= 1 {
		return nil
	}

	return segments[:len(segments)-1]
}

// literalAlternatives returns the concrete directory names a segment can
// stand for. ok is false once the segment can match names that cannot be
// enumerated.
func literalAlternatives(segment string) ([]string, bool) {
	if segment == ".." || hasWildcard(segment) {
		return nil, false
	}

	if !strings.ContainsAny(segment, "{}") {
		return []string{segment}, true
	}

	expanded, ok := ExpandBraces(segment)
	if !ok {
		return nil, false
	}

	for _, alt := range expanded {
		if alt == "" || alt == ".." || hasWildcard(alt) || strings.ContainsAny(alt, "{}") {
			return nil, false
		}
	}

	return expanded, true
}

// hasWildcard reports whether a segment contains a metacharacter other than
// brace alternation. Escapes count, since the escaped text is not a plain name.
func hasWildcard(segment string) bool {
	return strings.ContainsAny(segment, `*?[\`)
}
