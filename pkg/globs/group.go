package globs

import (
	"path/filepath"
	"slices"
	"strings"
)

// Group is a set of patterns walked together from one base directory.
// Patterns and Prefixes are relative to Base; no Prefixes means the whole
// base is traversed.
type Group struct {
	Base     string
	Patterns []string
	Prefixes []string

	absBase string
}

// BuildGroups resolves the base of every include pattern against root and
// merges patterns whose bases are equal or nested, resolving relative paths
// against the working directory.
func BuildGroups(root string, patterns []string) []Group {
	return buildGroups(root, patterns, localAbs)
}

// localAbs resolves p against the working directory, falling back to p.
func localAbs(p string) string {
	abs, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return NormalizePath(p)
	}

	return NormalizePath(abs)
}

// resolvedPattern is an include pattern split into its base and the rest.
type resolvedPattern struct {
	base    string
	absBase string
	pattern string
}

// resolvePattern anchors a pattern: absolute patterns at their own literal
// base, relative ones at root joined with their literal base.
func resolvePattern(root string, pattern string, abs func(string) string) resolvedPattern {
	slashed := filepath.ToSlash(pattern)

	if isAbsPattern(pattern) {
		base, rest := LiteralBase(slashed)
		base = NormalizePath(base)

		return resolvedPattern{base: base, absBase: abs(base), pattern: rest}
	}

	for strings.HasPrefix(slashed, "./") {
		slashed = strings.TrimPrefix(slashed, "./")
	}

	// Patterns written from the caller's directory ("docs/*.md" when listing
	// "docs") are made relative to the root.
	if root != "." {
		slashed = strings.TrimPrefix(slashed, root+"/")
	}

	base, rest := LiteralBase(slashed)
	base = NormalizePath(joinRelative(root, base))

	return resolvedPattern{base: base, absBase: abs(base), pattern: rest}
}

// buildGroups folds the patterns, in order, into groups.
func buildGroups(root string, patterns []string, abs func(string) string) []Group {
	root = NormalizePath(root)

	var groups []Group

	for _, pattern := range patterns {
		resolved := resolvePattern(root, pattern, abs)

		if !mergeInto(&groups, resolved) {
			groups = append(groups, Group{
				Base:     resolved.base,
				Patterns: []string{resolved.pattern},
				absBase:  resolved.absBase,
			})
		}
	}

	for i := range groups {
		groups[i].Prefixes = groupPrefixes(groups[i].Patterns)
		logger.Debug("glob group", "base", groups[i].Base, "patterns", groups[i].Patterns, "prefixes", groups[i].Prefixes)
	}

	return groups
}

// mergeInto adds resolved to the first group whose base is related to its
// base, re-anchoring that group when the new base is shallower.
func mergeInto(groups *[]Group, resolved resolvedPattern) bool {
	for i := range *groups {
		group := &(*groups)[i]

		switch {
		case isAncestor(group.absBase, resolved.absBase):
			diff := relativeTo(group.absBase, resolved.absBase)
			group.Patterns = append(group.Patterns, prependDir(diff, resolved.pattern))

			return true

		case isAncestor(resolved.absBase, group.absBase):
			reanchor(group, resolved.base, resolved.absBase)
			group.Patterns = append(group.Patterns, resolved.pattern)
			*groups = absorbNested(*groups, i)

			return true
		}
	}

	return false
}

// reanchor moves group up to a shallower base, rewriting its patterns.
func reanchor(group *Group, base, absBase string) {
	diff := relativeTo(absBase, group.absBase)

	for i, pattern := range group.Patterns {
		group.Patterns[i] = prependDir(diff, pattern)
	}

	group.Base = base
	group.absBase = absBase
}

// absorbNested merges every group after index into groups[index] when it now
// lies under that group's base.
func absorbNested(groups []Group, index int) []Group {
	anchor := &groups[index]
	kept := groups[:index+1]

	for _, other := range groups[index+1:] {
		if !isAncestor(anchor.absBase, other.absBase) {
			kept = append(kept, other)
			continue
		}

		diff := relativeTo(anchor.absBase, other.absBase)
		for _, pattern := range other.Patterns {
			anchor.Patterns = append(anchor.Patterns, prependDir(diff, pattern))
		}
	}

	return kept
}

// prependDir joins a literal directory in front of a pattern.
func prependDir(dir, pattern string) string {
	if dir == "." || dir == "" {
		return pattern
	}

	return escapeMeta(dir) + "/" + pattern
}

// groupPrefixes unions the literal prefixes of every pattern. A single
// pattern without prefixes forces a full traversal.
func groupPrefixes(patterns []string) []string {
	var prefixes []string

	for _, pattern := range patterns {
		own := LiteralPrefixes(pattern)
		if len(own) == 0 {
			return nil
		}

		prefixes = append(prefixes, own...)
	}

	slices.Sort(prefixes)

	return slices.Compact(prefixes)
}

// allowsDir reports whether a directory, relative to the group base, can
// still lead to a match.
func (g *Group) allowsDir(rel string) bool {
	if len(g.Prefixes) == 0 || rel == "." {
		return true
	}

	for _, prefix := range g.Prefixes {
		if hasSegmentPrefix(rel, prefix) || hasSegmentPrefix(prefix, rel) {
			return true
		}
	}

	return false
}
