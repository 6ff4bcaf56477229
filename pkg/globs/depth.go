package globs

import "strings"

// GroupDepth returns how many levels below a group base the walk descends.
//
// An explicit depth (> 0) wins. Otherwise any "**" pattern walks up to
// MaxDepth, and the rest need one level per path segment. The result is at
// least 1.
func GroupDepth(patterns []string, explicit int) int {
	if explicit > 0 {
		return explicit
	}

	for _, pattern := range patterns {
		if strings.Contains(pattern, "**") {
			return MaxDepth
		}
	}

	depth := 1
	for _, pattern := range patterns {
		depth = max(depth, strings.Count(pattern, "/")+1)
	}

	return min(depth, MaxDepth)
}
