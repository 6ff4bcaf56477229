package globs

import (
	"slices"
	"strings"
)

// negationPrefix marks an include pattern as an exclude.
const negationPrefix = "!"

// Classify splits the raw include list into positive patterns and negated ones,
// folding the negations into the exclude list.
//
// The returned includes default to [MatchAll] when nothing positive remains.
// The returned excludes are the caller's excludes followed by the negations;
// when the caller gave none (nil) and there are no negations, the defaults apply.
func Classify(includes, excludes []string) (inc, exc []string) {
	var negated []string

	for _, pattern := range includes {
		if rest, ok := strings.CutPrefix(pattern, negationPrefix); ok {
			negated = append(negated, rest)
			continue
		}

		inc = append(inc, pattern)
	}

	if len(inc) == 0 {
		inc = []string{MatchAll}
	}

	if excludes == nil && len(negated) == 0 {
		return inc, slices.Clone(DefaultExcludeGlobs)
	}

	exc = make([]string, 0, len(excludes)+len(negated))
	exc = append(exc, excludes...)
	exc = append(exc, negated...)

	return inc, exc
}
