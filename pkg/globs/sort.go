package globs

import (
	"cmp"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SortByGlobs returns a copy of items ordered by which glob matched each one.
//
// An item's rank is the index of the first glob matching key(item), or the last
// one when endWeighted is set; items no glob matches go last. Equal ranks keep
// their input order. A leading "./" on the key is ignored for matching.
func SortByGlobs[T any](items []T, key func(T) string, globs []string, endWeighted bool) ([]T, error) {
	for _, glob := range globs {
		if err := ValidatePattern(glob); err != nil {
			return nil, err
		}
	}

	type ranked struct {
		item T
		rank int
	}

	sorted := make([]ranked, len(items))
	for i, item := range items {
		sorted[i] = ranked{item: item, rank: globRank(key(item), globs, endWeighted)}
	}

	slices.SortStableFunc(sorted, func(a, b ranked) int {
		return cmp.Compare(a.rank, b.rank)
	})

	out := make([]T, len(sorted))
	for i, r := range sorted {
		out[i] = r.item
	}

	return out, nil
}

// globRank finds the matching glob index for name, math.MaxInt when none matches.
func globRank(name string, globs []string, endWeighted bool) int {
	name = strings.TrimPrefix(filepath.ToSlash(name), "./")
	rank := math.MaxInt

	for i, glob := range globs {
		if !doublestar.MatchUnvalidated(glob, name) {
			continue
		}

		if !endWeighted {
			return i
		}

		rank = i
	}

	return rank
}
