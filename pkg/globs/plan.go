package globs

import (
	"fmt"

	"github.com/joe/list-files/pkg/filesystem"
)

// plan is everything an iterator needs, built before any filesystem access.
type plan struct {
	groups  []compiledGroup
	source  filesystem.DirSource
	exclude *excluder
	onError ErrorHandler
}

// compiledGroup is a Group with its include matcher and walk depth.
type compiledGroup struct {
	Group

	include Matcher
	depth   int
}

// newPlan classifies the patterns, compiles the matchers and lays out the
// groups. Only pattern syntax errors are returned.
func newPlan(root string, includes []string, opts *ListOptions) (*plan, error) {
	if opts == nil {
		opts = &ListOptions{}
	}

	inc, exc := Classify(includes, opts.ExcludeGlobs)

	for _, pattern := range inc {
		if err := ValidatePattern(pattern); err != nil {
			return nil, err
		}
	}

	excludeMatcher, err := CompileMatcher(exc)
	if err != nil {
		return nil, err
	}

	source := opts.source()
	abs := func(p string) string {
		resolved, err := source.Abs(p)
		if err != nil {
			return NormalizePath(p)
		}

		return NormalizePath(resolved)
	}

	root = NormalizePath(root)
	groups := buildGroups(root, inc, abs)

	compiled := make([]compiledGroup, 0, len(groups))
	for _, group := range groups {
		include, err := CompileMatcher(group.Patterns)
		if err != nil {
			return nil, fmt.Errorf("failed to compile group %s: %w", group.Base, err)
		}

		compiled = append(compiled, compiledGroup{
			Group:   group,
			include: include,
			depth:   GroupDepth(group.Patterns, opts.Depth),
		})
	}

	return &plan{
		groups: compiled,
		source: source,
		exclude: &excluder{
			matcher:  excludeMatcher,
			relative: opts.RelativeGlob,
			absRoot:  abs(root),
		},
		onError: opts.OnError,
	}, nil
}

// walk prepares the lazy walk of one group.
func (p *plan) walk(group *compiledGroup) *groupWalk {
	return newGroupWalk(&group.Group, group.depth, p.source, p.exclude, p.onError)
}
