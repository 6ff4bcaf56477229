//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package globs_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/pkg/globs"
)

func TestMatcherSeparatorSensitivity(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	direct, err := globs.CompileMatcher([]string{"*.txt"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(direct.Match("a.txt")).To(BeTrue())
	g.Expect(direct.Match("sub/a.txt")).To(BeFalse())

	recursive, err := globs.CompileMatcher([]string{"**/*.txt"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(recursive.Match("a.txt")).To(BeTrue())
	g.Expect(recursive.Match("sub/a.txt")).To(BeTrue())
	g.Expect(recursive.Match("sub/deeper/a.txt")).To(BeTrue())
}

func TestMatcherAnyPattern(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, err := globs.CompileMatcher([]string{"*.go", "docs/{api,guide}/*.md"})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(m.Match("main.go")).To(BeTrue())
	g.Expect(m.Match("docs/api/index.md")).To(BeTrue())
	g.Expect(m.Match("docs/other/index.md")).To(BeFalse())
}

func TestMatcherEmptyMatchesNothing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, err := globs.CompileMatcher(nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(m.Match("anything")).To(BeFalse())
	g.Expect(m.Match("")).To(BeFalse())
}

func TestMatcherInvalidPattern(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"[abc", "{a,b", "src/[a"} {
		t.Run(pattern, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, err := globs.CompileMatcher([]string{"*.go", pattern})
			g.Expect(err).To(HaveOccurred())
			g.Expect(errors.Is(err, globs.ErrBadPattern)).To(BeTrue())

			var patternErr *globs.PatternError
			g.Expect(errors.As(err, &patternErr)).To(BeTrue())
			g.Expect(patternErr.Pattern).To(Equal(pattern))
		})
	}
}

func TestGroupDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		explicit int
		want     int
	}{
		{name: "one wildcard level", patterns: []string{"*"}, want: 1},
		{name: "two levels", patterns: []string{"*/*"}, want: 2},
		{name: "recursive", patterns: []string{"**"}, want: globs.MaxDepth},
		{name: "recursive anywhere wins", patterns: []string{"*.go", "a/**/*.md"}, want: globs.MaxDepth},
		{name: "deepest pattern", patterns: []string{"a/b", "c/d/e/f"}, want: 4},
		{name: "no patterns", patterns: nil, want: 1},
		{name: "explicit overrides recursion", patterns: []string{"**"}, explicit: 3, want: 3},
		{name: "explicit overrides structure", patterns: []string{"*"}, explicit: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(globs.GroupDepth(tt.patterns, tt.explicit)).To(Equal(tt.want))
		})
	}
}
