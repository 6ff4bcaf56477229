//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package globs

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
)

func TestIsAncestor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base string
		dir  string
		want bool
	}{
		{base: "/a", dir: "/a", want: true},
		{base: "/a", dir: "/a/b", want: true},
		{base: "/a", dir: "/ab", want: false},
		{base: "/a/b", dir: "/a", want: false},
		{base: "/", dir: "/x/y", want: true},
		{base: ".", dir: "src", want: true},
		{base: ".", dir: "../src", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.base+" "+tt.dir, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(isAncestor(tt.base, tt.dir)).To(Equal(tt.want))
		})
	}
}

func TestRootRelative(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(rootRelative("/proj", "/proj/src/a.rs")).To(Equal("src/a.rs"))
	g.Expect(rootRelative("/proj", "/proj")).To(Equal("."))
	g.Expect(rootRelative("/proj", "/shared/x.go")).To(Equal("../shared/x.go"))
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(NormalizePath("")).To(Equal("."))
	g.Expect(NormalizePath("a//b/./c/../d")).To(Equal("a/b/d"))
	g.Expect(NormalizePath("./src/")).To(Equal("src"))
	g.Expect(NormalizePath("/x/../y")).To(Equal("/y"))
}

func TestPrependDirEscapesMeta(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(prependDir(".", "*.go")).To(Equal("*.go"))
	g.Expect(prependDir("a/b", "*.go")).To(Equal("a/b/*.go"))
	g.Expect(prependDir("v[1]", "*.go")).To(Equal(`v\[1\]/*.go`))
}

func TestGroupAllowsDir(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	group := &Group{Prefixes: []string{"docs/api", "src"}}

	g.Expect(group.allowsDir("docs")).To(BeTrue())
	g.Expect(group.allowsDir("docs/api")).To(BeTrue())
	g.Expect(group.allowsDir("docs/api/v1")).To(BeTrue())
	g.Expect(group.allowsDir("docs/guide")).To(BeFalse())
	g.Expect(group.allowsDir("src/deep/er")).To(BeTrue())
	g.Expect(group.allowsDir("srcs")).To(BeFalse())

	open := &Group{}
	g.Expect(open.allowsDir("anything/at/all")).To(BeTrue())
}
