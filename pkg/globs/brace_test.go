//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package globs_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/pkg/globs"
)

func TestExpandBraces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		segment string
		want    []string
		wantOK  bool
	}{
		{name: "no braces", segment: "plain", want: nil, wantOK: false},
		{name: "simple alternation", segment: "{src,lib}", want: []string{"src", "lib"}, wantOK: true},
		{name: "prefix and suffix", segment: "file.{go,md}", want: []string{"file.go", "file.md"}, wantOK: true},
		{
			name:    "two groups vary left slowest",
			segment: "v{1,2}-{a,b}",
			want:    []string{"v1-a", "v1-b", "v2-a", "v2-b"},
			wantOK:  true,
		},
		{name: "empty alternative", segment: "a{,b}", want: []string{"a", "ab"}, wantOK: true},
		{name: "nested braces stay literal", segment: "{a,{b,c}}", want: []string{"a", "{b,c}"}, wantOK: true},
		{name: "unbalanced", segment: "{a,b", want: nil, wantOK: false},
		{name: "escaped braces", segment: `\{a,b\}`, want: nil, wantOK: false},
		{name: "single alternative", segment: "{only}", want: []string{"only"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			got, ok := globs.ExpandBraces(tt.segment)
			g.Expect(ok).To(Equal(tt.wantOK))
			g.Expect(got).To(Equal(tt.want))
		})
	}
}
