package shared_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/internal/tui/shared"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.FormatBytes(500)).Should(Equal("500 B"))
	g.Expect(shared.FormatBytes(1024)).Should(Equal("1.0 KiB"))
	g.Expect(shared.FormatBytes(1024 * 1024)).Should(Equal("1.0 MiB"))
	g.Expect(shared.FormatBytes(-1)).Should(Equal("0 B"))
}

func TestFormatCount(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.FormatCount(1, false)).Should(Equal("1 file"))
	g.Expect(shared.FormatCount(0, false)).Should(Equal("0 files"))
	g.Expect(shared.FormatCount(1234, false)).Should(Equal("1,234 files"))
	g.Expect(shared.FormatCount(1, true)).Should(Equal("1 directory"))
	g.Expect(shared.FormatCount(2, true)).Should(Equal("2 directories"))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.FormatDuration(250 * time.Millisecond)).Should(Equal("250ms"))
	g.Expect(shared.FormatDuration(30 * time.Second)).Should(Equal("30s"))
	g.Expect(shared.FormatDuration(2*time.Minute + 30*time.Second)).Should(Equal("2m 30s"))
	g.Expect(shared.FormatDuration(time.Hour + time.Minute + time.Second)).Should(Equal("1h 1m 1s"))
}

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		width int
		want  string
	}{
		{name: "fits", path: "/proj/a.go", width: 20, want: "/proj/a.go"},
		{name: "exact", path: "/proj/a.go", width: 10, want: "/proj/a.go"},
		{name: "elides start", path: "/proj/src/sub/file.go", width: 12, want: "...b/file.go"},
		{name: "tiny width", path: "/proj/a.go", width: 2, want: "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(shared.TruncatePath(tt.path, tt.width)).To(Equal(tt.want))
		})
	}
}
