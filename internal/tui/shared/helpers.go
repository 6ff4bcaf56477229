package shared

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// ============================================================================
// Formatting Functions
// ============================================================================

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MiB")
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	return humanize.IBytes(uint64(bytes))
}

// FormatCount formats an entry count with its noun, e.g. "1 file", "3 directories".
func FormatCount(count int, dirs bool) string {
	noun := "files"

	switch {
	case dirs && count == 1:
		noun = "directory"
	case dirs:
		noun = "directories"
	case count == 1:
		noun = "file"
	}

	return humanize.Comma(int64(count)) + " " + noun
}

// FormatDuration formats duration into human-readable format (e.g., "2m 30s")
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// TruncatePath shortens path to at most width runes by eliding its start,
// which keeps the file name visible.
func TruncatePath(path string, width int) string {
	runes := []rune(path)
	if len(runes) <= width {
		return path
	}

	if width <= ProgressEllipsisLength {
		return string(runes[len(runes)-width:])
	}

	return "..." + string(runes[len(runes)-(width-ProgressEllipsisLength):])
}
