package globs

import (
	"io"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Package logger, replaced by the CLI through SetLogger
var logger = log.New(io.Discard)

// SetLogger routes the package's debug output (group layout, pruning
// decisions, skipped entries) to l. A nil logger silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}

	logger = l
}
