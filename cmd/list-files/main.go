// Package main is the entry point for the list-files application.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/list-files/internal/config"
	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/internal/tui"
	"github.com/joe/list-files/internal/tui/shared"
	pkgerrors "github.com/joe/list-files/pkg/errors"
	"github.com/joe/list-files/pkg/globs"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, os.Stdout, os.Stderr, showProgress(cfg))

	stop()
	os.Exit(code)
}

// newLogger writes leveled logs to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "list-files",
	})
}

// reportError prints err with its category suggestions.
func reportError(w io.Writer, err error) {
	enriched := pkgerrors.NewEnricher().Enrich(err, "")

	fmt.Fprintln(w, shared.RenderError("Error: "+enriched.Error()))

	if suggestions := pkgerrors.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintln(w, suggestions)
	}
}

// run lists per cfg, writing one path per line to stdout. It returns the
// process exit code.
func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, progress bool) int {
	level := log.Level(cfg.LogLevel)
	if progress && level > log.DebugLevel {
		// Skips are counted in the progress view; warnings would tear it.
		level = log.ErrorLevel
	}

	logger := newLogger(stderr, level)
	log.SetDefault(logger)
	globs.SetLogger(logger)

	engine, err := listing.NewEngine(cfg.Root, cfg.Patterns)
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	defer engine.Close()

	engine.Options = cfg.ListOptions(engine.Source)
	engine.Dirs = cfg.Dirs
	engine.SortGlobs = cfg.Sort
	engine.EndWeighted = cfg.EndWeighted
	engine.SetLogger(logger)

	out := bufio.NewWriter(stdout)
	visit := func(entry listing.Entry) error {
		_, err := fmt.Fprintln(out, entry.Path)
		return err
	}

	var result *listing.Result
	if progress {
		result, err = tui.Run(ctx, engine, visit, tea.WithOutput(stderr))
	} else {
		result, err = engine.Run(ctx, visit)
	}

	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}

	if err != nil {
		reportError(stderr, err)
		return 1
	}

	logger.Debug("done", "count", result.Count, "skipped", result.Skipped, "duration", result.Duration)

	return 0
}

// showProgress reports whether the progress view can be drawn: it is asked
// for, stderr is a terminal, and stdout is not one (paths would tear it).
func showProgress(cfg *config.Config) bool {
	if !cfg.Progress {
		return false
	}

	return term.IsTerminal(int(os.Stderr.Fd())) && !term.IsTerminal(int(os.Stdout.Fd()))
}
