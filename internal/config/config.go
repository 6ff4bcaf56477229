// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/charmbracelet/log"

	"github.com/joe/list-files/pkg/filesystem"
	"github.com/joe/list-files/pkg/globs"
)

// Configuration errors.
var (
	ErrEmptyRoot     = errors.New("root path is required")
	ErrNegativeDepth = errors.New("depth must not be negative")
	ErrRootNotDir    = errors.New("root path is not a directory")
)

// LogLevel is a charmbracelet/log level parsed from the command line.
type LogLevel log.Level

// String returns the level name.
func (l LogLevel) String() string {
	return log.Level(l).String()
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := log.ParseLevel(strings.ToLower(string(text)))
	if err != nil {
		return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error): %w", text, err)
	}

	*l = LogLevel(level)

	return nil
}

// Config holds the application configuration
type Config struct {
	Patterns          []string `arg:"positional" placeholder:"PATTERN" help:"Glob patterns to include (default **); prefix with ! to exclude"`
	Root              string   `arg:"-r,--root" default:"." help:"Directory to list: a local path or sftp://user@host[:port]/path"`
	Excludes          []string `arg:"-e,--exclude,separate" placeholder:"GLOB" help:"Glob to exclude; replaces the default excludes (repeatable)"`
	NoDefaultExcludes bool     `arg:"--no-default-excludes" help:"Do not skip .git, .DS_Store, target and node_modules"`
	Relative          bool     `arg:"--relative" help:"Match excludes against paths relative to the root instead of absolute paths"`
	Depth             int      `arg:"-d,--depth" help:"Maximum directory depth (0 = derived from the patterns)"`
	Dirs              bool     `arg:"--dirs" help:"List directories instead of files"`
	Sort              []string `arg:"--sort,separate" placeholder:"GLOB" help:"Order the output by the first matching glob (repeatable)"`
	EndWeighted       bool     `arg:"--end-weighted" help:"With --sort, rank by the last matching glob instead of the first"`
	LogLevel          LogLevel `arg:"--log-level" default:"warn" help:"Log level: debug|info|warn|error"`
	Progress          bool     `arg:"-p,--progress" help:"Show a live progress view on a terminal"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "List files and directories matching include and exclude glob patterns"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "list-files 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Root:     ".",
		LogLevel: LogLevel(log.WarnLevel),
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig validates a parsed config.
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, cfg.Depth)
	}

	for _, glob := range cfg.Sort {
		if err := globs.ValidatePattern(glob); err != nil {
			return nil, fmt.Errorf("invalid --sort glob: %w", err)
		}
	}

	if err := cfg.ValidateRoot(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateRoot checks that the root is a well-formed SFTP URL or an existing
// local directory. Remote roots are only checked once connected.
func (cfg *Config) ValidateRoot() error {
	if cfg.Root == "" {
		return ErrEmptyRoot
	}

	location, err := filesystem.ParsePath(cfg.Root)
	if err != nil {
		return err
	}

	if location.IsRemote {
		return nil
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return fmt.Errorf("cannot access root path: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, cfg.Root)
	}

	return nil
}

// ListOptions builds the glob listing options for a source.
func (cfg *Config) ListOptions(source filesystem.DirSource) *globs.ListOptions {
	opts := &globs.ListOptions{
		RelativeGlob: cfg.Relative,
		Depth:        cfg.Depth,
		Source:       source,
	}

	switch {
	case len(cfg.Excludes) > 0:
		opts.ExcludeGlobs = cfg.Excludes
	case cfg.NoDefaultExcludes:
		opts.ExcludeGlobs = []string{}
	}

	return opts
}
