// Package filesystem provides the directory-entry sources a glob walk reads
// from: the local disk, an in-memory tree for tests, and remote hosts over SFTP.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kr/fs"
)

// DirSource lists one directory level at a time.
// It is the kr/fs FileSystem a fs.Walker steps through, plus the calls the
// glob engine needs to anchor patterns.
type DirSource interface {
	fs.FileSystem

	// Stat is like Lstat but follows a final symbolic link.
	// It is used for walk roots only.
	Stat(name string) (os.FileInfo, error)

	// Abs returns an absolute form of name for comparing and matching paths.
	Abs(name string) (string, error)
}

// LocalSource implements DirSource using the os package.
type LocalSource struct{}

// NewLocalSource creates a new LocalSource instance.
func NewLocalSource() *LocalSource {
	return &LocalSource{}
}

// Abs returns an absolute path resolved against the working directory.
func (s *LocalSource) Abs(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", name, err)
	}

	return abs, nil
}

// Join joins path elements with the OS separator.
func (s *LocalSource) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information without following a final symlink.
func (s *LocalSource) Lstat(name string) (os.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", name, err)
	}

	return info, nil
}

// ReadDir returns the entries of a directory sorted by name.
// Entries that vanish between the listing and their stat are left out.
func (s *LocalSource) ReadDir(dirname string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirname, err)
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// Stat returns file information.
func (s *LocalSource) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	return info, nil
}
