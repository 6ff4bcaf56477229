package filesystem

import (
	"fmt"
	"os"
	"path"
	"slices"
	"sync"
	"time"
)

// MockSource is an in-memory DirSource for testing.
// It records every ReadDir call so tests can assert which directories a walk
// opened, and can be told to fail reads of specific directories.
type MockSource struct {
	mu       sync.RWMutex
	entries  map[string]*mockEntry
	failures map[string]error
	reads    map[string]int
}

// mockEntry represents a file or directory in the mock tree.
type mockEntry struct {
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

// mockFileInfo implements os.FileInfo for mock entries.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

func (fi *mockFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return os.ModeDir | fi.perm
	}

	return fi.perm
}

// NewMockSource creates an empty in-memory tree containing only "/".
func NewMockSource() *MockSource {
	return &MockSource{
		entries: map[string]*mockEntry{
			"/": {isDir: true, perm: 0o755, modTime: time.Now()},
		},
		failures: make(map[string]error),
		reads:    make(map[string]int),
	}
}

// Abs returns name anchored at "/".
func (m *MockSource) Abs(name string) (string, error) {
	return path.Join("/", name), nil
}

// AddDir adds a directory and any missing parents.
func (m *MockSource) AddDir(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mkdirAllLocked(path.Clean(name))
}

// AddFile adds a file of the given content and any missing parents.
func (m *MockSource) AddFile(name string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	m.mkdirAllLocked(path.Dir(name))
	m.entries[name] = &mockEntry{
		size:    int64(len(content)),
		modTime: time.Now(),
		perm:    0o644,
	}
}

// FailReadDir makes every ReadDir of dirname return err.
func (m *MockSource) FailReadDir(dirname string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures[path.Clean(dirname)] = err
}

// Join joins path elements with "/".
func (m *MockSource) Join(elem ...string) string {
	return path.Join(elem...)
}

// Lstat returns information about an entry. The mock has no symlinks.
func (m *MockSource) Lstat(name string) (os.FileInfo, error) {
	return m.Stat(name)
}

// ReadDir returns the children of dirname sorted by name.
func (m *MockSource) ReadDir(dirname string) ([]os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dirname = path.Clean(dirname)
	m.reads[dirname]++

	if err, failing := m.failures[dirname]; failing {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirname, err)
	}

	entry, exists := m.entries[dirname]
	if !exists {
		return nil, &os.PathError{Op: "readdir", Path: dirname, Err: os.ErrNotExist}
	}

	if !entry.isDir {
		return nil, fmt.Errorf("failed to read directory %s: not a directory", dirname)
	}

	var infos []os.FileInfo
	for name, child := range m.entries {
		if name == dirname || path.Dir(name) != dirname {
			continue
		}

		infos = append(infos, child.info(path.Base(name)))
	}

	slices.SortFunc(infos, func(a, b os.FileInfo) int {
		switch {
		case a.Name() < b.Name():
			return -1
		case a.Name() > b.Name():
			return 1
		default:
			return 0
		}
	})

	return infos, nil
}

// ReadDirCalls returns how many times dirname was listed.
func (m *MockSource) ReadDirCalls(dirname string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.reads[path.Clean(dirname)]
}

// ReadDirs returns every directory listed so far, sorted.
func (m *MockSource) ReadDirs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dirs := make([]string, 0, len(m.reads))
	for dir := range m.reads {
		dirs = append(dirs, dir)
	}

	slices.Sort(dirs)

	return dirs
}

// Stat returns information about an entry.
func (m *MockSource) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)

	entry, exists := m.entries[name]
	if !exists {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
	}

	return entry.info(path.Base(name)), nil
}

// mkdirAllLocked creates a directory and its parents; the lock must be held.
func (m *MockSource) mkdirAllLocked(name string) {
	if name == "." || name == "/" {
		if _, exists := m.entries[name]; !exists {
			m.entries[name] = &mockEntry{isDir: true, perm: 0o755, modTime: time.Now()}
		}

		return
	}

	m.mkdirAllLocked(path.Dir(name))

	if _, exists := m.entries[name]; !exists {
		m.entries[name] = &mockEntry{isDir: true, perm: 0o755, modTime: time.Now()}
	}
}

// info builds the os.FileInfo for an entry.
func (e *mockEntry) info(name string) *mockFileInfo {
	return &mockFileInfo{
		name:    name,
		size:    e.size,
		modTime: e.modTime,
		isDir:   e.isDir,
		perm:    e.perm,
	}
}
