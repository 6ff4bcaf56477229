package filesystem

import (
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/pkg/sftp"
)

// SFTPSource implements DirSource over an SFTP session.
// *sftp.Client already provides the kr/fs walking calls; this adds Stat,
// Abs and error context.
type SFTPSource struct {
	client *sftp.Client

	wdOnce sync.Once
	wd     string
	wdErr  error
}

// NewSFTPSource creates a source reading from an established SFTP client.
func NewSFTPSource(client *sftp.Client) *SFTPSource {
	return &SFTPSource{client: client}
}

// Abs anchors a remote path at the session's working directory.
func (s *SFTPSource) Abs(name string) (string, error) {
	if path.IsAbs(name) {
		return path.Clean(name), nil
	}

	s.wdOnce.Do(func() {
		s.wd, s.wdErr = s.client.Getwd()
	})

	if s.wdErr != nil {
		return "", fmt.Errorf("failed to resolve remote working directory: %w", s.wdErr)
	}

	return path.Join(s.wd, name), nil
}

// Join joins remote path elements. SFTP paths always use "/".
func (s *SFTPSource) Join(elem ...string) string {
	return s.client.Join(elem...)
}

// Lstat returns remote file information without following a final symlink.
func (s *SFTPSource) Lstat(name string) (os.FileInfo, error) {
	info, err := s.client.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote %s: %w", name, err)
	}

	return info, nil
}

// ReadDir lists a remote directory.
func (s *SFTPSource) ReadDir(dirname string) ([]os.FileInfo, error) {
	infos, err := s.client.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dirname, err)
	}

	return infos, nil
}

// Stat returns remote file information.
func (s *SFTPSource) Stat(name string) (os.FileInfo, error) {
	info, err := s.client.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote %s: %w", name, err)
	}

	return info, nil
}
