package filesystem

import (
	"fmt"
)

// CreateSource opens the DirSource a root lives on.
// Returns (source, rootPath, closer, error).
//   - source: the DirSource to walk
//   - rootPath: the root to use with the source (stripped of any URL prefix)
//   - closer: closes the SFTP connection; a no-op for local roots
func CreateSource(root string) (DirSource, string, func(), error) {
	location, err := ParsePath(root)
	if err != nil {
		return nil, "", nil, err
	}

	if !location.IsRemote {
		return NewLocalSource(), location.Path, func() {}, nil
	}

	conn, err := Connect(location.Host, location.Port, location.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s: %w", location, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPSource(conn.Client()), location.Path, closer, nil
}
