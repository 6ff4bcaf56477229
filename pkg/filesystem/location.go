package filesystem

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSSHPort is used when an sftp:// URL names no port.
const DefaultSSHPort = 22

// sftpScheme prefixes remote roots.
const sftpScheme = "sftp://"

// Location errors, matched by the error enricher.
var (
	ErrInvalidURL  = errors.New("invalid sftp URL")
	ErrMissingUser = errors.New("sftp URL must include a username (sftp://user@host/path)")
	ErrMissingHost = errors.New("sftp URL must include a host")
)

// Location is a listing root, either a local path or a directory on an SFTP host.
type Location struct {
	IsRemote bool

	// Path is the local path, or the remote path for SFTP locations.
	Path string

	Host string
	Port int
	User string
}

// ParsePath parses a root given on the command line.
//
// SFTP roots use sftp://user@host[:port]/path. A single leading slash is
// relative to the remote home directory and a double one is absolute:
//   - sftp://joe@myserver.com/data     → "data" under joe's home
//   - sftp://joe@myserver.com//srv/www → "/srv/www"
//   - sftp://joe@myserver.com:2222     → the home directory itself
//
// Anything else is a local path.
func ParsePath(root string) (*Location, error) {
	if !strings.HasPrefix(root, sftpScheme) {
		return &Location{Path: root}, nil
	}

	u, err := url.Parse(root) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, ErrMissingUser
	}

	if u.Hostname() == "" {
		return nil, ErrMissingHost
	}

	port := DefaultSSHPort
	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid port %q", ErrInvalidURL, portStr)
		}
	}

	return &Location{
		IsRemote: true,
		Path:     remotePath(u.Path),
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
	}, nil
}

// String renders the location the way ParsePath accepts it.
func (l *Location) String() string {
	if !l.IsRemote {
		return l.Path
	}

	p := "/" + l.Path
	if l.Path == "." {
		p = ""
	}

	return fmt.Sprintf("%s%s@%s:%d%s", sftpScheme, l.User, l.Host, l.Port, p)
}

// remotePath maps a URL path onto the remote filesystem.
func remotePath(urlPath string) string {
	switch {
	case urlPath == "" || urlPath == "/":
		return "."
	case strings.HasPrefix(urlPath, "//"):
		return urlPath[1:]
	default:
		return strings.TrimPrefix(urlPath, "/")
	}
}
