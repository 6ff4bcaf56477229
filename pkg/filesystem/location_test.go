//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/pkg/filesystem"
)

func TestParsePathLocal(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	location, err := filesystem.ParsePath("/local/path")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(location.IsRemote).To(BeFalse())
	g.Expect(location.Path).To(Equal("/local/path"))
	g.Expect(location.String()).To(Equal("/local/path"))
}

//nolint:funlen // Table-driven test with many SFTP URL parsing cases
func TestParsePathSFTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantUser string
		wantHost string
		wantPort int
		wantPath string
	}{
		{
			name:     "basic SFTP URL",
			input:    "sftp://user@host/path",
			wantUser: "user",
			wantHost: "host",
			wantPort: filesystem.DefaultSSHPort,
			wantPath: "path",
		},
		{
			name:     "custom port",
			input:    "sftp://admin@server.com:2222/home/data",
			wantUser: "admin",
			wantHost: "server.com",
			wantPort: 2222,
			wantPath: "home/data",
		},
		{
			name:     "absolute remote path",
			input:    "sftp://joe@myserver.com//srv/www",
			wantUser: "joe",
			wantHost: "myserver.com",
			wantPort: filesystem.DefaultSSHPort,
			wantPath: "/srv/www",
		},
		{
			name:     "home directory",
			input:    "sftp://joe@myserver.com",
			wantUser: "joe",
			wantHost: "myserver.com",
			wantPort: filesystem.DefaultSSHPort,
			wantPath: ".",
		},
		{
			name:    "missing username",
			input:   "sftp://host/path",
			wantErr: filesystem.ErrMissingUser,
		},
		{
			name:    "missing host",
			input:   "sftp://user@/path",
			wantErr: filesystem.ErrMissingHost,
		},
		{
			name:    "bad port",
			input:   "sftp://user@host:ssh/path",
			wantErr: filesystem.ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			location, err := filesystem.ParsePath(tt.input)

			if tt.wantErr != nil {
				g.Expect(err).To(MatchError(tt.wantErr))
				return
			}

			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(location.IsRemote).To(BeTrue())
			g.Expect(location.User).To(Equal(tt.wantUser))
			g.Expect(location.Host).To(Equal(tt.wantHost))
			g.Expect(location.Port).To(Equal(tt.wantPort))
			g.Expect(location.Path).To(Equal(tt.wantPath))
		})
	}
}

func TestLocationStringRoundTrips(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"sftp://user@host:22/path",
		"sftp://joe@myserver.com:2222//srv/www",
		"sftp://joe@myserver.com:22",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			location, err := filesystem.ParsePath(input)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(location.String()).To(Equal(input))
		})
	}
}

func TestCreateSourceLocal(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source, root, closer, err := filesystem.CreateSource("some/dir")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(source).To(BeAssignableToTypeOf(&filesystem.LocalSource{}))
	g.Expect(root).To(Equal("some/dir"))
	g.Expect(closer).NotTo(BeNil())
	closer()
}

func TestCreateSourceBadURL(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, _, err := filesystem.CreateSource("sftp://nouser/path")
	g.Expect(err).To(MatchError(filesystem.ErrMissingUser))
}
