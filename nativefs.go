package filediff

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// NativeFS opens paths the same way os.Open does. Fixture paths in tests
// are usually relative to the package directory, so they must resolve
// against the working directory rather than against a fixed root.
type NativeFS struct {
	osfs.ChrootOS
}

// NewNativeFS returns the filesystem a Comparator uses by default.
func NewNativeFS() *NativeFS {
	return &NativeFS{}
}

// Chroot returns a filesystem confined to dir. A relative dir is taken
// relative to the working directory at the time of the call.
//
//nolint:ireturn // required by billy.Chroot.
func (n *NativeFS) Chroot(dir string) (billy.Filesystem, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("filediff: chroot %q: %w", dir, err)
	}
	return osfs.New(abs), nil
}

// Root reports the filesystem root; paths are not rewritten against it.
func (n *NativeFS) Root() string {
	return string(filepath.Separator)
}
