// Package adapter contains the filesystem adapters used by the pathenum domain.
package adapter

import (
	"os"

	"github.com/go-git/go-billy/v5/osfs"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// TreeRoot is the directory name that addresses the scan root inside a TreeFS.
const TreeRoot = "/"

// TreeFS is the read-only view of a directory tree that the scanner walks.
// Paths are `/`-separated and relative to TreeRoot. Listings must not follow
// symlinks. Any billy.Filesystem satisfies it.
type TreeFS interface {
	ReadDir(path string) ([]os.FileInfo, error)
}

// TreeFSAdapter opens scan roots so the domain layer never touches `os`
// directly and can be tested against in-memory trees.
type TreeFSAdapter interface {
	// OpenTree returns a TreeFS rooted at root. Opening never fails; an
	// unreadable root surfaces as a failing ReadDir.
	OpenTree(root m.Path) TreeFS
}

// LocalTreeFSAdapter opens trees on the local disk through go-billy's osfs.
type LocalTreeFSAdapter struct{}

// NewLocalTreeFSAdapter constructs a LocalTreeFSAdapter.
func NewLocalTreeFSAdapter() *LocalTreeFSAdapter {
	return &LocalTreeFSAdapter{}
}

// OpenTree chroots an osfs at root.
//
//nolint:ireturn // callers only need the listing capability.
func (a *LocalTreeFSAdapter) OpenTree(root m.Path) TreeFS {
	base := string(root)
	if base == "" {
		base = "."
	}

	return osfs.New(base)
}
