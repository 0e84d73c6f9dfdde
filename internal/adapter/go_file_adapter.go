package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

const generatedFilePerm os.FileMode = 0o644

// GoFileAdapter reads and writes generated Go source files so the workflow
// can compare and replace them without knowing where they live.
type GoFileAdapter interface {
	// ReadGoFile returns the current contents of path. A missing file is not
	// an error; it reports exists=false.
	ReadGoFile(path m.Path) (content []byte, exists bool, err error)

	// WriteGoFile replaces path with content, creating parent directories.
	WriteGoFile(path m.Path, content []byte) error
}

// LocalGoFileAdapter provides a GoFileAdapter backed by a billy filesystem.
type LocalGoFileAdapter struct {
	fs billy.Filesystem
}

// hostFS is a billy.Filesystem over the unrooted host filesystem.
// osfs.ChrootOS lacks Chroot and Root on its own.
type hostFS struct {
	osfs.ChrootOS
}

var _ billy.Filesystem = (*hostFS)(nil)

func (h *hostFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (h *hostFS) Root() string {
	return "/"
}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter over the host
// filesystem. Relative paths resolve against the working directory.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return NewGoFileAdapter(&hostFS{})
}

// NewGoFileAdapter wraps an arbitrary billy filesystem, mainly for tests.
func NewGoFileAdapter(fsys billy.Filesystem) *LocalGoFileAdapter {
	return &LocalGoFileAdapter{fs: fsys}
}

// ReadGoFile loads a generated file.
func (a *LocalGoFileAdapter) ReadGoFile(path m.Path) ([]byte, bool, error) {
	content, err := util.ReadFile(a.fs, string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	return content, true, nil
}

// WriteGoFile writes a generated file.
func (a *LocalGoFileAdapter) WriteGoFile(path m.Path, content []byte) error {
	if dir := filepath.Dir(string(path)); dir != "." && dir != "" {
		if err := a.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := util.WriteFile(a.fs, string(path), content, generatedFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
