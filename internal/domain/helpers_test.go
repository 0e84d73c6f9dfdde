package domain

import (
	"io/fs"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"pathenum.dev/pkg/pathenum/internal/adapter"
	m "pathenum.dev/pkg/pathenum/internal/model"
)

// assetTree mirrors the fixture used throughout the scanner and workflow
// tests: three svg files at two depths, an empty-looking directory whose
// only file has a digit-leading name, and two files that never match svg.
var assetTree = []string{
	"arrow-left.svg",
	"home.svg",
	"11-test/11.svg",
	"nested_dir/icon.svg",
	"nested_dir/deep_dir/deep-icon.svg",
	"Cargo.toml",
	"notes.txt",
}

// memTree builds an in-memory tree. Names ending in "/" become empty
// directories, everything else a small file.
func memTree(t *testing.T, names ...string) billy.Filesystem {
	t.Helper()

	fsys := memfs.New()

	for _, name := range names {
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fsys.MkdirAll(adapter.TreeRoot+strings.TrimSuffix(name, "/"), 0o755))
			continue
		}

		require.NoError(t, util.WriteFile(fsys, adapter.TreeRoot+name, []byte("<svg/>"), 0o644))
	}

	return fsys
}

// failingTree wraps a TreeFS and refuses to list the given directories.
type failingTree struct {
	adapter.TreeFS
	denied []string
}

func (f failingTree) ReadDir(path string) ([]os.FileInfo, error) {
	if slices.Contains(f.denied, path) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}

	return f.TreeFS.ReadDir(path)
}

// listingTree serves fixed directory listings, including ones no real
// filesystem would produce.
type listingTree map[string][]os.FileInfo

func (l listingTree) ReadDir(path string) ([]os.FileInfo, error) {
	infos, ok := l[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return infos, nil
}

type fakeInfo struct {
	name string
	dir  bool
}

func (f fakeInfo) Name() string { return f.name }
func (f fakeInfo) Size() int64  { return 0 }
func (f fakeInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o755
	}

	return 0o644
}
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }

func dirInfo(name string) os.FileInfo  { return fakeInfo{name: name, dir: true} }
func fileInfo(name string) os.FileInfo { return fakeInfo{name: name} }

func entry(path string, isDir bool) m.Entry {
	return m.Entry{Path: m.LogicalPath(path), IsDir: isDir}
}

func identifiers(set m.CompiledSet) []m.Identifier {
	symbols := set.Symbols()
	idents := make([]m.Identifier, len(symbols))

	for i, symbol := range symbols {
		idents[i] = symbol.Identifier
	}

	return idents
}
