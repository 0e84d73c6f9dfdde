package domain

import (
	"context"
	"iter"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"pathenum.dev/pkg/pathenum/internal/adapter"
	m "pathenum.dev/pkg/pathenum/internal/model"
)

// ScanRequest parameterizes one walk of a tree.
type ScanRequest struct {
	// Extensions lists the allowed file extensions without the leading dot.
	Extensions []string
	// Prefix is prepended to every logical path.
	Prefix m.LogicalPath
}

// Scanner walks a TreeFS and yields an Entry for every directory and for
// every file whose name carries an allowed extension.
//
// A directory that cannot be listed is still yielded by its parent, but
// contributes no children: the error is logged and the rest of the tree is
// still scanned.
type Scanner struct{}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns a lazy sequence of entries. Every iteration walks the tree
// afresh with its own SeenSet, so the sequence can be ranged over repeatedly.
// No ordering is guaranteed.
func (s *Scanner) Scan(tree adapter.TreeFS, req ScanRequest) iter.Seq[m.Entry] {
	return func(yield func(m.Entry) bool) {
		seen := NewSeenSet()
		if s.walk(tree, adapter.TreeRoot, req.Prefix, req.Extensions, seen, yield) {
			slog.Debug("scanned tree", "prefix", req.Prefix, "entries", seen.Len())
		}
	}
}

func (s *Scanner) walk(
	tree adapter.TreeFS,
	dir string,
	logical m.LogicalPath,
	extensions []string,
	seen *SeenSet,
	yield func(m.Entry) bool,
) bool {
	infos, ok := readDir(tree, dir)
	if !ok {
		return true
	}

	for _, info := range infos {
		name := info.Name()
		child := logical.Join(name)

		if info.IsDir() {
			if seen.Add(child) && !yield(m.Entry{Path: child, IsDir: true}) {
				return false
			}

			// Recursion is never guarded by the seen set, only emission is.
			if !s.walk(tree, path.Join(dir, name), child, extensions, seen, yield) {
				return false
			}

			continue
		}

		if !hasAllowedExtension(name, extensions) {
			continue
		}

		if seen.Add(child) && !yield(m.Entry{Path: child, IsDir: false}) {
			return false
		}
	}

	return true
}

// ScanParallel walks sibling subdirectories concurrently with at most workers
// goroutines and returns the collected entries in no particular order. The
// only error it returns is the context's.
func (s *Scanner) ScanParallel(ctx context.Context, tree adapter.TreeFS, req ScanRequest, workers int) ([]m.Entry, error) {
	if workers < 1 {
		workers = 1
	}

	seen := NewSeenSet()

	var (
		mu      sync.Mutex
		entries []m.Entry
	)

	emit := func(entry m.Entry) {
		if !seen.Add(entry.Path) {
			return
		}

		mu.Lock()
		entries = append(entries, entry)
		mu.Unlock()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	var visit func(dir string, logical m.LogicalPath) error

	visit = func(dir string, logical m.LogicalPath) error {
		if err := groupCtx.Err(); err != nil {
			return err
		}

		infos, ok := readDir(tree, dir)
		if !ok {
			return nil
		}

		for _, info := range infos {
			name := info.Name()
			child := logical.Join(name)

			if !info.IsDir() {
				if hasAllowedExtension(name, req.Extensions) {
					emit(m.Entry{Path: child, IsDir: false})
				}

				continue
			}

			emit(m.Entry{Path: child, IsDir: true})

			childDir := path.Join(dir, name)
			// Fall back to walking inline when every worker is busy.
			if !group.TryGo(func() error { return visit(childDir, child) }) {
				if err := visit(childDir, child); err != nil {
					return err
				}
			}
		}

		return nil
	}

	group.Go(func() error { return visit(adapter.TreeRoot, req.Prefix) })

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("scanned tree", "prefix", req.Prefix, "entries", seen.Len(), "workers", workers)

	return entries, nil
}

func readDir(tree adapter.TreeFS, dir string) ([]os.FileInfo, bool) {
	infos, err := tree.ReadDir(dir)
	if err != nil {
		slog.Warn("skipping unreadable directory", "path", dir, "error", err)
		return nil, false
	}

	return infos, true
}

func hasAllowedExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, "."+ext) {
			return true
		}
	}

	return false
}
