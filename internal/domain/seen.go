package domain

import (
	"sync"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// SeenSet records the logical paths already emitted during one compilation.
// It is safe for concurrent use so parallel walkers can share it.
type SeenSet struct {
	mu    sync.Mutex
	paths map[m.LogicalPath]struct{}
}

// NewSeenSet returns an empty set.
func NewSeenSet() *SeenSet {
	return &SeenSet{paths: make(map[m.LogicalPath]struct{})}
}

// Add records path and reports whether it was not present before.
func (s *SeenSet) Add(path m.LogicalPath) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.paths[path]; ok {
		return false
	}

	s.paths[path] = struct{}{}

	return true
}

// Len returns the number of recorded paths.
func (s *SeenSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.paths)
}
