// Package model defines the data structures shared by the scanner, the
// identifier synthesizer and the emitters.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a host file system path.
type Path string

// LogicalPath is a `/`-separated path relative to a scan root, optionally
// preceded by a caller supplied prefix. It never starts or ends with `/`.
type LogicalPath string

// NewLogicalPath normalizes a host path into a LogicalPath: platform
// separators become `/` and surrounding slashes are trimmed.
func NewLogicalPath(raw string) LogicalPath {
	return LogicalPath(strings.Trim(filepath.ToSlash(raw), "/"))
}

// Join appends name as a new trailing segment.
func (p LogicalPath) Join(name string) LogicalPath {
	child := NewLogicalPath(name)
	if p == "" {
		return child
	}

	if child == "" {
		return p
	}

	return p + "/" + child
}

// Segments splits the path on `/`.
func (p LogicalPath) Segments() []string {
	return strings.Split(string(p), "/")
}

func (p LogicalPath) String() string {
	return string(p)
}
