package domain

import (
	"errors"
	"fmt"
	"strings"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// ErrStale is returned by a generate check when a generated file does not
// match what the current tree would produce.
var ErrStale = errors.New("generated file is out of date")

// CollisionError reports distinct logical paths that synthesize to the same
// identifier. Paths is sorted and holds at least two entries.
type CollisionError struct {
	Identifier m.Identifier
	Paths      []m.LogicalPath
}

func (e *CollisionError) Error() string {
	quoted := make([]string, len(e.Paths))
	for i, p := range e.Paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}

	var list string
	if len(quoted) <= 2 {
		list = strings.Join(quoted, " and ")
	} else {
		list = strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
	}

	return fmt.Sprintf("identifier %q is synthesized from both %s; rename one of them", e.Identifier, list)
}

// ConfigError reports a malformed or unknown configuration option. It is
// raised before any directory is scanned.
type ConfigError struct {
	// Set names the symbol set, empty for global options.
	Set    string
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Set == "" {
		return fmt.Sprintf("invalid configuration option %q: %v", e.Option, e.Err)
	}

	return fmt.Sprintf("set %q: invalid configuration option %q: %v", e.Set, e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
