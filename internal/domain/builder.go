package domain

import (
	"errors"
	"iter"
	"slices"
	"strings"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// Builder turns scanner entries into a CompiledSet.
type Builder struct {
	synthesizer *Synthesizer
}

// NewBuilder creates a Builder using the given synthesizer.
func NewBuilder(synthesizer *Synthesizer) *Builder {
	return &Builder{synthesizer: synthesizer}
}

// Build deduplicates entries by logical path (first occurrence wins),
// synthesizes an identifier for each and sorts the result by identifier.
//
// When distinct paths share an identifier Build fails with one
// *CollisionError per identifier, joined in identifier order. The result does
// not depend on the order entries arrive in.
func (b *Builder) Build(entries iter.Seq[m.Entry]) (m.CompiledSet, error) {
	seen := NewSeenSet()
	byIdent := make(map[m.Identifier][]m.LogicalPath)

	var symbols []m.Symbol

	for entry := range entries {
		if !seen.Add(entry.Path) {
			continue
		}

		ident := b.synthesizer.Synthesize(entry.Path)
		if owners, ok := byIdent[ident]; ok {
			byIdent[ident] = append(owners, entry.Path)
			continue
		}

		byIdent[ident] = []m.LogicalPath{entry.Path}
		symbols = append(symbols, m.Symbol{Identifier: ident, Path: entry.Path, IsDir: entry.IsDir})
	}

	if err := collisions(byIdent); err != nil {
		return m.CompiledSet{}, err
	}

	slices.SortFunc(symbols, func(a, b m.Symbol) int {
		return strings.Compare(string(a.Identifier), string(b.Identifier))
	})

	return m.NewCompiledSet(symbols), nil
}

func collisions(byIdent map[m.Identifier][]m.LogicalPath) error {
	var errs []*CollisionError

	for ident, paths := range byIdent {
		if len(paths) < 2 {
			continue
		}

		sorted := slices.Clone(paths)
		slices.Sort(sorted)
		errs = append(errs, &CollisionError{Identifier: ident, Paths: sorted})
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}

	slices.SortFunc(errs, func(a, b *CollisionError) int {
		return strings.Compare(string(a.Identifier), string(b.Identifier))
	})

	joined := make([]error, len(errs))
	for i, err := range errs {
		joined[i] = err
	}

	return errors.Join(joined...)
}
