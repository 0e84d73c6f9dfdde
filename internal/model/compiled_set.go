package model

// CompiledSet is the ordered, collision-free result of one compilation.
// Symbols are sorted by ascending identifier and both identifiers and paths
// are unique. The zero value is an empty set.
type CompiledSet struct {
	symbols []Symbol
	byIdent map[Identifier]int
	byPath  map[LogicalPath]int
}

// NewCompiledSet indexes symbols that are already sorted and deduplicated.
func NewCompiledSet(symbols []Symbol) CompiledSet {
	set := CompiledSet{
		symbols: symbols,
		byIdent: make(map[Identifier]int, len(symbols)),
		byPath:  make(map[LogicalPath]int, len(symbols)),
	}

	for i, symbol := range symbols {
		set.byIdent[symbol.Identifier] = i
		set.byPath[symbol.Path] = i
	}

	return set
}

// Symbols returns a copy of the ordered symbols.
func (s CompiledSet) Symbols() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)

	return out
}

// Len returns the number of symbols.
func (s CompiledSet) Len() int {
	return len(s.symbols)
}

// Lookup returns the canonical path of an identifier.
func (s CompiledSet) Lookup(ident Identifier) (LogicalPath, bool) {
	i, ok := s.byIdent[ident]
	if !ok {
		return "", false
	}

	return s.symbols[i].Path, true
}

// Reverse returns the identifier that was synthesized for path.
func (s CompiledSet) Reverse(path LogicalPath) (Identifier, bool) {
	i, ok := s.byPath[path]
	if !ok {
		return "", false
	}

	return s.symbols[i].Identifier, true
}

// Files counts the file symbols.
func (s CompiledSet) Files() int {
	count := 0

	for _, symbol := range s.symbols {
		if !symbol.IsDir {
			count++
		}
	}

	return count
}

// Dirs counts the directory symbols.
func (s CompiledSet) Dirs() int {
	return len(s.symbols) - s.Files()
}
