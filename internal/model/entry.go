package model

// Entry is a single scanner result, created before identifier synthesis and
// deduplication.
type Entry struct {
	Path  LogicalPath
	IsDir bool
}

// Identifier is a synthesized symbolic name. It always starts with a letter
// or underscore and only contains letters, digits and underscores.
type Identifier string

func (i Identifier) String() string {
	return string(i)
}

// Symbol is one row of a CompiledSet.
type Symbol struct {
	Identifier Identifier  `yaml:"identifier"`
	Path       LogicalPath `yaml:"path"`
	IsDir      bool        `yaml:"dir"`
}
