package domain

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

const (
	// DefaultRoot is scanned when no root is configured.
	DefaultRoot = "."
	// DefaultExtension is allowed when no extension list is configured.
	DefaultExtension = "svg"
)

// CompileArgs holds the resolved parameters of one compilation.
type CompileArgs struct {
	Root       m.Path
	Extensions []string
	Prefix     m.LogicalPath
	Dot        m.DotPolicy
	Casing     m.CasingMode
	// Parallel is the number of directory walkers; values below 2 walk
	// sequentially.
	Parallel int
}

// ListArgs describes one set to display.
type ListArgs struct {
	Name string
	CompileArgs
}

// GenerateArgs describes one Go file to generate.
type GenerateArgs struct {
	// Type is the generated Go type name.
	Type    string
	Package string
	Output  m.Path
	// Check compares instead of writing.
	Check bool
	CompileArgs
}

// NewCompileArgs validates the scan options of cfg and fills in defaults.
func NewCompileArgs(cfg m.SetConfig) (CompileArgs, error) {
	extensions, err := ParseExtensions(cfg.Ext)
	if err != nil {
		return CompileArgs{}, &ConfigError{Set: cfg.Name, Option: "ext", Err: err}
	}

	dot, err := m.ParseDotPolicy(strings.TrimSpace(cfg.Dot))
	if err != nil {
		return CompileArgs{}, &ConfigError{Set: cfg.Name, Option: "dot", Err: err}
	}

	casing, err := m.ParseCasingMode(strings.TrimSpace(cfg.Casing))
	if err != nil {
		return CompileArgs{}, &ConfigError{Set: cfg.Name, Option: "casing", Err: err}
	}

	root := strings.TrimSpace(cfg.Root)
	if root == "" {
		root = DefaultRoot
	}

	return CompileArgs{
		Root:       m.Path(root),
		Extensions: extensions,
		Prefix:     m.NewLogicalPath(cfg.Prefix),
		Dot:        dot,
		Casing:     casing,
	}, nil
}

// NewGenerateArgs validates a full set definition, including the Go names
// used by the emitter.
func NewGenerateArgs(cfg m.SetConfig) (GenerateArgs, error) {
	compileArgs, err := NewCompileArgs(cfg)
	if err != nil {
		return GenerateArgs{}, err
	}

	typeName := strings.TrimSpace(cfg.Name)
	if !token.IsIdentifier(typeName) || !token.IsExported(typeName) {
		return GenerateArgs{}, &ConfigError{
			Set:    cfg.Name,
			Option: "name",
			Err:    fmt.Errorf("%q is not an exported Go identifier", typeName),
		}
	}

	pkg := strings.TrimSpace(cfg.Package)
	if !token.IsIdentifier(pkg) {
		return GenerateArgs{}, &ConfigError{
			Set:    cfg.Name,
			Option: "package",
			Err:    fmt.Errorf("%q is not a valid Go package name", pkg),
		}
	}

	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = DefaultOutput(typeName)
	}

	return GenerateArgs{
		Type:        typeName,
		Package:     pkg,
		Output:      m.Path(output),
		CompileArgs: compileArgs,
	}, nil
}

// ParseExtensions splits a comma-separated extension list. Blanks are dropped
// and a leading dot is tolerated. The empty string selects DefaultExtension.
func ParseExtensions(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{DefaultExtension}, nil
	}

	var extensions []string

	for _, part := range strings.Split(raw, ",") {
		ext := strings.TrimPrefix(strings.TrimSpace(part), ".")
		if ext == "" {
			continue
		}

		if strings.ContainsAny(ext, `/\`) {
			return nil, fmt.Errorf("extension %q contains a path separator", ext)
		}

		extensions = append(extensions, ext)
	}

	if len(extensions) == 0 {
		return nil, fmt.Errorf("no extensions in %q", raw)
	}

	return extensions, nil
}

// DefaultOutput derives the generated file name from the type name, e.g.
// PublicPaths becomes public_paths_gen.go.
func DefaultOutput(typeName string) string {
	var b strings.Builder

	prev := rune(-1)

	for i, r := range typeName {
		next, _ := utf8.DecodeRuneInString(typeName[i+utf8.RuneLen(r):])
		if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsLower(next)) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
		prev = r
	}

	return b.String() + "_gen.go"
}
