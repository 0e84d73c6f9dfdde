// Package emitter renders a CompiledSet as Go source: a closed integer enum
// with a static table mapping every constant back to its canonical path.
package emitter

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// Header marks generated files; tooling recognizes the exact wording.
const Header = "// Code generated by pathenum. DO NOT EDIT."

// Options describes the generated file.
type Options struct {
	Package    string
	Type       string
	Root       m.Path
	Extensions []string
	Prefix     m.LogicalPath
}

type templateData struct {
	Options
	Header  string
	Table   string
	Symbols []m.Symbol
}

var goTemplate = template.Must(template.New("go").Funcs(template.FuncMap{
	"join":  strings.Join,
	"quote": func(v any) string { return fmt.Sprintf("%q", v) },
	"comment": func(v any) string {
		// go/scanner rejects invalid UTF-8 even inside comments.
		return strings.ToValidUTF8(strings.NewReplacer("\n", " ", "\r", " ").Replace(fmt.Sprint(v)), "\uFFFD")
	},
}).Parse(`{{.Header}}
// pathenum generate --root {{quote .Root}} --ext {{quote (join .Extensions ",")}}{{if .Prefix}} --prefix {{quote .Prefix}}{{end}} --type {{.Type}}

package {{.Package}}

// {{.Type}} enumerates the paths found under {{comment .Root}}.
type {{.Type}} int

const (
{{- range $i, $s := .Symbols}}
	{{$.Type}}{{$s.Identifier}}{{if eq $i 0}} {{$.Type}} = iota{{end}} // {{comment $s.Path}}
{{- end}}
)

var {{.Table}}Paths = [...]string{
{{- range .Symbols}}
	{{quote .Path}},
{{- end}}
}

var {{.Table}}Dirs = [...]bool{
{{- range .Symbols}}
	{{.IsDir}},
{{- end}}
}

var {{.Table}}ByPath = func() map[string]{{.Type}} {
	index := make(map[string]{{.Type}}, len({{.Table}}Paths))
	for i, path := range {{.Table}}Paths {
		index[path] = {{.Type}}(i)
	}

	return index
}()

// Path returns the canonical path of p, or "" if p is not a known value.
func (p {{.Type}}) Path() string {
	if p < 0 || int(p) >= len({{.Table}}Paths) {
		return ""
	}

	return {{.Table}}Paths[p]
}

// String returns the canonical path of p.
func (p {{.Type}}) String() string {
	return p.Path()
}

// IsDir reports whether p names a directory.
func (p {{.Type}}) IsDir() bool {
	if p < 0 || int(p) >= len({{.Table}}Dirs) {
		return false
	}

	return {{.Table}}Dirs[p]
}

// {{.Type}}Values returns every value in identifier order.
func {{.Type}}Values() []{{.Type}} {
	values := make([]{{.Type}}, len({{.Table}}Paths))
	for i := range values {
		values[i] = {{.Type}}(i)
	}

	return values
}

// Parse{{.Type}} returns the value whose canonical path is path.
func Parse{{.Type}}(path string) ({{.Type}}, bool) {
	p, ok := {{.Table}}ByPath[path]

	return p, ok
}
`))

// ReservedNameError reports a path whose constant would redeclare one of the
// helper declarations emitted next to the enum.
type ReservedNameError struct {
	Name string
	Path m.LogicalPath
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("constant %s for %q clashes with a generated declaration; rename the path or choose another type name", e.Name, e.Path)
}

// Render produces gofmt'd Go source for set.
func Render(set m.CompiledSet, opts Options) ([]byte, error) {
	data := templateData{
		Options: opts,
		Header:  Header,
		Table:   lowerFirst(opts.Type),
		Symbols: set.Symbols(),
	}

	if err := checkReserved(data); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err := goTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Type, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", opts.Type, err)
	}

	return src, nil
}

// checkReserved rejects constants named like a package-level helper.
func checkReserved(data templateData) error {
	reserved := map[string]bool{
		data.Type:             true,
		data.Type + "Values":  true,
		"Parse" + data.Type:   true,
		data.Table + "Paths":  true,
		data.Table + "Dirs":   true,
		data.Table + "ByPath": true,
	}

	var errs []error

	for _, s := range data.Symbols {
		name := data.Type + string(s.Identifier)
		if reserved[name] {
			errs = append(errs, &ReservedNameError{Name: name, Path: s.Path})
		}
	}

	return errors.Join(errs...)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
