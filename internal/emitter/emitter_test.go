package emitter

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

func iconSet() m.CompiledSet {
	return m.NewCompiledSet([]m.Symbol{
		{Identifier: "AssetsノHomeᐧsvg", Path: "assets/home.svg"},
		{Identifier: "AssetsノNestedDir", Path: "assets/nested_dir", IsDir: true},
		{Identifier: "AssetsノNestedDirノIconᐧsvg", Path: "assets/nested_dir/icon.svg"},
		{Identifier: "Assetsノ_11Testノ_11ᐧsvg", Path: "assets/11-test/11.svg"},
	})
}

func iconOptions() Options {
	return Options{
		Package:    "web",
		Type:       "Icons",
		Root:       "web/public",
		Extensions: []string{"svg", "png"},
		Prefix:     "assets",
	}
}

// typeCheck parses and type-checks a generated file on its own.
func typeCheck(t *testing.T, src []byte) (*ast.File, *types.Package) {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "icons_gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source:\n%s", src)

	pkg, err := new(types.Config).Check("web", fset, []*ast.File{file}, nil)
	require.NoError(t, err, "generated source:\n%s", src)

	return file, pkg
}

func stringTable(t *testing.T, file *ast.File, name string) []string {
	t.Helper()

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}

		for _, spec := range gen.Specs {
			value := spec.(*ast.ValueSpec)
			if value.Names[0].Name != name {
				continue
			}

			var out []string

			for _, elt := range value.Values[0].(*ast.CompositeLit).Elts {
				unquoted, err := strconv.Unquote(elt.(*ast.BasicLit).Value)
				require.NoError(t, err)

				out = append(out, unquoted)
			}

			return out
		}
	}

	t.Fatalf("table %s not found", name)

	return nil
}

func TestRender(t *testing.T) {
	t.Run("generates a compilable enum", func(t *testing.T) {
		src, err := Render(iconSet(), iconOptions())
		require.NoError(t, err)

		file, pkg := typeCheck(t, src)

		assert.Equal(t, "web", file.Name.Name)
		assert.True(t, strings.HasPrefix(string(src), Header+"\n"))
		assert.True(t, ast.IsGenerated(file))

		typ, ok := pkg.Scope().Lookup("Icons").(*types.TypeName)
		require.True(t, ok)
		assert.Equal(t, "int", typ.Type().Underlying().String())

		for i, symbol := range iconSet().Symbols() {
			obj, ok := pkg.Scope().Lookup("Icons" + string(symbol.Identifier)).(*types.Const)
			require.True(t, ok, "constant for %s", symbol.Identifier)
			assert.True(t, types.Identical(typ.Type(), obj.Type()))

			value, exact := constant.Int64Val(obj.Val())
			require.True(t, exact)
			assert.Equal(t, int64(i), value)
		}

		for _, name := range []string{"IconsValues", "ParseIcons"} {
			_, ok := pkg.Scope().Lookup(name).(*types.Func)
			assert.True(t, ok, name)
		}

		methods := types.NewMethodSet(typ.Type())
		for _, name := range []string{"Path", "String", "IsDir"} {
			assert.NotNil(t, methods.Lookup(pkg, name), name)
		}
	})

	t.Run("path table is in identifier order", func(t *testing.T) {
		src, err := Render(iconSet(), iconOptions())
		require.NoError(t, err)

		file, _ := typeCheck(t, src)

		assert.Equal(t, []string{
			"assets/home.svg",
			"assets/nested_dir",
			"assets/nested_dir/icon.svg",
			"assets/11-test/11.svg",
		}, stringTable(t, file, "iconsPaths"))
	})

	t.Run("records how the file was produced", func(t *testing.T) {
		src, err := Render(iconSet(), iconOptions())
		require.NoError(t, err)

		assert.Contains(t, string(src), `// pathenum generate --root "web/public" --ext "svg,png" --prefix "assets" --type Icons`)
		assert.Contains(t, string(src), "// assets/nested_dir/icon.svg")
	})

	t.Run("omits an empty prefix", func(t *testing.T) {
		opts := iconOptions()
		opts.Prefix = ""

		src, err := Render(iconSet(), opts)
		require.NoError(t, err)

		assert.NotContains(t, string(src), "--prefix")
	})

	t.Run("empty set still compiles", func(t *testing.T) {
		src, err := Render(m.CompiledSet{}, iconOptions())
		require.NoError(t, err)

		file, _ := typeCheck(t, src)
		assert.Empty(t, stringTable(t, file, "iconsPaths"))
	})

	t.Run("escapes unusual paths", func(t *testing.T) {
		set := m.NewCompiledSet([]m.Symbol{
			{Identifier: "Quote_ᐧsvg", Path: `quote".svg`},
			{Identifier: "New_lineᐧsvg", Path: "new\nline.svg"},
			{Identifier: "Caf_ᐧsvg", Path: "caf\xe9.svg"},
		})

		opts := iconOptions()
		opts.Root = "web/caf\xe9"

		src, err := Render(set, opts)
		require.NoError(t, err)

		file, _ := typeCheck(t, src)
		assert.Equal(t, []string{`quote".svg`, "new\nline.svg", "caf\xe9.svg"}, stringTable(t, file, "iconsPaths"))
		assert.Contains(t, string(src), "// caf\uFFFD.svg")
		assert.Contains(t, string(src), "enumerates the paths found under web/caf\uFFFD.")
	})

	t.Run("rejects a constant named like a helper", func(t *testing.T) {
		set := m.NewCompiledSet([]m.Symbol{
			{Identifier: "Values", Path: "values", IsDir: true},
			{Identifier: "ValuesノAᐧsvg", Path: "values/a.svg"},
		})

		_, err := Render(set, iconOptions())

		var reserved *ReservedNameError
		require.ErrorAs(t, err, &reserved)
		assert.Equal(t, "IconsValues", reserved.Name)
		assert.Equal(t, m.LogicalPath("values"), reserved.Path)
		assert.Contains(t, err.Error(), `"values"`)
	})

	t.Run("rejects a constant named like a lowercase table", func(t *testing.T) {
		opts := iconOptions()
		opts.Type = "icons"

		_, err := Render(m.NewCompiledSet([]m.Symbol{{Identifier: "Paths", Path: "paths"}}), opts)

		var reserved *ReservedNameError
		require.ErrorAs(t, err, &reserved)
		assert.Equal(t, "iconsPaths", reserved.Name)
	})

	t.Run("names that only resemble helpers still compile", func(t *testing.T) {
		set := m.NewCompiledSet([]m.Symbol{
			{Identifier: "ValuesノAᐧsvg", Path: "values/a.svg"},
			{Identifier: "ParseIcons", Path: "parse-icons"},
		})

		src, err := Render(set, iconOptions())
		require.NoError(t, err)

		_, pkg := typeCheck(t, src)
		assert.NotNil(t, pkg.Scope().Lookup("IconsValuesノAᐧsvg"))
	})

	t.Run("invalid package name fails to format", func(t *testing.T) {
		opts := iconOptions()
		opts.Package = "not a package"

		_, err := Render(iconSet(), opts)

		require.Error(t, err)
	})
}
