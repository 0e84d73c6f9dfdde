package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogicalPath(t *testing.T) {
	tests := map[string]LogicalPath{
		"":              "",
		"/":             "",
		"assets":        "assets",
		"/assets/":      "assets",
		"assets/icons/": "assets/icons",
	}

	for raw, want := range tests {
		assert.Equal(t, want, NewLogicalPath(raw), raw)
	}
}

func TestLogicalPath_Join(t *testing.T) {
	assert.Equal(t, LogicalPath("home.svg"), LogicalPath("").Join("home.svg"))
	assert.Equal(t, LogicalPath("assets/home.svg"), LogicalPath("assets").Join("home.svg"))
	assert.Equal(t, LogicalPath("assets"), LogicalPath("assets").Join(""))
}

func TestLogicalPath_Segments(t *testing.T) {
	assert.Equal(t, []string{"assets", "nested_dir", "icon.svg"}, LogicalPath("assets/nested_dir/icon.svg").Segments())
	assert.Equal(t, []string{""}, LogicalPath("").Segments())
}

func TestCompiledSet(t *testing.T) {
	set := NewCompiledSet([]Symbol{
		{Identifier: "AssetsノHomeᐧsvg", Path: "assets/home.svg"},
		{Identifier: "AssetsノNestedDir", Path: "assets/nested_dir", IsDir: true},
		{Identifier: "AssetsノNestedDirノIconᐧsvg", Path: "assets/nested_dir/icon.svg"},
	})

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, 2, set.Files())
	assert.Equal(t, 1, set.Dirs())

	path, ok := set.Lookup("AssetsノNestedDir")
	require.True(t, ok)
	assert.Equal(t, LogicalPath("assets/nested_dir"), path)

	ident, ok := set.Reverse("assets/home.svg")
	require.True(t, ok)
	assert.Equal(t, Identifier("AssetsノHomeᐧsvg"), ident)

	_, ok = set.Lookup("Missing")
	assert.False(t, ok)

	_, ok = set.Reverse("missing.svg")
	assert.False(t, ok)

	symbols := set.Symbols()
	symbols[0].Path = "changed"

	path, _ = set.Lookup("AssetsノHomeᐧsvg")
	assert.Equal(t, LogicalPath("assets/home.svg"), path, "Symbols returns a copy")
}

func TestCompiledSet_ZeroValue(t *testing.T) {
	var set CompiledSet

	assert.Zero(t, set.Len())
	assert.Empty(t, set.Symbols())

	_, ok := set.Lookup("Anything")
	assert.False(t, ok)
}

func TestParseDotPolicy(t *testing.T) {
	for raw, want := range map[string]DotPolicy{"": DotMarker, "marker": DotMarker, "separator": DotSeparator} {
		got, err := ParseDotPolicy(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDotPolicy("Marker")
	assert.ErrorContains(t, err, `unknown dot policy "Marker"`)
}

func TestParseCasingMode(t *testing.T) {
	for raw, want := range map[string]CasingMode{"": CasingUnicode, "unicode": CasingUnicode, "ascii": CasingASCII} {
		got, err := ParseCasingMode(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCasingMode("title")
	assert.ErrorContains(t, err, `unknown casing mode "title"`)
}
