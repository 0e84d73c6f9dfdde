package domain

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

func TestSynthesizer_Synthesize(t *testing.T) {
	tests := []struct {
		name   string
		path   m.LogicalPath
		dot    m.DotPolicy
		casing m.CasingMode
		want   m.Identifier
	}{
		{name: "extension is kept as a word", path: "arrow-left.svg", want: "ArrowLeftᐧsvg"},
		{name: "extension as separator", path: "arrow-left.svg", dot: m.DotSeparator, want: "ArrowLeftSvg"},
		{name: "directory marker", path: "nested_dir/icon.svg", want: "NestedDirノIconᐧsvg"},
		{name: "deep path", path: "nested_dir/deep_dir/deep-icon.svg", want: "NestedDirノDeepDirノDeepIconᐧsvg"},
		{name: "directory alone", path: "nested_dir", want: "NestedDir"},
		{name: "digit-leading segments", path: "11-test/11.svg", want: "_11Testノ_11ᐧsvg"},
		{name: "prefix segment", path: "assets/home.svg", want: "AssetsノHomeᐧsvg"},
		{name: "manifest file", path: "Cargo.toml", want: "Cargoᐧtoml"},
		{name: "manifest file as separator", path: "debug/debugger/Cargo.toml", dot: m.DotSeparator, want: "DebugノDebuggerノCargoToml"},
		{name: "underscore splits words", path: "client/leptos_ui/Cargo.toml", dot: m.DotSeparator, want: "ClientノLeptosUiノCargoToml"},
		{name: "multiple dots", path: "a.tar.gz", want: "Aᐧtarᐧgz"},
		{name: "multiple dots as separator", path: "a.tar.gz", dot: m.DotSeparator, want: "ATarGz"},
		{name: "ampersand", path: "R&D/plan.md", want: "RAndDノPlanᐧmd"},
		{name: "spaces", path: "already Pascal", want: "AlreadyPascal"},
		{name: "rest of the word is unchanged", path: "mIxEd", want: "MIxEd"},
		{name: "only separators", path: "---", want: "_"},
		{name: "empty path", path: "", want: "_"},
		{name: "leading dot", path: ".gitignore", want: "_ᐧgitignore"},
		{name: "leading dot as separator", path: ".gitignore", dot: m.DotSeparator, want: "Gitignore"},
		{name: "digits only", path: "1/2", want: "_1ノ_2"},
		{name: "punctuation becomes underscore", path: "my icon (1).svg", want: "MyIcon_1_ᐧsvg"},
		{name: "unicode letters are capitalized", path: "école/ñandú.svg", want: "ÉcoleノÑandúᐧsvg"},
		{name: "ascii casing leaves other letters", path: "école/ñandú.svg", casing: m.CasingASCII, want: "écoleノñandúᐧsvg"},
		{name: "ascii casing still upper-cases a-z", path: "arrow-left.svg", casing: m.CasingASCII, want: "ArrowLeftᐧsvg"},
		{name: "greek", path: "σ", want: "Σ"},
		{name: "uncased scripts are kept", path: "アイコン/矢印.svg", want: "アイコンノ矢印ᐧsvg"},
		{name: "invalid utf-8", path: "\xff.svg", want: "_ᐧsvg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSynthesizer(tt.dot, tt.casing).Synthesize(tt.path)

			assert.Equal(t, tt.want, got)
			assert.True(t, token.IsIdentifier(string(got)), "%q is not a Go identifier", got)
		})
	}
}

func TestSynthesizer_AlwaysProducesIdentifiers(t *testing.T) {
	inputs := []m.LogicalPath{
		"", "/", "//", ".", "..", "-", "_", " ", "&", "&&", "a&b", "9lives", "ノ", "ᐧ", "ノᐧ",
		"$HOME/.config", "tab\there", "new\nline", "emoji-😀.svg", "ﬁle", "İstanbul", "ǆemal",
		"١٢٣", "x/../y", "a-/-b", "__init__.py", "\x00", "\xc3\x28",
	}

	for _, dot := range []m.DotPolicy{m.DotMarker, m.DotSeparator} {
		for _, casing := range []m.CasingMode{m.CasingUnicode, m.CasingASCII} {
			synthesizer := NewSynthesizer(dot, casing)

			for _, input := range inputs {
				got := synthesizer.Synthesize(input)

				assert.True(t, token.IsIdentifier(string(got)), "%s/%s %q -> %q", dot, casing, input, got)
				assert.Equal(t, got, synthesizer.Synthesize(input), "not deterministic for %q", input)
			}
		}
	}
}

func TestSynthesizer_Defaults(t *testing.T) {
	assert.Equal(t,
		NewSynthesizer(m.DotMarker, m.CasingUnicode).Synthesize("nested_dir/icon.svg"),
		NewSynthesizer("", "").Synthesize("nested_dir/icon.svg"),
	)
}

func TestSynthesizer_DirectoryIsPrefixOfChildren(t *testing.T) {
	synthesizer := NewSynthesizer("", "")

	dir := synthesizer.Synthesize("nested_dir")
	file := synthesizer.Synthesize("nested_dir/icon.svg")

	assert.Equal(t, string(dir)+string(DirMarker)+"Iconᐧsvg", string(file))
}
