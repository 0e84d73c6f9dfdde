package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

const (
	// DirMarker joins the synthesized segments of a path (KATAKANA LETTER NO).
	DirMarker = 'ノ'
	// ExtMarker stands in for `.` under m.DotMarker (CANADIAN SYLLABICS FINAL
	// MIDDLE DOT). Both markers are Unicode letters, so they are legal inside
	// Go identifiers.
	ExtMarker = 'ᐧ'
)

// Synthesizer turns logical paths into identifiers.
//
// Each `/`-separated segment is rewritten on its own: `&` becomes "And", `.`
// becomes ExtMarker (or a word break under m.DotSeparator), the text is split
// into words on `-`, `_` and space, every word gets its first letter
// upper-cased and the words are concatenated. A segment that would not start
// with a letter or underscore gets a leading underscore. Segments are joined
// with DirMarker.
//
// Runes that are not letters, digits or underscores survive tokenizing as
// underscores, so the result is always a valid Go identifier body.
type Synthesizer struct {
	dot    m.DotPolicy
	casing m.CasingMode
}

// NewSynthesizer creates a Synthesizer; empty values select the defaults.
func NewSynthesizer(dot m.DotPolicy, casing m.CasingMode) *Synthesizer {
	if dot == "" {
		dot = m.DotMarker
	}

	if casing == "" {
		casing = m.CasingUnicode
	}

	return &Synthesizer{dot: dot, casing: casing}
}

// Synthesize is total and deterministic. The empty path yields "_".
func (s *Synthesizer) Synthesize(path m.LogicalPath) m.Identifier {
	segments := path.Segments()
	parts := make([]string, 0, len(segments))

	for _, segment := range segments {
		parts = append(parts, s.segment(segment))
	}

	return m.Identifier(guardStart(strings.Join(parts, string(DirMarker))))
}

func (s *Synthesizer) segment(raw string) string {
	replaced := strings.ReplaceAll(raw, "&", "And")
	if s.dot == m.DotMarker {
		replaced = strings.ReplaceAll(replaced, ".", string(ExtMarker))
	}

	var b strings.Builder

	for _, word := range strings.FieldsFunc(replaced, s.isSeparator) {
		b.WriteString(s.capitalize(sanitize(word)))
	}

	return guardStart(b.String())
}

func (s *Synthesizer) isSeparator(r rune) bool {
	switch r {
	case '-', '_', ' ':
		return true
	case '.':
		return s.dot == m.DotSeparator
	}

	return false
}

func (s *Synthesizer) capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}

	var upper rune

	switch s.casing {
	case m.CasingASCII:
		upper = first
		if 'a' <= first && first <= 'z' {
			upper = first - 'a' + 'A'
		}
	default:
		upper = unicode.ToUpper(first)
	}

	if upper == first {
		return word
	}

	return string(upper) + word[size:]
}

// sanitize replaces every rune that cannot appear in an identifier,
// including invalid UTF-8, with an underscore.
func sanitize(word string) string {
	return strings.Map(func(r rune) rune {
		if isIdentPart(r) {
			return r
		}

		return '_'
	}, word)
}

func guardStart(s string) string {
	first, _ := utf8.DecodeRuneInString(s)
	if s == "" || !isIdentStart(first) {
		return "_" + s
	}

	return s
}

// isIdentStart treats the markers as non-starting so a segment such as
// ".gitignore" reads as _ᐧgitignore rather than starting with a marker.
func isIdentStart(r rune) bool {
	if r == DirMarker || r == ExtMarker {
		return false
	}

	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
