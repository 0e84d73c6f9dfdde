package model

import "fmt"

// DotPolicy controls how `.` inside a path segment is synthesized.
type DotPolicy string

const (
	// DotMarker replaces `.` with a visible extension marker, e.g. ArrowLeftᐧsvg.
	DotMarker DotPolicy = "marker"
	// DotSeparator treats `.` as a word separator, e.g. ArrowLeftSvg.
	DotSeparator DotPolicy = "separator"
)

// ParseDotPolicy parses a config value; the empty string selects DotMarker.
func ParseDotPolicy(value string) (DotPolicy, error) {
	switch DotPolicy(value) {
	case "", DotMarker:
		return DotMarker, nil
	case DotSeparator:
		return DotSeparator, nil
	}

	return "", fmt.Errorf("unknown dot policy %q (want %q or %q)", value, DotMarker, DotSeparator)
}

// CasingMode controls how the first letter of each word is upper-cased.
type CasingMode string

const (
	// CasingUnicode upper-cases using full Unicode case mapping.
	CasingUnicode CasingMode = "unicode"
	// CasingASCII only upper-cases a-z and leaves every other rune unchanged.
	CasingASCII CasingMode = "ascii"
)

// ParseCasingMode parses a config value; the empty string selects CasingUnicode.
func ParseCasingMode(value string) (CasingMode, error) {
	switch CasingMode(value) {
	case "", CasingUnicode:
		return CasingUnicode, nil
	case CasingASCII:
		return CasingASCII, nil
	}

	return "", fmt.Errorf("unknown casing mode %q (want %q or %q)", value, CasingUnicode, CasingASCII)
}
