package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// ManifestUI writes compiled sets as YAML documents, one per set.
type ManifestUI struct {
	output    io.Writer
	documents int
}

// NewManifestUI creates a ManifestUI.
func NewManifestUI(output io.Writer) *ManifestUI {
	return &ManifestUI{output: output}
}

type manifest struct {
	Name    string     `yaml:"name,omitempty"`
	Symbols []m.Symbol `yaml:"symbols"`
}

// DisplaySymbols encodes the set as a YAML document.
func (u *ManifestUI) DisplaySymbols(ctx context.Context, name string, set m.CompiledSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if u.documents > 0 {
		if _, err := io.WriteString(u.output, "---\n"); err != nil {
			return err
		}
	}

	u.documents++

	encoder := yaml.NewEncoder(u.output)
	encoder.SetIndent(2)

	if err := encoder.Encode(manifest{Name: name, Symbols: set.Symbols()}); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	return encoder.Close()
}

// DisplayGenerated writes a YAML comment so the stream stays parseable.
func (u *ManifestUI) DisplayGenerated(ctx context.Context, output m.Path, set m.CompiledSet) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(u.output, "# wrote %s (%d symbols)\n", output, set.Len())
}

// DisplayStale writes the diff as YAML comments.
func (u *ManifestUI) DisplayStale(ctx context.Context, output m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(u.output, "# %s is out of date\n", output)

	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		_, _ = fmt.Fprintf(u.output, "# %s\n", line)
	}
}
