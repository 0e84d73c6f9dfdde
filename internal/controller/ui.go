// Package controller provides the output adapters that display compiled
// symbol sets and generation results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// UI defines how workflow results reach the user.
// Implementations can use different output methods (simple text, TUI, YAML).
type UI interface {
	DisplaySymbols(ctx context.Context, name string, set m.CompiledSet) error
	DisplayGenerated(ctx context.Context, output m.Path, set m.CompiledSet)
	DisplayStale(ctx context.Context, output m.Path, diff string)
}

// NewUI returns the interactive TUI when writing to a terminal and the plain
// table printer otherwise.
//
//nolint:ireturn // the concrete UI depends on the terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
