package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

// SimpleUI implements UI using the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySymbols prints the set as a table.
func (s *SimpleUI) DisplaySymbols(ctx context.Context, name string, set m.CompiledSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if name != "" {
		s.printf("%s\n", name)
	}

	s.printf("%s", renderSymbolTable(set))

	return nil
}

// DisplayGenerated reports a written file.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, output m.Path, set m.CompiledSet) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("wrote %s (%d files, %d directories)\n", output, set.Files(), set.Dirs())
}

// DisplayStale prints the diff between a generated file and its expected content.
func (s *SimpleUI) DisplayStale(ctx context.Context, output m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s is out of date:\n%s", output, diff)
}

func renderSymbolTable(set m.CompiledSet) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Identifier", "Path", "Kind"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, symbol := range set.Symbols() {
		table.Append([]string{string(symbol.Identifier), string(symbol.Path), kindLabel(symbol.IsDir)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", set.Len()),
		fmt.Sprintf("%d files", set.Files()),
		fmt.Sprintf("%d dirs", set.Dirs()),
	})

	table.Render()

	return tableBuffer.String()
}

func kindLabel(isDir bool) string {
	if isDir {
		return dirLabel
	}

	return fileLabel
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const (
	dirLabel  = "dir"
	fileLabel = "file"
)
