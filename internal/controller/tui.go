package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	pathStyle   = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	staleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySymbols shows the set, paging through it when it does not fit on
// screen.
func (p *TUI) DisplaySymbols(ctx context.Context, name string, set m.CompiledSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newSymbolTableModel(name, set)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If the list is small, just print and exit.
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayGenerated reports a written file.
func (p *TUI) DisplayGenerated(ctx context.Context, output m.Path, set m.CompiledSet) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(p.output, "%s %s %s\n",
		okStyle.Render("✔"),
		string(output),
		pathStyle.Render(fmt.Sprintf("(%d files, %d directories)", set.Files(), set.Dirs())),
	)
}

// DisplayStale shows the diff of an out-of-date file.
func (p *TUI) DisplayStale(ctx context.Context, output m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(p.output, "%s %s is out of date\n%s", staleStyle.Render("✘"), string(output), diff)
}

type keyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
	}
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom, k.Quit}
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}

	return strings.Join(parts, " • ")
}

// symbolTableModel is the Bubble Tea model for paging through a compiled set.
type symbolTableModel struct {
	name     string
	symbols  []m.Symbol
	files    int
	dirs     int
	keys     keyMap
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newSymbolTableModel(name string, set m.CompiledSet) symbolTableModel {
	return symbolTableModel{
		name:    name,
		symbols: set.Symbols(),
		files:   set.Files(),
		dirs:    set.Dirs(),
		keys:    defaultKeyMap(),
	}
}

func (sm symbolTableModel) Init() tea.Cmd {
	return nil
}

func (sm symbolTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width
		sm.offset = min(sm.offset, sm.maxOffset())

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm symbolTableModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, sm.keys.Quit):
		sm.quitting = true
		return sm, tea.Quit
	case key.Matches(msg, sm.keys.Down):
		sm.offset++
	case key.Matches(msg, sm.keys.Up):
		sm.offset--
	case key.Matches(msg, sm.keys.Top):
		sm.offset = 0
	case key.Matches(msg, sm.keys.Bottom):
		sm.offset = sm.maxOffset()
	case key.Matches(msg, sm.keys.PageDown):
		sm.offset += sm.itemsPerPage()
	case key.Matches(msg, sm.keys.PageUp):
		sm.offset -= sm.itemsPerPage()
	}

	sm.offset = max(0, min(sm.offset, sm.maxOffset()))

	return sm, nil
}

// itemsPerPage calculates how many rows fit on screen.
func (sm symbolTableModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10
	}

	// title, blank, header, blank before footer, totals, help
	const reserved = 6

	return max(1, sm.height-reserved)
}

func (sm symbolTableModel) maxOffset() int {
	return max(0, len(sm.symbols)-sm.itemsPerPage())
}

// needsPagination returns true if the list is too large to fit on screen.
func (sm symbolTableModel) needsPagination() bool {
	return sm.height > 0 && len(sm.symbols) > sm.itemsPerPage()
}

func (sm symbolTableModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	title := "pathenum"
	if sm.name != "" {
		title += " · " + sm.name
	}

	b.WriteString(titleStyle.Render(title) + "\n\n")

	if len(sm.symbols) == 0 {
		b.WriteString("  no matching paths\n")
		return b.String()
	}

	identWidth := len("Identifier")
	for _, symbol := range sm.symbols {
		identWidth = max(identWidth, lipgloss.Width(string(symbol.Identifier)))
	}

	b.WriteString(headerStyle.Render(padRight("Identifier", identWidth)) + "  " + headerStyle.Render("Path") + "\n")

	start, end := sm.offset, len(sm.symbols)
	if sm.needsPagination() {
		end = min(start+sm.itemsPerPage(), len(sm.symbols))
	}

	for _, symbol := range sm.symbols[start:end] {
		ident := padRight(string(symbol.Identifier), identWidth)
		if symbol.IsDir {
			ident = dirStyle.Render(ident)
		}

		b.WriteString(ident + "  " + pathStyle.Render(string(symbol.Path)) + "\n")
	}

	fmt.Fprintf(&b, "\n%d symbols (%d files, %d directories)", len(sm.symbols), sm.files, sm.dirs)

	if sm.needsPagination() {
		fmt.Fprintf(&b, "  [%d-%d]\n%s", start+1, end, helpStyle.Render(sm.keys.help()))
	}

	b.WriteString("\n")

	return b.String()
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}
