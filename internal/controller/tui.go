package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

const (
	// Lines used by the title, the table header and the help line.
	browserReservedLines = 6
	defaultBrowserHeight = 20
	maxColumnWidth       = 48
)

var (
	browserTitleStyle = lipgloss.NewStyle().
				MarginLeft(2).
				Foreground(lipgloss.Color("#3B82F6")).
				Bold(true)

	browserHelpStyle = lipgloss.NewStyle().
				MarginLeft(2).
				Foreground(lipgloss.Color("#64748B")).
				Italic(true)
)

// TUI implements UI with an interactive table browser for collections that
// do not fit the terminal. Everything else is delegated to SimpleUI.
type TUI struct {
	*SimpleUI

	output io.Writer
	run    func(model tea.Model) error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(simple *SimpleUI, output io.Writer) *TUI {
	t := &TUI{SimpleUI: simple, output: output}
	t.run = t.runProgram

	return t
}

// DisplayGroups browses the groups of entries.
func (t *TUI) DisplayGroups(ctx context.Context, entries m.Entries, columns []m.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns = columnsOr(columns, m.DefaultGroupColumns)

	rows, err := groupRows(entries, columns)
	if err != nil {
		return err
	}

	if !t.needsBrowser(len(rows)) {
		return t.SimpleUI.DisplayGroups(ctx, entries, columns)
	}

	return t.run(newEntryBrowserModel(fmt.Sprintf("%d groups", len(rows)), m.Headers(columns), rows, t.height()))
}

// DisplayParams browses the params of entries.
func (t *TUI) DisplayParams(ctx context.Context, entries m.Entries, columns []m.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns = columnsOr(columns, m.DefaultParamColumns)

	rows, err := paramRows(entries, columns)
	if err != nil {
		return err
	}

	if !t.needsBrowser(len(rows)) {
		return t.SimpleUI.DisplayParams(ctx, entries, columns)
	}

	return t.run(newEntryBrowserModel(fmt.Sprintf("%d params", len(rows)), m.Headers(columns), rows, t.height()))
}

func (t *TUI) needsBrowser(rows int) bool {
	return rows > t.height()-browserReservedLines
}

func (t *TUI) height() int {
	if f, ok := t.output.(*os.File); ok {
		if _, height, err := term.GetSize(int(f.Fd())); err == nil && height > 0 {
			return height
		}
	}

	return defaultBrowserHeight
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run entry browser: %w", err)
	}

	return nil
}

// entryBrowserModel is the Bubble Tea model browsing one table of entries.
type entryBrowserModel struct {
	title    string
	table    table.Model
	quitting bool
}

func newEntryBrowserModel(title string, headers []string, rows [][]string, height int) entryBrowserModel {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}

	tableRows := make([]table.Row, 0, len(rows))

	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = min(w, maxColumnWidth)
			}
		}

		tableRows = append(tableRows, table.Row(row))
	}

	columns := make([]table.Column, 0, len(headers))
	for i, header := range headers {
		columns = append(columns, table.Column{Title: header, Width: widths[i]})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(max(height-browserReservedLines, 1)),
	)
	t.SetStyles(styles)

	return entryBrowserModel{title: title, table: t}
}

func (ebm entryBrowserModel) Init() tea.Cmd {
	return nil
}

func (ebm entryBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ebm.table.SetHeight(max(msg.Height-browserReservedLines, 1))
		return ebm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			ebm.quitting = true
			return ebm, tea.Quit
		}
	}

	var cmd tea.Cmd
	ebm.table, cmd = ebm.table.Update(msg)

	return ebm, cmd
}

func (ebm entryBrowserModel) View() string {
	if ebm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(browserTitleStyle.Render(ebm.title))
	b.WriteString("\n\n")
	b.WriteString(ebm.table.View())
	b.WriteString("\n\n")
	b.WriteString(browserHelpStyle.Render("↑/↓ j/k move • pgup/pgdown page • q quit"))
	b.WriteString("\n")

	return b.String()
}
