package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

var (
	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	writtenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	diffAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	diffRemoveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	diffHunkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
)

// SimpleUI implements UI with plain tables written to the command output.
// In quiet mode report lines are dropped; tables are always printed.
type SimpleUI struct {
	cmd   *cobra.Command
	quiet bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, quiet bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, quiet: quiet}
}

// DisplaySources prints one line per path prefixed by title.
func (s *SimpleUI) DisplaySources(ctx context.Context, title string, paths ...m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, path := range paths {
		s.report(sourceStyle.Render(fmt.Sprintf("%s%s", title, path)))
	}
}

// DisplayNote prints a highlighted status line.
func (s *SimpleUI) DisplayNote(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.report(noteStyle.Render(message))
}

// DisplayWritten reports the file results were written to.
func (s *SimpleUI) DisplayWritten(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.report(writtenStyle.Render(fmt.Sprintf("wrote results to: %s", path)))
}

// DisplayGroups prints the groups of entries as a table.
func (s *SimpleUI) DisplayGroups(ctx context.Context, entries m.Entries, columns []m.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns = columnsOr(columns, m.DefaultGroupColumns)

	rows, err := groupRows(entries, columns)
	if err != nil {
		return err
	}

	s.printf("%s", renderTable(m.Headers(columns), rows))
	s.report(fmt.Sprintf("Total of %d items.", len(rows)))

	return nil
}

// DisplayParams prints the params of entries as a table.
func (s *SimpleUI) DisplayParams(ctx context.Context, entries m.Entries, columns []m.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns = columnsOr(columns, m.DefaultParamColumns)

	rows, err := paramRows(entries, columns)
	if err != nil {
		return err
	}

	s.printf("%s", renderTable(m.Headers(columns), rows))
	s.report(fmt.Sprintf("Total of %d items.", len(rows)))

	return nil
}

// DisplayGroupDuplicates prints one table per bucket of duplicate groups.
func (s *SimpleUI) DisplayGroupDuplicates(ctx context.Context, duplicates m.Duplicates, byName bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := duplicateKeyName(byName)
	columns := duplicateGroupColumns(byName)

	s.report(noteStyle.Render(fmt.Sprintf("\nduplicate groups by %s:", key)))

	for _, bucket := range duplicates.Groups {
		rows, err := groupRows(duplicates.Source.Derive(bucket, nil), columns)
		if err != nil {
			return err
		}

		s.printf("%s\n", noteStyle.Render(fmt.Sprintf("\nduplicates by %s: %s", key, rows[0][0])))
		s.printf("%s", renderTable(m.Headers(columns), rows))
	}

	return nil
}

// DisplayParamDuplicates prints one table per bucket of duplicate params.
func (s *SimpleUI) DisplayParamDuplicates(ctx context.Context, duplicates m.Duplicates, byName bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := duplicateKeyName(byName)
	columns := duplicateParamColumns(byName)

	s.report(noteStyle.Render(fmt.Sprintf("\nduplicate params by %s:", key)))

	for _, bucket := range duplicates.Params {
		rows, err := paramRows(duplicates.Source.Derive(nil, bucket), columns)
		if err != nil {
			return err
		}

		s.printf("%s\n", noteStyle.Render(fmt.Sprintf("\nduplicates by %s: %s", key, rows[0][0])))
		s.printf("%s", renderTable(m.Headers(columns), rows))
	}

	return nil
}

// DisplayDiff prints a unified diff with added and removed rows coloured.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.report(noteStyle.Render("files contain the same entries"))
		return nil
	}

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			s.printf("%s\n", line)
		case strings.HasPrefix(line, "+"):
			s.printf("%s\n", diffAddStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			s.printf("%s\n", diffRemoveStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			s.printf("%s\n", diffHunkStyle.Render(line))
		default:
			s.printf("%s\n", line)
		}
	}

	return nil
}

func (s *SimpleUI) report(message string) {
	if s.quiet {
		return
	}

	s.printf("%s\n", message)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTable(headers []string, rows [][]string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	return tableBuffer.String()
}
