// Package controller renders rsparam results on the console.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

// Format selects how results are rendered.
type Format string

// Available Format values.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name. An empty value selects FormatTable.
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return FormatTable, nil
	case FormatTable, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %q or %q)", value, FormatTable, FormatYAML)
	}
}

// Options configures the renderer chosen by ConsoleUI.
type Options struct {
	Format      Format
	Interactive bool
	Quiet       bool
}

// UI defines how workflow results reach the user.
// Implementations can use different output methods (tables, YAML, TUI).
type UI interface {
	// DisplaySources reports the files an operation works on.
	DisplaySources(ctx context.Context, title string, paths ...m.Path)
	// DisplayNote reports a section title or status line.
	DisplayNote(ctx context.Context, message string)
	// DisplayWritten reports a file the results were written to.
	DisplayWritten(ctx context.Context, path m.Path)
	DisplayGroups(ctx context.Context, entries m.Entries, columns []m.Field) error
	DisplayParams(ctx context.Context, entries m.Entries, columns []m.Field) error
	DisplayGroupDuplicates(ctx context.Context, duplicates m.Duplicates, byName bool) error
	DisplayParamDuplicates(ctx context.Context, duplicates m.Duplicates, byName bool) error
	DisplayDiff(ctx context.Context, diff string) error
}

// ConsoleUI forwards to the renderer selected by Configure. It lets commands
// share one UI whose behaviour depends on flags parsed later.
type ConsoleUI struct {
	UI

	cmd *cobra.Command
}

// NewUI creates a ConsoleUI rendering tables until configured otherwise.
func NewUI(cmd *cobra.Command) *ConsoleUI {
	return &ConsoleUI{UI: NewSimpleUI(cmd, false), cmd: cmd}
}

// Configure selects the renderer for opts.
func (c *ConsoleUI) Configure(opts Options) {
	if opts.Format == FormatYAML {
		c.UI = NewYAMLUI(c.cmd)
		return
	}

	simple := NewSimpleUI(c.cmd, opts.Quiet)
	if opts.Interactive && IsTTY(c.cmd.OutOrStdout()) {
		c.UI = NewTUI(simple, c.cmd.OutOrStdout())
		return
	}

	c.UI = simple
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func duplicateParamColumns(byName bool) []m.Field {
	if byName {
		return []m.Field{m.FieldName, m.FieldGUID, m.FieldDataType, m.FieldGroup, m.FieldLine}
	}

	return []m.Field{m.FieldGUID, m.FieldName, m.FieldDataType, m.FieldGroup, m.FieldLine}
}

func duplicateGroupColumns(byName bool) []m.Field {
	if byName {
		return []m.Field{m.FieldName, m.FieldGUID, m.FieldLine}
	}

	return []m.Field{m.FieldGUID, m.FieldName, m.FieldLine}
}

func duplicateKeyName(byName bool) string {
	if byName {
		return "name"
	}

	return "guid"
}

func groupRows(entries m.Entries, columns []m.Field) ([][]string, error) {
	rows := make([][]string, 0, len(entries.Groups))

	for _, group := range entries.Groups {
		row, err := m.GroupRow(group, columns)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func paramRows(entries m.Entries, columns []m.Field) ([][]string, error) {
	rows := make([][]string, 0, len(entries.Params))

	for _, param := range entries.Params {
		row, err := entries.ParamRow(param, columns)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func columnsOr(columns, fallback []m.Field) []m.Field {
	if len(columns) == 0 {
		return fallback
	}

	return columns
}
