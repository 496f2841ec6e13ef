// Package adapter contains file and UI adapters for the rsparam CLI.
package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

// maxRowBytes bounds a single row; descriptions can be long but rows never
// approach this size in practice.
const maxRowBytes = 1024 * 1024

const fieldSeparator = "\t"

// Header rows written ahead of the entries. Readers skip them because their
// tags are neither GROUP nor PARAM.
var (
	fileBanner = []string{
		"# This is a Revit shared parameter file.",
		"# Do not edit manually.",
	}
	metaHeader  = []string{"*META", "VERSION", "MINVERSION"}
	groupHeader = []string{"*GROUP", "ID", "NAME"}
	paramHeader = []string{
		"*PARAM", "GUID", "NAME", "DATATYPE", "DATACATEGORY",
		"GROUP", "VISIBLE", "DESCRIPTION", "USERMODIFIABLE",
	}
)

// SharedParamFileAdapter hides disk access from the workflow so commands can
// be tested without touching real files.
type SharedParamFileAdapter interface {
	// ReadEntries parses the shared parameter file at path. The file is open
	// only for the duration of the call.
	ReadEntries(path m.Path, encoding m.Encoding) (m.Entries, error)

	// WriteEntries writes entries to a new file at path. Existing files are
	// never overwritten.
	WriteEntries(path m.Path, entries m.Entries, encoding m.Encoding) error
}

// LocalSharedParamFileAdapter reads and writes shared parameter files on the
// local filesystem.
type LocalSharedParamFileAdapter struct{}

// NewLocalSharedParamFileAdapter constructs a LocalSharedParamFileAdapter.
func NewLocalSharedParamFileAdapter() *LocalSharedParamFileAdapter {
	return &LocalSharedParamFileAdapter{}
}

// ReadEntries opens, decodes and parses the file at path.
func (a *LocalSharedParamFileAdapter) ReadEntries(path m.Path, encoding m.Encoding) (m.Entries, error) {
	// #nosec G304 - path is the user's chosen input file
	file, err := os.Open(string(path))
	if err != nil {
		return m.Entries{}, fmt.Errorf("open shared parameter file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close shared parameter file", "path", path, "error", err)
		}
	}()

	reader, err := NewDecodingReader(file, encoding)
	if err != nil {
		return m.Entries{}, err
	}

	entries, err := ParseEntries(reader)
	if err != nil {
		return m.Entries{}, fmt.Errorf("read %s: %w", path, err)
	}

	if ambiguous := entries.AmbiguousGroupIDs(); len(ambiguous) > 0 {
		slog.Warn("group ids declared more than once, first declaration wins", "path", path, "ids", ambiguous)
	}

	slog.Debug("read shared parameter file", "path", path, "encoding", encoding,
		"groups", len(entries.Groups), "params", len(entries.Params))

	return entries, nil
}

// WriteEntries writes entries to a new file at path using encoding. A file
// that could not be written completely is removed again.
func (a *LocalSharedParamFileAdapter) WriteEntries(path m.Path, entries m.Entries, encoding m.Encoding) (err error) {
	if _, err := LookupEncoding(encoding); err != nil {
		return err
	}

	// #nosec G304 - path is the user's chosen output file
	file, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", m.ErrOutputExists, path)
		}

		return fmt.Errorf("create output file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(string(path))
		}
	}()

	writer, err := NewEncodingWriter(file, encoding)
	if err != nil {
		return err
	}

	if err := EncodeEntries(writer, entries); err != nil {
		_ = writer.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	slog.Debug("wrote shared parameter file", "path", path, "encoding", encoding,
		"groups", len(entries.Groups), "params", len(entries.Params))

	return nil
}

// ParseEntries reads UTF-8 rows from r and builds the entry pair. Rows with
// an unknown tag and blank rows are skipped but still counted, so Line is the
// 1-based row number in the source.
func ParseEntries(r io.Reader) (m.Entries, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowBytes)

	var (
		groups []m.Group
		params []m.Param
		meta   *m.Meta
		line   int
	)

	for scanner.Scan() {
		line++

		row := strings.TrimSuffix(scanner.Text(), "\r")
		if row == "" {
			continue
		}

		fields := strings.Split(row, fieldSeparator)
		values := fields[1:]

		switch m.RecordKind(fields[0]) {
		case m.KindGroup:
			if len(values) < m.GroupFieldCount {
				return m.Entries{}, &m.MalformedRecordError{Line: line, Kind: m.KindGroup, Fields: len(values)}
			}

			groups = append(groups, m.Group{ID: values[0], Description: values[1], Line: line})

		case m.KindParam:
			if len(values) < m.ParamFieldCount {
				return m.Entries{}, &m.MalformedRecordError{Line: line, Kind: m.KindParam, Fields: len(values)}
			}

			params = append(params, m.Param{
				GUID:           values[0],
				Name:           values[1],
				DataType:       values[2],
				DataCategory:   values[3],
				GroupID:        values[4],
				Visible:        values[5],
				Description:    values[6],
				UserModifiable: values[7],
				Line:           line,
			})

		case m.KindMeta:
			if len(values) >= m.MetaFieldCount {
				meta = &m.Meta{Version: values[0], MinVersion: values[1]}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return m.Entries{}, fmt.Errorf("scan rows: %w", err)
	}

	entries := m.NewEntries(groups, params)
	entries.Meta = meta

	return entries, nil
}

// EncodeEntries writes the file banner, the META row and every entry in the
// layout ParseEntries reads back.
func EncodeEntries(w io.Writer, entries m.Entries) error {
	bw := bufio.NewWriter(w)

	rows := make([][]string, 0, entries.Len()+6)
	for _, line := range fileBanner {
		rows = append(rows, []string{line})
	}

	rows = append(rows, metaHeader, []string{string(m.KindMeta), m.WriterMeta.Version, m.WriterMeta.MinVersion})

	rows = append(rows, groupHeader)
	for _, group := range entries.Groups {
		rows = append(rows, group.Record())
	}

	rows = append(rows, paramHeader)
	for _, param := range entries.Params {
		rows = append(rows, param.Record())
	}

	for _, row := range rows {
		if _, err := bw.WriteString(strings.Join(row, fieldSeparator) + "\r\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
