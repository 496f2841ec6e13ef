package adapter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

const sampleFile = "# This is a Revit shared parameter file.\r\n" +
	"# Do not edit manually.\r\n" +
	"*META\tVERSION\tMINVERSION\r\n" +
	"META\t2\t1\r\n" +
	"*GROUP\tID\tNAME\r\n" +
	"GROUP\tG1\tGeometry\r\n" +
	"\r\n" +
	"*PARAM\tGUID\tNAME\tDATATYPE\tDATACATEGORY\tGROUP\tVISIBLE\tDESCRIPTION\tUSERMODIFIABLE\r\n" +
	"PARAM\tP1\tWidth\tLength\tNone\tG1\t1\tWidth desc\t1\r\n" +
	"PARAM\tP2\tLoose\tText\t\tG9\t0\t\t0\r\n"

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, content, 0o600))
}

func TestParseEntries_Scenario(t *testing.T) {
	input := "GROUP\tG1\tGeometry\nPARAM\tP1\tWidth\tLength\tNone\tG1\t1\tWidth desc\t1\n"

	entries, err := ParseEntries(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, entries.Groups, 1)
	require.Len(t, entries.Params, 1)
	assert.Equal(t, m.Group{ID: "G1", Description: "Geometry", Line: 1}, entries.Groups[0])

	param := entries.Params[0]
	assert.Equal(t, "P1", param.GUID)
	assert.Equal(t, "Width", param.Name)
	assert.Equal(t, "Length", param.DataType)
	assert.Equal(t, "None", param.DataCategory)
	assert.Equal(t, "1", param.Visible)
	assert.Equal(t, "Width desc", param.Description)
	assert.Equal(t, "1", param.UserModifiable)
	assert.Equal(t, 2, param.Line)

	group, ok := entries.GroupOf(param)
	require.True(t, ok)
	assert.Equal(t, entries.Groups[0], group)
}

func TestParseEntries_SkippedRowsAreCounted(t *testing.T) {
	entries, err := ParseEntries(strings.NewReader(sampleFile))
	require.NoError(t, err)

	require.Len(t, entries.Groups, 1)
	require.Len(t, entries.Params, 2)
	assert.Equal(t, 6, entries.Groups[0].Line)
	assert.Equal(t, 9, entries.Params[0].Line)
	assert.Equal(t, 10, entries.Params[1].Line)

	require.NotNil(t, entries.Meta)
	assert.Equal(t, m.Meta{Version: "2", MinVersion: "1"}, *entries.Meta)

	_, ok := entries.GroupOf(entries.Params[1])
	assert.False(t, ok)
	assert.Equal(t, "G9", entries.Params[1].GroupID)
	assert.Equal(t, "", entries.Params[1].Description)
}

func TestParseEntries_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		kind   m.RecordKind
		fields int
	}{
		{"short group", "GROUP\tG1\n", 1, m.KindGroup, 1},
		{"short param", "GROUP\tG1\tGeometry\n\nPARAM\tP1\tWidth\tLength\n", 3, m.KindParam, 3},
		{"bare tag", "# header\nPARAM\n", 2, m.KindParam, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ParseEntries(strings.NewReader(tt.input))
			require.ErrorIs(t, err, m.ErrMalformedRecord)
			assert.True(t, entries.IsEmpty(), "no partial result")

			var malformed *m.MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.line, malformed.Line)
			assert.Equal(t, tt.kind, malformed.Kind)
			assert.Equal(t, tt.fields, malformed.Fields)
		})
	}
}

func TestParseEntries_IgnoresUnknownTagsAndExtraColumns(t *testing.T) {
	input := "NOTE\tsomething\nGROUP\t1\tData\textra\nPARAM\tP1\tA\tText\t\t1\t1\t\t1\t0\n"

	entries, err := ParseEntries(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, entries.Groups, 1)
	require.Len(t, entries.Params, 1)
	assert.Equal(t, "Data", entries.Groups[0].Description)
	assert.Equal(t, "1", entries.Params[0].UserModifiable)
}

func TestParseEntries_Empty(t *testing.T) {
	entries, err := ParseEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, entries.IsEmpty())
	assert.Nil(t, entries.Meta)
}

func TestLocalSharedParamFileAdapter_ReadEntries(t *testing.T) {
	adapter := NewLocalSharedParamFileAdapter()

	t.Run("utf-8", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "params.txt")
		writeTestFile(t, path, []byte(sampleFile))

		entries, err := adapter.ReadEntries(m.Path(path), "")
		require.NoError(t, err)
		assert.Len(t, entries.Groups, 1)
		assert.Len(t, entries.Params, 2)
	})

	t.Run("utf-16 with byte order mark", func(t *testing.T) {
		encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(sampleFile)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "params.txt")
		writeTestFile(t, path, []byte(encoded))

		entries, err := adapter.ReadEntries(m.Path(path), "utf-8")
		require.NoError(t, err)
		require.Len(t, entries.Params, 2)
		assert.Equal(t, "Width desc", entries.Params[0].Description)
	})

	t.Run("legacy override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "params.txt")
		writeTestFile(t, path, []byte("GROUP\t1\tCaf\xe9\n"))

		entries, err := adapter.ReadEntries(m.Path(path), "windows-1252")
		require.NoError(t, err)
		require.Len(t, entries.Groups, 1)
		assert.Equal(t, "Café", entries.Groups[0].Description)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "params.txt")
		writeTestFile(t, path, []byte(sampleFile))

		_, err := adapter.ReadEntries(m.Path(path), "klingon")
		require.ErrorIs(t, err, m.ErrUnknownEncoding)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ReadEntries(m.Path(filepath.Join(t.TempDir(), "missing.txt")), "")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "params.txt")
		writeTestFile(t, path, []byte("GROUP\t1\n"))

		_, err := adapter.ReadEntries(m.Path(path), "")
		require.ErrorIs(t, err, m.ErrMalformedRecord)
		assert.Contains(t, err.Error(), path)
	})
}

func TestLocalSharedParamFileAdapter_RoundTrip(t *testing.T) {
	encodings := []m.Encoding{"utf-8", "utf-16le", "utf-16be", "windows-1252"}

	for _, encoding := range encodings {
		t.Run(string(encoding), func(t *testing.T) {
			adapter := NewLocalSharedParamFileAdapter()
			dir := t.TempDir()

			source := filepath.Join(dir, "source.txt")
			writeTestFile(t, source, []byte(sampleFile))

			first, err := adapter.ReadEntries(m.Path(source), "")
			require.NoError(t, err)

			target := filepath.Join(dir, "target.txt")
			require.NoError(t, adapter.WriteEntries(m.Path(target), first, encoding))

			second, err := adapter.ReadEntries(m.Path(target), encoding)
			require.NoError(t, err)

			require.Len(t, second.Groups, len(first.Groups))
			require.Len(t, second.Params, len(first.Params))

			for i := range first.Groups {
				assert.True(t, first.Groups[i].Equal(second.Groups[i]))
			}

			for i := range first.Params {
				assert.Equal(t, first.Params[i].Fields(), second.Params[i].Fields())
			}

			require.NotNil(t, second.Meta)
			assert.Equal(t, m.WriterMeta, *second.Meta)
		})
	}
}

func TestLocalSharedParamFileAdapter_WriteRefusesExistingFile(t *testing.T) {
	adapter := NewLocalSharedParamFileAdapter()
	path := filepath.Join(t.TempDir(), "out.txt")
	writeTestFile(t, path, []byte("keep me"))

	err := adapter.WriteEntries(m.Path(path), m.Entries{}, "")
	require.ErrorIs(t, err, m.ErrOutputExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))
}

func TestLocalSharedParamFileAdapter_WriteRemovesIncompleteFile(t *testing.T) {
	adapter := NewLocalSharedParamFileAdapter()
	path := filepath.Join(t.TempDir(), "out.txt")
	entries := m.NewEntries(nil, []m.Param{{GUID: "P1", Name: "幅", DataType: "LENGTH", Visible: "1", UserModifiable: "1"}})

	err := adapter.WriteEntries(m.Path(path), entries, "windows-1252")
	require.Error(t, err)
	assert.NoFileExists(t, path)

	err = adapter.WriteEntries(m.Path(path), entries, "utf-8")
	require.NoError(t, err)

	written, err := adapter.ReadEntries(m.Path(path), "utf-8")
	require.NoError(t, err)
	require.Len(t, written.Params, 1)
	assert.Equal(t, "幅", written.Params[0].Name)
}

func TestLocalSharedParamFileAdapter_WriteUnknownEncodingCreatesNothing(t *testing.T) {
	adapter := NewLocalSharedParamFileAdapter()
	path := filepath.Join(t.TempDir(), "out.txt")

	err := adapter.WriteEntries(m.Path(path), m.Entries{}, "no-such-encoding")
	require.ErrorIs(t, err, m.ErrUnknownEncoding)
	assert.NoFileExists(t, path)
}

func TestEncodeEntries_Layout(t *testing.T) {
	entries := m.NewEntries(
		[]m.Group{{ID: "1", Description: "Geometry"}},
		[]m.Param{{GUID: "P1", Name: "Width", DataType: "LENGTH", GroupID: "1", Visible: "1", UserModifiable: "1"}},
	)

	var buf bytes.Buffer
	require.NoError(t, EncodeEntries(&buf, entries))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "# This is a Revit shared parameter file.", lines[0])
	assert.Equal(t, "META\t2\t1", lines[3])
	assert.Equal(t, "GROUP\t1\tGeometry", lines[5])
	assert.Equal(t, "PARAM\tP1\tWidth\tLENGTH\t\t1\t1\t\t1", lines[7])
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []m.Encoding{"", "UTF-8", " utf-16le ", "latin1", "windows-1252"} {
		_, err := LookupEncoding(name)
		assert.NoError(t, err, "encoding %q", name)
	}

	_, err := LookupEncoding("not-an-encoding")
	require.ErrorIs(t, err, m.ErrUnknownEncoding)
}
