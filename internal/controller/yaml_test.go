package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

func TestYAMLUI_DisplayParams(t *testing.T) {
	var out bytes.Buffer
	ui := NewYAMLUI(newTestCommand(&out))

	ui.DisplayNote(context.Background(), "not part of the document")
	require.NoError(t, ui.DisplayParams(context.Background(), sampleEntries(), []m.Field{m.FieldGUID, m.FieldGroup, m.FieldLine}))

	assert.NotContains(t, out.String(), "not part of the document")

	var doc struct {
		Params []map[string]string `yaml:"params"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Params, 3)
	assert.Equal(t, map[string]string{"guid": "P1", "group": "Geometry", "lineno": "9"}, doc.Params[0])
	assert.Equal(t, "5", doc.Params[2]["group"])
}

func TestYAMLUI_KeepsColumnOrder(t *testing.T) {
	var out bytes.Buffer
	ui := NewYAMLUI(newTestCommand(&out))

	require.NoError(t, ui.DisplayGroups(context.Background(), sampleEntries(), []m.Field{m.FieldLine, m.FieldID}))

	assert.Contains(t, out.String(), "- lineno: \"6\"\n    id: \"1\"")
}

func TestYAMLUI_MultipleDocuments(t *testing.T) {
	var out bytes.Buffer
	ui := NewYAMLUI(newTestCommand(&out))
	ctx := context.Background()
	entries := sampleEntries()

	require.NoError(t, ui.DisplayGroups(ctx, entries, nil))
	require.NoError(t, ui.DisplayParamDuplicates(ctx, m.Duplicates{Source: entries, Params: [][]m.Param{entries.Params[:2]}}, false))
	require.NoError(t, ui.DisplayDiff(ctx, "-a\n+b\n"))

	decoder := yaml.NewDecoder(&out)

	var docs []map[string]interface{}

	for {
		var doc map[string]interface{}
		if err := decoder.Decode(&doc); err != nil {
			break
		}

		docs = append(docs, doc)
	}

	require.Len(t, docs, 3)
	assert.Contains(t, docs[0], "groups")
	assert.Equal(t, "guid", docs[1]["key"])
	assert.Len(t, docs[1]["duplicate_params"], 1)
	assert.Equal(t, "-a\n+b\n", docs[2]["diff"])
}
