package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{"", SortByName, false},
		{"name", SortByName, false},
		{" Group ", SortByGroup, false},
		{"guid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, m.ErrUnknownSortKey)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSort(t *testing.T) {
	entries := m.NewEntries(
		[]m.Group{{ID: "1", Description: "Geometry"}, {ID: "2", Description: "Data"}},
		[]m.Param{
			newParam("P1", "Width", "1"),
			newParam("P2", "Mark", "2"),
			newParam("P3", "Area", "1"),
			newParam("P4", "Loose", "0"),
		},
	)

	byName, err := Sort(entries, SortByName)
	require.NoError(t, err)
	assert.Equal(t, []string{"P3", "P4", "P2", "P1"}, guidsOf(byName.Params))
	assert.Equal(t, "Data", byName.Groups[0].Description)

	byGroup, err := Sort(entries, SortByGroup)
	require.NoError(t, err)
	assert.Equal(t, []string{"P4", "P2", "P3", "P1"}, guidsOf(byGroup.Params), "unresolved token 0 sorts before descriptions")

	assert.Equal(t, "P1", entries.Params[0].GUID, "input is not modified")

	_, err = Sort(entries, "colour")
	require.ErrorIs(t, err, m.ErrUnknownSortKey)
}
