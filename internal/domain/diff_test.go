package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

func TestUnifiedDiff(t *testing.T) {
	a := m.NewEntries([]m.Group{{ID: "1", Description: "Geometry"}}, []m.Param{newParam("P1", "One", "1")})
	b := m.NewEntries([]m.Group{{ID: "1", Description: "Geometry"}}, []m.Param{newParam("P2", "Two", "1")})

	diff, err := UnifiedDiff(a, b, "first.txt", "second.txt")
	require.NoError(t, err)

	assert.Contains(t, diff, "--- first.txt")
	assert.Contains(t, diff, "+++ second.txt")
	assert.Contains(t, diff, "-PARAM\tP1\tOne")
	assert.Contains(t, diff, "+PARAM\tP2\tTwo")
}

func TestUnifiedDiff_OrderInsensitive(t *testing.T) {
	a := m.NewEntries(nil, []m.Param{newParam("P1", "One", "1"), newParam("P2", "Two", "1")})
	b := m.NewEntries(nil, []m.Param{newParam("P2", "Two", "1"), newParam("P1", "One", "1")})

	diff, err := UnifiedDiff(a, b, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, diff)
}
