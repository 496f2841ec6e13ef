package domain

import (
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

// UnifiedDiff renders the rows of both pairs as a unified diff. Rows are
// sorted first so that reordering alone produces no hunks.
func UnifiedDiff(a, b m.Entries, nameA, nameB string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        canonicalRows(a),
		B:        canonicalRows(b),
		FromFile: nameA,
		ToFile:   nameB,
		Context:  1,
	}

	return difflib.GetUnifiedDiffString(diff)
}

func canonicalRows(entries m.Entries) []string {
	groups := make([]string, 0, len(entries.Groups))
	for _, group := range entries.Groups {
		groups = append(groups, strings.Join(group.Record(), "\t")+"\n")
	}

	params := make([]string, 0, len(entries.Params))
	for _, param := range entries.Params {
		params = append(params, strings.Join(param.Record(), "\t")+"\n")
	}

	slices.Sort(groups)
	slices.Sort(params)

	return append(groups, params...)
}
