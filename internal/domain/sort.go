package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

// SortKey selects the order of sorted entries.
type SortKey string

const (
	// SortByName orders params by name.
	SortByName SortKey = "name"
	// SortByGroup orders params by the description of their group, then name.
	SortByGroup SortKey = "group"
)

// ParseSortKey validates a sort key. An empty value selects SortByName.
func ParseSortKey(value string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(value))); key {
	case "":
		return SortByName, nil
	case SortByName, SortByGroup:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %q", m.ErrUnknownSortKey, value)
	}
}

// Sort returns a copy of entries in a stable order. Groups are always ordered
// by description.
func Sort(entries m.Entries, by SortKey) (m.Entries, error) {
	if by != SortByName && by != SortByGroup {
		return m.Entries{}, fmt.Errorf("%w: %q", m.ErrUnknownSortKey, by)
	}

	groups := slices.Clone(entries.Groups)
	slices.SortStableFunc(groups, func(a, b m.Group) int {
		return cmp.Compare(a.Description, b.Description)
	})

	params := slices.Clone(entries.Params)
	slices.SortStableFunc(params, func(a, b m.Param) int {
		if by == SortByGroup {
			if c := cmp.Compare(groupLabel(entries, a), groupLabel(entries, b)); c != 0 {
				return c
			}
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return entries.Derive(groups, params), nil
}

func groupLabel(entries m.Entries, p m.Param) string {
	if group, ok := entries.GroupOf(p); ok {
		return group.Description
	}

	return p.GroupID
}
