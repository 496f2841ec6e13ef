// Package domain contains the queries, set operations and workflow of rsparam.
package domain

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/google/uuid"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

// GetParams returns the params of entries. When groupID is not empty only
// params whose reference resolves to a group with that id are returned;
// unresolved references never match.
func GetParams(entries m.Entries, groupID string) []m.Param {
	if groupID == "" {
		return entries.Params
	}

	params := make([]m.Param, 0)

	for _, param := range entries.Params {
		group, ok := entries.GroupOf(param)
		if ok && group.ID == groupID {
			params = append(params, param)
		}
	}

	return params
}

// GetGroups returns the groups of entries, restricted to groupID when set.
func GetGroups(entries m.Entries, groupID string) []m.Group {
	if groupID == "" {
		return entries.Groups
	}

	return filter(entries.Groups, func(g m.Group) bool { return g.ID == groupID })
}

// FindDuplicates buckets groups and params by name (group description) when
// byName is set, or by id and guid otherwise. Buckets keep the order in which
// their key first appears and members keep discovery order.
func FindDuplicates(entries m.Entries, byName bool) m.Duplicates {
	groupKey := func(g m.Group) string { return g.ID }
	paramKey := func(p m.Param) string { return p.GUID }

	if byName {
		groupKey = func(g m.Group) string { return g.Description }
		paramKey = func(p m.Param) string { return p.Name }
	}

	return m.Duplicates{
		Source: entries,
		Groups: duplicateBuckets(entries.Groups, groupKey),
		Params: duplicateBuckets(entries.Params, paramKey),
	}
}

func duplicateBuckets[T any](items []T, key func(T) string) [][]T {
	positions := make(map[string]int)

	var buckets [][]T

	for _, item := range items {
		k := key(item)
		if pos, ok := positions[k]; ok {
			buckets[pos] = append(buckets[pos], item)
			continue
		}

		positions[k] = len(buckets)
		buckets = append(buckets, []T{item})
	}

	duplicates := make([][]T, 0)

	for _, bucket := range buckets {
		if len(bucket) > 1 {
			duplicates = append(duplicates, bucket)
		}
	}

	return duplicates
}

// Find keeps the entries with a field containing needle as a literal,
// case-sensitive substring.
func Find(entries m.Entries, needle string) m.Entries {
	return entries.Derive(
		filter(entries.Groups, func(g m.Group) bool { return g.Contains(needle) }),
		filter(entries.Params, func(p m.Param) bool { return p.Contains(needle) }),
	)
}

// FindGlob keeps the entries with a field matching the glob pattern, e.g.
// "*Width*" or "Door?Height".
func FindGlob(entries m.Entries, pattern string) (m.Entries, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return m.Entries{}, fmt.Errorf("%w %q: %w", m.ErrInvalidPattern, pattern, err)
	}

	matches := func(fields []string) bool {
		for _, field := range fields {
			if g.Match(field) {
				return true
			}
		}

		return false
	}

	return entries.Derive(
		filter(entries.Groups, func(group m.Group) bool { return matches(group.Fields()) }),
		filter(entries.Params, func(param m.Param) bool { return matches(param.Fields()) }),
	), nil
}

// FindInvalidGUIDs keeps the params whose guid is not a valid UUID.
func FindInvalidGUIDs(entries m.Entries) m.Entries {
	return entries.Derive(
		make([]m.Group, 0),
		filter(entries.Params, func(p m.Param) bool {
			_, err := uuid.Parse(p.GUID)
			return err != nil
		}),
	)
}

func filter[T any](items []T, keep func(T) bool) []T {
	kept := make([]T, 0)

	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}

	return kept
}
