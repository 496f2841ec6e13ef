package domain

import (
	m "rsparam.dev/pkg/rsparam/internal/model"
)

// Compare returns the entries of a that are not identity-equal to any entry
// of b, and symmetrically the entries of b missing from a. Groups and params
// are compared within their own kind; positions and line numbers play no
// part.
func Compare(a, b m.Entries) (uniqueToA, uniqueToB m.Entries) {
	uniqueToA = a.Derive(
		difference(a.Groups, b.Groups, m.Group.Key),
		difference(a.Params, b.Params, m.Param.Key),
	)
	uniqueToB = b.Derive(
		difference(b.Groups, a.Groups, m.Group.Key),
		difference(b.Params, a.Params, m.Param.Key),
	)

	return uniqueToA, uniqueToB
}

// Merge returns the union of every pair, deduplicated by identity. Entries
// keep the order in which they are first seen across the inputs and param
// group references are resolved again against the merged groups.
func Merge(pairs ...m.Entries) m.Entries {
	var (
		groups []m.Group
		params []m.Param
	)

	seenGroups := make(map[m.GroupKey]bool)
	seenParams := make(map[m.ParamKey]bool)

	for _, pair := range pairs {
		for _, group := range pair.Groups {
			if key := group.Key(); !seenGroups[key] {
				seenGroups[key] = true
				groups = append(groups, group)
			}
		}

		for _, param := range pair.Params {
			if key := param.Key(); !seenParams[key] {
				seenParams[key] = true
				params = append(params, param)
			}
		}
	}

	return m.NewEntries(groups, params)
}

// Subtract returns the entries of first that are not identity-equal to any
// entry of the remaining pairs.
func Subtract(first m.Entries, rest ...m.Entries) m.Entries {
	var (
		groups []m.Group
		params []m.Param
	)

	for _, pair := range rest {
		groups = append(groups, pair.Groups...)
		params = append(params, pair.Params...)
	}

	return first.Derive(
		difference(first.Groups, groups, m.Group.Key),
		difference(first.Params, params, m.Param.Key),
	)
}

func difference[T any, K comparable](items, others []T, key func(T) K) []T {
	exclude := make(map[K]struct{}, len(others))
	for _, other := range others {
		exclude[key(other)] = struct{}{}
	}

	return filter(items, func(item T) bool {
		_, found := exclude[key(item)]
		return !found
	})
}
