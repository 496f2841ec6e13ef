package model

// Entries is the (groups, params) pair produced by every read and every
// derived operation. Both sequences keep discovery order unless re-sorted.
//
// The pair owns a lookup table from group id to the group that param
// references resolve to. Derived pairs share the table of their source, so
// filtering never changes how a param resolves.
type Entries struct {
	Meta   *Meta
	Groups []Group
	Params []Param

	index     map[string]Group
	ambiguous []string
}

// NewEntries builds a pair and resolves param group references against
// groups. When several groups share an id the first one wins and the id is
// reported by AmbiguousGroupIDs.
func NewEntries(groups []Group, params []Param) Entries {
	entries := Entries{Groups: groups, Params: params}
	entries.index, entries.ambiguous = indexGroups(groups)

	return entries
}

func indexGroups(groups []Group) (map[string]Group, []string) {
	index := make(map[string]Group, len(groups))
	reported := make(map[string]bool)

	var ambiguous []string

	for _, group := range groups {
		if _, exists := index[group.ID]; exists {
			if !reported[group.ID] {
				reported[group.ID] = true
				ambiguous = append(ambiguous, group.ID)
			}

			continue
		}

		index[group.ID] = group
	}

	return index, ambiguous
}

// Derive returns a pair holding the given sequences and sharing the group
// lookup of e.
func (e Entries) Derive(groups []Group, params []Param) Entries {
	return Entries{
		Meta:      e.Meta,
		Groups:    groups,
		Params:    params,
		index:     e.index,
		ambiguous: e.ambiguous,
	}
}

// GroupOf resolves the group reference of p. The second result is false when
// no group with the referenced id exists.
func (e Entries) GroupOf(p Param) (Group, bool) {
	group, ok := e.index[p.GroupID]
	return group, ok
}

// AmbiguousGroupIDs lists the group ids declared by more than one GROUP row,
// in order of first declaration.
func (e Entries) AmbiguousGroupIDs() []string {
	return append([]string(nil), e.ambiguous...)
}

// Len returns the total number of groups and params.
func (e Entries) Len() int {
	return len(e.Groups) + len(e.Params)
}

// IsEmpty reports whether the pair holds no entries.
func (e Entries) IsEmpty() bool {
	return e.Len() == 0
}
