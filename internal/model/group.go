// Package model defines the entries of a shared parameter file.
package model

import "strings"

// Group is a parameter group declared by a GROUP row.
type Group struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Line        int    `yaml:"line"`
}

// GroupKey is the identity of a group. Line numbers do not participate.
type GroupKey struct {
	ID          string
	Description string
}

// Key returns the identity of the group.
func (g Group) Key() GroupKey {
	return GroupKey{ID: g.ID, Description: g.Description}
}

// Equal reports whether both groups have the same id and description.
func (g Group) Equal(other Group) bool {
	return g.Key() == other.Key()
}

// Fields returns the group values in source-column order.
func (g Group) Fields() []string {
	return []string{g.ID, g.Description}
}

// Record returns the tagged row that declares the group.
func (g Group) Record() []string {
	return append([]string{string(KindGroup)}, g.Fields()...)
}

// Contains reports whether needle is a literal substring of any group field.
func (g Group) Contains(needle string) bool {
	for _, field := range g.Fields() {
		if strings.Contains(field, needle) {
			return true
		}
	}

	return false
}

func (g Group) String() string {
	return g.Description
}
