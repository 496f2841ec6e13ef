package model

import "strings"

// Param is a shared parameter definition declared by a PARAM row.
//
// GroupID holds the raw group token of the row. It is resolved against the
// groups of the same file through Entries.GroupOf.
type Param struct {
	GUID           string `yaml:"guid"`
	Name           string `yaml:"name"`
	DataType       string `yaml:"datatype"`
	DataCategory   string `yaml:"datacategory"`
	GroupID        string `yaml:"group"`
	Visible        string `yaml:"visible"`
	Description    string `yaml:"description"`
	UserModifiable string `yaml:"usermodifiable"`
	Line           int    `yaml:"line"`
}

// ParamKey is the identity of a param. The group reference and the line
// number do not participate, so params linked to distinct but identical
// groups still compare equal.
type ParamKey struct {
	GUID           string
	Name           string
	DataType       string
	DataCategory   string
	Visible        string
	Description    string
	UserModifiable string
}

// Key returns the identity of the param.
func (p Param) Key() ParamKey {
	return ParamKey{
		GUID:           p.GUID,
		Name:           p.Name,
		DataType:       p.DataType,
		DataCategory:   p.DataCategory,
		Visible:        p.Visible,
		Description:    p.Description,
		UserModifiable: p.UserModifiable,
	}
}

// Equal reports whether both params share the same identity.
func (p Param) Equal(other Param) bool {
	return p.Key() == other.Key()
}

// Fields returns the param values in source-column order.
func (p Param) Fields() []string {
	return []string{
		p.GUID,
		p.Name,
		p.DataType,
		p.DataCategory,
		p.GroupID,
		p.Visible,
		p.Description,
		p.UserModifiable,
	}
}

// Record returns the tagged row that declares the param.
func (p Param) Record() []string {
	return append([]string{string(KindParam)}, p.Fields()...)
}

// Contains reports whether needle is a literal substring of any param field.
func (p Param) Contains(needle string) bool {
	for _, field := range p.Fields() {
		if strings.Contains(field, needle) {
			return true
		}
	}

	return false
}

func (p Param) String() string {
	return p.Name
}
