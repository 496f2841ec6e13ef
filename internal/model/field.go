package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names a column that can be selected for display.
type Field string

// Selectable fields. Groups accept FieldGUID as an alias of FieldID and
// FieldName as an alias of FieldDescription.
const (
	FieldGUID           Field = "guid"
	FieldID             Field = "id"
	FieldName           Field = "name"
	FieldDataType       Field = "datatype"
	FieldDataCategory   Field = "datacategory"
	FieldGroup          Field = "group"
	FieldGroupID        Field = "groupid"
	FieldVisible        Field = "visible"
	FieldDescription    Field = "description"
	FieldUserModifiable Field = "usermodifiable"
	FieldLine           Field = "lineno"
)

// ColumnSeparator separates field names in a column list ("guid:name").
const ColumnSeparator = ":"

var (
	// DefaultParamColumns are shown when no param columns are selected.
	DefaultParamColumns = []Field{FieldGUID, FieldName, FieldDataType, FieldGroup, FieldLine}
	// DefaultGroupColumns are shown when no group columns are selected.
	DefaultGroupColumns = []Field{FieldID, FieldDescription, FieldLine}
)

var fieldHeaders = map[Field]string{
	FieldGUID:           "Guid",
	FieldID:             "Id",
	FieldName:           "Name",
	FieldDataType:       "Datatype",
	FieldDataCategory:   "Data Category",
	FieldGroup:          "Group",
	FieldGroupID:        "Group Id",
	FieldVisible:        "Visible",
	FieldDescription:    "Description",
	FieldUserModifiable: "User Modifiable",
	FieldLine:           "Line #",
}

type paramAccessor func(e Entries, p Param) string

type groupAccessor func(g Group) string

var paramAccessors = map[Field]paramAccessor{
	FieldGUID:         func(_ Entries, p Param) string { return p.GUID },
	FieldName:         func(_ Entries, p Param) string { return p.Name },
	FieldDataType:     func(_ Entries, p Param) string { return p.DataType },
	FieldDataCategory: func(_ Entries, p Param) string { return p.DataCategory },
	FieldGroup: func(e Entries, p Param) string {
		if group, ok := e.GroupOf(p); ok {
			return group.Description
		}

		return p.GroupID
	},
	FieldGroupID:        func(_ Entries, p Param) string { return p.GroupID },
	FieldVisible:        func(_ Entries, p Param) string { return p.Visible },
	FieldDescription:    func(_ Entries, p Param) string { return p.Description },
	FieldUserModifiable: func(_ Entries, p Param) string { return p.UserModifiable },
	FieldLine:           func(_ Entries, p Param) string { return strconv.Itoa(p.Line) },
}

var groupAccessors = map[Field]groupAccessor{
	FieldID:          func(g Group) string { return g.ID },
	FieldGUID:        func(g Group) string { return g.ID },
	FieldDescription: func(g Group) string { return g.Description },
	FieldName:        func(g Group) string { return g.Description },
	FieldLine:        func(g Group) string { return strconv.Itoa(g.Line) },
}

// Header returns the table header of the field.
func (f Field) Header() string {
	if header, ok := fieldHeaders[f]; ok {
		return header
	}

	return string(f)
}

// ParseColumns splits a column list such as "guid:name:lineno". An empty list
// yields nil so callers fall back to their defaults.
func ParseColumns(columns string) ([]Field, error) {
	columns = strings.TrimSpace(columns)
	if columns == "" {
		return nil, nil
	}

	parts := strings.Split(columns, ColumnSeparator)
	fields := make([]Field, 0, len(parts))

	for _, part := range parts {
		field := Field(strings.ToLower(strings.TrimSpace(part)))
		if _, ok := fieldHeaders[field]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, part)
		}

		fields = append(fields, field)
	}

	return fields, nil
}

// ValidateParamColumns fails for fields params do not expose.
func ValidateParamColumns(fields []Field) error {
	for _, field := range fields {
		if _, ok := paramAccessors[field]; !ok {
			return fmt.Errorf("%w for params: %q", ErrUnknownField, field)
		}
	}

	return nil
}

// ValidateGroupColumns fails for fields groups do not expose.
func ValidateGroupColumns(fields []Field) error {
	for _, field := range fields {
		if _, ok := groupAccessors[field]; !ok {
			return fmt.Errorf("%w for groups: %q", ErrUnknownField, field)
		}
	}

	return nil
}

// ParamValue returns the textual value of field for p. The group field shows
// the resolved group description, or the raw token when unresolved.
func (e Entries) ParamValue(p Param, field Field) (string, error) {
	accessor, ok := paramAccessors[field]
	if !ok {
		return "", fmt.Errorf("%w for params: %q", ErrUnknownField, field)
	}

	return accessor(e, p), nil
}

// GroupValue returns the textual value of field for g.
func GroupValue(g Group, field Field) (string, error) {
	accessor, ok := groupAccessors[field]
	if !ok {
		return "", fmt.Errorf("%w for groups: %q", ErrUnknownField, field)
	}

	return accessor(g), nil
}

// ParamRow returns the values of the selected fields for p.
func (e Entries) ParamRow(p Param, fields []Field) ([]string, error) {
	row := make([]string, 0, len(fields))

	for _, field := range fields {
		value, err := e.ParamValue(p, field)
		if err != nil {
			return nil, err
		}

		row = append(row, value)
	}

	return row, nil
}

// GroupRow returns the values of the selected fields for g.
func GroupRow(g Group, fields []Field) ([]string, error) {
	row := make([]string, 0, len(fields))

	for _, field := range fields {
		value, err := GroupValue(g, field)
		if err != nil {
			return nil, err
		}

		row = append(row, value)
	}

	return row, nil
}

// Headers returns the table headers of fields.
func Headers(fields []Field) []string {
	headers := make([]string, 0, len(fields))
	for _, field := range fields {
		headers = append(headers, field.Header())
	}

	return headers
}
