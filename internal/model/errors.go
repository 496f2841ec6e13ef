package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is matched by every *MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownField is returned for column names no accessor exists for.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownSortKey is returned for unsupported sort keys.
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrUnknownEncoding is returned for encoding names that cannot be resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrInvalidPattern is returned when a search pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrOutputExists is returned when an output file would be overwritten.
	ErrOutputExists = errors.New("output file already exists")
)

// MalformedRecordError reports a GROUP or PARAM row with too few fields.
type MalformedRecordError struct {
	Line   int
	Kind   RecordKind
	Fields int
}

func (e *MalformedRecordError) Error() string {
	want := GroupFieldCount
	if e.Kind == KindParam {
		want = ParamFieldCount
	}

	return fmt.Sprintf("line %d: %s record has %d fields, want %d", e.Line, e.Kind, e.Fields, want)
}

// Is makes errors.Is(err, ErrMalformedRecord) match.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
