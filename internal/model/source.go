package model

// Path represents a file system path.
type Path string

// Encoding names the text encoding of a shared parameter file (e.g. "utf-8",
// "utf-16le", "windows-1252"). The empty value means the default encoding.
type Encoding string

// RecordKind identifies the leading tag of a row in a shared parameter file.
type RecordKind string

const (
	// KindGroup tags a parameter group row.
	KindGroup RecordKind = "GROUP"
	// KindParam tags a parameter definition row.
	KindParam RecordKind = "PARAM"
	// KindMeta tags the file format version row.
	KindMeta RecordKind = "META"
)

// Field counts that follow the tag of each record kind.
const (
	GroupFieldCount = 2
	ParamFieldCount = 8
	MetaFieldCount  = 2
)

// Meta holds the format version declared by a META row.
type Meta struct {
	Version    string `yaml:"version"`
	MinVersion string `yaml:"min_version"`
}

// WriterMeta is the format version emitted when entries are written back.
var WriterMeta = Meta{Version: "2", MinVersion: "1"}
