package adapter

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding m.Encoding = "utf-8"

// LookupEncoding resolves an encoding name using the WHATWG label index.
func LookupEncoding(name m.Encoding) (encoding.Encoding, error) {
	label := normalizeEncoding(name)

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", m.ErrUnknownEncoding, name)
	}

	return enc, nil
}

// NewDecodingReader returns a reader producing UTF-8 text from r. A UTF-8 or
// UTF-16 byte order mark takes precedence over the named encoding.
func NewDecodingReader(r io.Reader, name m.Encoding) (io.Reader, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}

	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// NewEncodingWriter returns a writer encoding UTF-8 text into w. UTF-16
// output starts with a byte order mark, as Revit expects. The returned writer
// must be closed to flush pending bytes.
func NewEncodingWriter(w io.Writer, name m.Encoding) (io.WriteCloser, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}

	switch label := normalizeEncoding(name); {
	case label == "utf-16be" || label == "unicodefffe":
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case strings.HasPrefix(label, "utf-16") || label == "unicode" || label == "ucs-2":
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	}

	return transform.NewWriter(w, enc.NewEncoder()), nil
}

func normalizeEncoding(name m.Encoding) string {
	label := strings.ToLower(strings.TrimSpace(string(name)))
	if label == "" {
		return string(DefaultEncoding)
	}

	return label
}
