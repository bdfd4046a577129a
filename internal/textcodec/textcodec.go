package textcodec

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is the encoding assumed when none is configured.
const DefaultEncoding = "utf-8"

// ErrInvalidUTF8 reports UTF-8 input containing malformed byte sequences.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

var aliases = map[string]string{
	"":           "utf-8",
	"utf8":       "utf-8",
	"iso-8859-1": "latin1",
	"iso8859-1":  "latin1",
	"latin-1":    "latin1",
	"cp1252":     "windows-1252",
}

// Canonical maps an encoding name or alias to its canonical form.
// Unknown names are returned lowercased and trimmed.
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// Supported reports whether Decode understands the named encoding.
func Supported(name string) bool {
	_, ok := encodings[Canonical(name)]
	return ok
}

// Names lists the canonical encoding names in sorted order.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode converts data from the named encoding to a UTF-8 string. A leading
// UTF-8 byte order mark is stripped.
func Decode(data []byte, name string) (string, error) {
	canonical := Canonical(name)
	enc, ok := encodings[canonical]
	if !ok {
		return "", fmt.Errorf("unsupported encoding %q", name)
	}
	if canonical == "utf-8" && !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", canonical, err)
	}
	return string(out), nil
}
