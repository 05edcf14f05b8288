package lexer

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/db47h/splex/token"
)

// LoadBuffer reads all of r into a token.Buffer for path, stripping a
// leading UTF-8 byte-order mark if present. Source files are read in
// full up front rather than streamed (spec.md §1, §3 "SourceBuffer").
func LoadBuffer(path string, r io.Reader) (*token.Buffer, error) {
	tr := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	data, err := io.ReadAll(tr)
	if err != nil {
		return nil, err
	}
	return token.NewBuffer(path, data), nil
}
