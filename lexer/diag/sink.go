package diag

import (
	"fmt"
	"io"

	"github.com/db47h/splex/token"
)

// WriterSink is a Sink that formats each diagnostic as one line of text,
// in the "file:line:col: message" style of typical compiler output.
type WriterSink struct {
	W    io.Writer
	File *token.File
	n    int
}

// Count reports how many diagnostics (Reportf calls) have been written.
func (s *WriterSink) Count() int { return s.n }

func (s *WriterSink) Reportf(loc token.Location, id MessageID, args ...interface{}) {
	s.n++
	pos := s.File.Position(loc.Offset)
	fmt.Fprintf(s.W, "%s: %s%s\n", pos, id, formatArgs(id, args))
}

func (s *WriterSink) Note(loc token.Location, id MessageID, args ...interface{}) {
	pos := s.File.Position(loc.Offset)
	fmt.Fprintf(s.W, "%s: note: %s%s\n", pos, id, formatArgs(id, args))
}

// formatArgs renders a diagnostic's positional arguments. Ids with a
// known argument shape (spec.md §6) get a tailored format; anything else
// falls back to a generic ": v1, v2, ..." rendering.
func formatArgs(id MessageID, args []interface{}) string {
	if len(args) == 0 {
		return ""
	}
	switch id {
	case UnexpectedChar:
		if len(args) >= 2 {
			return fmt.Sprintf(": unexpected character %q (0x%02X)", args[0], args[1])
		}
	case UnknownDirective, UnknownPragma:
		return fmt.Sprintf(": %v", args[0])
	}
	return fmt.Sprintf(": %v", args)
}
