package lexer

import "github.com/db47h/splex/token"

// eof is returned by cursor.next once the underlying buffer is exhausted.
// It is distinct from any valid byte value.
const eof = -1

// cursor is a byte-oriented scanning position over a single token.Buffer,
// in the spirit of the teacher's ring-buffer reader, simplified since the
// whole buffer already lives in memory (spec.md §1: sources are read in
// full up front, not streamed).
type cursor struct {
	buf  *token.Buffer
	pos  int // offset of the next unread byte
	line int // current 1-based line number, for AddLine
	file *token.File
}

func newCursor(buf *token.Buffer, file *token.File) cursor {
	return cursor{buf: buf, line: 1, file: file}
}

// next returns the next byte and advances the cursor, or eof at end of
// buffer. It records line starts for \n, \r and bare \r (old Mac style),
// treating \r\n as a single line terminator (spec.md §4.1).
func (c *cursor) next() int {
	if c.pos >= len(c.buf.Data) {
		return eof
	}
	b := c.buf.Data[c.pos]
	c.pos++
	switch b {
	case '\n':
		c.line++
		c.file.AddLine(token.Pos(c.pos), c.line)
	case '\r':
		if c.pos < len(c.buf.Data) && c.buf.Data[c.pos] == '\n' {
			c.pos++
		}
		c.line++
		c.file.AddLine(token.Pos(c.pos), c.line)
	}
	return int(b)
}

// peek returns the next byte without consuming it. It never crosses a
// \r\n pair, so repeated peek calls are idempotent.
func (c *cursor) peek() int {
	if c.pos >= len(c.buf.Data) {
		return eof
	}
	return int(c.buf.Data[c.pos])
}

// peekAt returns the byte n positions ahead of the cursor (0 == peek),
// or eof if that position is past the end of the buffer.
func (c *cursor) peekAt(n int) int {
	if c.pos+n >= len(c.buf.Data) {
		return eof
	}
	return int(c.buf.Data[c.pos+n])
}

// match consumes the next byte if it equals b, reporting whether it did.
func (c *cursor) match(b byte) bool {
	if c.peek() == int(b) {
		c.next()
		return true
	}
	return false
}

// tokenPos returns the current byte offset as a token.Pos.
func (c *cursor) tokenPos() token.Pos {
	return token.Pos(c.pos)
}

func (c *cursor) loc() token.Location {
	return token.Location{Offset: c.tokenPos(), Line: c.line}
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.buf.Data)
}
