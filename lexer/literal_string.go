package lexer

import (
	"github.com/db47h/splex/lexer/diag"
	"github.com/db47h/splex/token"
)

// scanChar scans a character literal after the opening ' has been
// consumed (spec.md §4.3.3).
func (l *Lexer) scanChar() {
	if l.cur.peek() == '\'' {
		l.cur.next()
		l.reportf(diag.InvalidCharLiteral)
		l.emitUnknown()
		return
	}

	var v byte
	if l.cur.peek() == '\\' {
		l.cur.next()
		v = l.readEscape()
	} else {
		c := l.cur.next()
		if c == eof {
			l.reportf(diag.InvalidCharLiteral)
			l.emitUnknown()
			return
		}
		v = byte(c)
	}

	switch l.cur.peek() {
	case '\'':
		l.cur.next()
	case '"':
		// Source quirk: a stray " where ' was expected is assumed to be a
		// typo and the token is kept without backing up (spec.md §4.3.3).
		l.cur.next()
	default:
		l.reportf(diag.BadCharTerminator)
	}

	l.emitInt(token.CHAR_LITERAL, uint64(v))
}

// scanString scans a string literal after the opening " has been
// consumed (spec.md §4.3.4).
func (l *Lexer) scanString() {
	l.lit.reset()
	for {
		c := l.cur.peek()
		switch {
		case c == '"':
			l.cur.next()
			l.emitString(l.lit.bytes())
			return
		case c == eof || c == '\n' || c == '\r':
			l.reportf(diag.UnterminatedString)
			l.emitString(l.lit.bytes())
			return
		case c == '\\':
			l.cur.next()
			l.lit.writeByte(l.readEscape())
		default:
			l.cur.next()
			l.lit.writeByte(byte(c))
		}
	}
}
