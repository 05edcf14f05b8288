package lexer

import "github.com/db47h/splex/lexer/diag"

// escapeUnknown is the sentinel byte substituted for an unrecognized
// escape code (spec.md §4.3.2: "callers substitute ?").
const escapeUnknown = '?'

// readEscape decodes one escape sequence after a consumed backslash,
// returning the decoded byte. It corrects two defects the source exhibits
// (spec.md §9, open questions 2 and 3): the \x handler now actually
// returns its accumulated value, and the \ddd handler caps accumulation
// at three digits (matching a byte's worth of decimal precision) rather
// than running unbounded.
func (l *Lexer) readEscape() byte {
	c := l.cur.next()
	switch c {
	case eof:
		l.reportf(diag.UnknownEscapeCode)
		return escapeUnknown
	case '\\':
		return '\\'
	case 'a':
		return 7
	case 'b':
		return 8
	case 'e':
		return 27
	case 'f':
		return 12
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return 11
	case '\'', '"', '%':
		return byte(c)
	case 'x':
		var v uint64
		n := 0
		for n < 2 && isHexDigit(l.cur.peek()) {
			v = v*16 + hexVal(l.cur.peek())
			l.cur.next()
			n++
		}
		if l.cur.peek() == ';' {
			l.cur.next()
		}
		return byte(v)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v := uint64(c - '0')
		n := 1
		for n < 3 && isDigit(l.cur.peek()) {
			v = v*10 + uint64(l.cur.peek()-'0')
			l.cur.next()
			n++
		}
		if l.cur.peek() == ';' {
			l.cur.next()
		}
		return byte(v)
	default:
		l.reportf(diag.UnknownEscapeCode)
		return escapeUnknown
	}
}
