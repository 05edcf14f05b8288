package lexer

import (
	"github.com/db47h/splex/lexer/diag"
	"github.com/db47h/splex/token"
)

// scanOnce runs the main dispatch once (spec.md §4.2) and returns the
// resulting kind, with l.tok populated. It is the leaf the public Next
// loops over to apply comment attribution and directive/macro NONE
// semantics.
func (l *Lexer) scanOnce() token.Kind {
	l.skipWhitespace()
	l.startToken()

	c := l.cur.peek()

	switch {
	case c == eof:
		return l.atEndOfFile()
	case c == '\n' || c == '\r':
		// Only reachable while lexing_for_directive: skipWhitespace does
		// not consume line terminators in that mode, since the directive
		// handler needs to see end-of-line explicitly (spec.md §4.1, §4.2).
		l.cur.next()
		return l.emitEOL()
	case c == '#' && !l.lexedTokensOnLine && !l.lexingForDirective:
		l.cur.next()
		l.handleDirective()
		return l.emitNone()
	}

	l.cur.next()
	switch c {
	case ';':
		return l.emitKind(token.SEMICOLON)
	case '{':
		return l.emitKind(token.LBRACE)
	case '}':
		return l.emitKind(token.RBRACE)
	case '(':
		return l.emitKind(token.LPAREN)
	case ')':
		return l.emitKind(token.RPAREN)
	case '[':
		return l.emitKind(token.LBRACKET)
	case ']':
		return l.emitKind(token.RBRACKET)
	case '~':
		return l.emitKind(token.TILDE)
	case '?':
		return l.emitKind(token.QMARK)
	case ':':
		return l.emitKind(token.COLON)
	case ',':
		return l.emitKind(token.COMMA)
	case '.':
		if l.cur.peek() == '.' && l.cur.peekAt(1) == '.' {
			l.cur.next()
			l.cur.next()
			return l.emitKind(token.ELLIPSES)
		}
		return l.emitKind(token.DOT)
	case '+':
		if l.cur.match('=') {
			return l.emitKind(token.ASSIGN_ADD)
		}
		if l.cur.match('+') {
			return l.emitKind(token.INCREMENT)
		}
		return l.emitKind(token.PLUS)
	case '-':
		if l.cur.match('=') {
			return l.emitKind(token.ASSIGN_SUB)
		}
		if l.cur.match('-') {
			return l.emitKind(token.DECREMENT)
		}
		return l.emitKind(token.MINUS)
	case '*':
		if l.cur.match('=') {
			return l.emitKind(token.ASSIGN_MUL)
		}
		return l.emitKind(token.STAR)
	case '/':
		return l.scanSlash()
	case '%':
		if l.cur.match('=') {
			return l.emitKind(token.ASSIGN_MOD)
		}
		return l.emitKind(token.PERCENT)
	case '&':
		if l.cur.match('=') {
			return l.emitKind(token.ASSIGN_BITAND)
		}
		if l.cur.match('&') {
			return l.emitKind(token.AND)
		}
		return l.emitKind(token.BITAND)
	case '|':
		if l.cur.match('=') {
			return l.emitKind(token.ASSIGN_BITOR)
		}
		if l.cur.match('|') {
			return l.emitKind(token.OR)
		}
		return l.emitKind(token.BITOR)
	case '^':
		if l.cur.match('=') {
			return l.emitKind(token.ASSIGN_BITXOR)
		}
		return l.emitKind(token.BITXOR)
	case '!':
		if l.cur.match('=') {
			return l.emitKind(token.NOTEQUALS)
		}
		return l.emitKind(token.NOT)
	case '=':
		if l.cur.match('=') {
			return l.emitKind(token.EQUALS)
		}
		return l.emitKind(token.ASSIGN)
	case '<':
		if l.cur.match('=') {
			return l.emitKind(token.LE)
		}
		if l.cur.match('<') {
			if l.cur.match('=') {
				return l.emitKind(token.ASSIGN_SHL)
			}
			return l.emitKind(token.SHL)
		}
		return l.emitKind(token.LT)
	case '>':
		if l.cur.match('=') {
			return l.emitKind(token.GE)
		}
		if l.cur.match('>') {
			if l.cur.match('>') {
				if l.cur.match('=') {
					return l.emitKind(token.ASSIGN_USHR)
				}
				return l.emitKind(token.USHR)
			}
			return l.emitKind(token.SHR)
		}
		return l.emitKind(token.GT)
	case '\'':
		l.scanChar()
		return l.tok.Kind
	case '"':
		l.scanString()
		return l.tok.Kind
	}

	if isDigit(c) {
		l.scanNumber(c)
		return l.tok.Kind
	}
	if isIdentStart(c) {
		l.lit.writeByte(byte(c))
		l.scanIdentifier(l.litStartLoc)
		return l.tok.Kind
	}

	if !l.lexingForDirective {
		l.reportf(diag.UnexpectedChar, c, c)
	}
	return l.emitUnknown()
}

// skipWhitespace consumes space, tab and form feed. While
// lexing_for_directive it stops at a line terminator so the directive
// handler can observe an explicit end-of-line token; otherwise it
// consumes line terminators too, since EOL is never a real token outside
// directive mode (spec.md §4.1, §4.2).
func (l *Lexer) skipWhitespace() {
	for {
		switch l.cur.peek() {
		case ' ', '\t', '\f':
			l.cur.next()
		case '\n', '\r':
			if l.lexingForDirective {
				return
			}
			l.cur.next()
			// A fresh line starts with no tokens on it yet, so a
			// following '#' is eligible to introduce a directive again
			// (spec.md §4.1, §4.2).
			l.lexedTokensOnLine = false
		default:
			return
		}
	}
}

// scanSlash disambiguates /, /=, and the two comment forms (spec.md
// §4.2 table, "/" row).
func (l *Lexer) scanSlash() token.Kind {
	switch l.cur.peek() {
	case '=':
		l.cur.next()
		return l.emitKind(token.ASSIGN_DIV)
	case '/':
		l.cur.next()
		for l.cur.peek() != eof && l.cur.peek() != '\n' && l.cur.peek() != '\r' {
			l.cur.next()
		}
		return l.emitKind(token.COMMENT)
	case '*':
		l.cur.next()
		for {
			if l.cur.peek() == eof {
				l.reportf(diag.UnterminatedComment)
				break
			}
			if l.cur.peek() == '*' && l.cur.peekAt(1) == '/' {
				l.cur.next()
				l.cur.next()
				break
			}
			l.cur.next()
		}
		return l.emitKind(token.COMMENT)
	default:
		return l.emitKind(token.SLASH)
	}
}

// atEndOfFile implements spec.md §4.2's '\0' row: inside a directive it
// is an implicit end-of-line; otherwise the preprocessor gets first
// refusal via HandleEndOfFile before a real EOF is emitted.
func (l *Lexer) atEndOfFile() token.Kind {
	if l.lexingForDirective {
		return l.emitEOL()
	}
	if l.pp.HandleEndOfFile() {
		return l.emitNone()
	}
	l.checkIfStackAtEndOfFile()
	return l.emitEOF()
}
