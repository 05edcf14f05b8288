package lexer

import "github.com/db47h/splex/token"

func isIdentStart(b int) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b int) bool {
	return isIdentStart(b) || isDigit(b)
}

// scanIdentifier scans an identifier/keyword/label starting after the
// first identifier-start byte has already been consumed and written to
// l.lit (spec.md §4.3.5).
func (l *Lexer) scanIdentifier(start loc) {
	for isIdentCont(l.cur.peek()) {
		l.lit.writeByte(byte(l.cur.next()))
	}

	name := l.cc.Intern(l.lit.bytes())

	if l.pp.MacroExpansion() && l.pp.EnterMacro(start, name) {
		l.lexedTokensOnLine = true
		l.emitNone()
		return
	}

	if kind := l.pp.FindKeyword(name); kind != token.NONE {
		l.emitKind(kind)
		return
	}

	if l.cur.peek() == ':' {
		l.cur.next()
		l.emitAtom(token.LABEL, name)
		return
	}

	l.emitAtom(token.NAME, name)
}
