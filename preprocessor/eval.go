package preprocessor

import (
	"github.com/db47h/splex/lexer"
	"github.com/db47h/splex/token"
)

// evaluator is a tiny recursive-descent parser over a fixed token slice,
// covering the subset of constant expressions #if conditions in practice
// use: defined(NAME), integer/hex literals, unary !, and
// && || == != combined without full C precedence (each level binds
// tighter than the one above it, left-associative).
type evaluator struct {
	toks []lexer.Token
	pos  int
	pp   *Preprocessor
}

func (e *evaluator) peek() (lexer.Token, bool) {
	if e.pos >= len(e.toks) {
		return lexer.Token{}, false
	}
	return e.toks[e.pos], true
}

func (e *evaluator) next() (lexer.Token, bool) {
	t, ok := e.peek()
	if ok {
		e.pos++
	}
	return t, ok
}

func (e *evaluator) parseOr() (int64, bool) {
	v, ok := e.parseAnd()
	if !ok {
		return 0, false
	}
	for {
		t, ok := e.peek()
		if !ok || t.Kind != token.OR {
			return v, true
		}
		e.next()
		rhs, ok := e.parseAnd()
		if !ok {
			return 0, false
		}
		v = boolToInt(v != 0 || rhs != 0)
	}
}

func (e *evaluator) parseAnd() (int64, bool) {
	v, ok := e.parseEquality()
	if !ok {
		return 0, false
	}
	for {
		t, ok := e.peek()
		if !ok || t.Kind != token.AND {
			return v, true
		}
		e.next()
		rhs, ok := e.parseEquality()
		if !ok {
			return 0, false
		}
		v = boolToInt(v != 0 && rhs != 0)
	}
}

func (e *evaluator) parseEquality() (int64, bool) {
	v, ok := e.parseUnary()
	if !ok {
		return 0, false
	}
	for {
		t, ok := e.peek()
		if !ok || (t.Kind != token.EQUALS && t.Kind != token.NOTEQUALS) {
			return v, true
		}
		e.next()
		rhs, ok := e.parseUnary()
		if !ok {
			return 0, false
		}
		if t.Kind == token.EQUALS {
			v = boolToInt(v == rhs)
		} else {
			v = boolToInt(v != rhs)
		}
	}
}

func (e *evaluator) parseUnary() (int64, bool) {
	t, ok := e.peek()
	if ok && t.Kind == token.NOT {
		e.next()
		v, ok := e.parseUnary()
		if !ok {
			return 0, false
		}
		return boolToInt(v == 0), true
	}
	return e.parsePrimary()
}

func (e *evaluator) parsePrimary() (int64, bool) {
	t, ok := e.next()
	if !ok {
		return 0, false
	}
	switch t.Kind {
	case token.INTEGER_LITERAL, token.HEX_LITERAL:
		return int64(t.IntValue), true
	case token.LPAREN:
		v, ok := e.parseOr()
		if !ok {
			return 0, false
		}
		if close, ok := e.next(); !ok || close.Kind != token.RPAREN {
			return 0, false
		}
		return v, true
	case token.NAME:
		if e.pp.Lookup(t.Atom) == "defined" {
			return e.parseDefined()
		}
		return 0, true // unknown identifier evaluates to 0, not an error
	}
	return 0, false
}

func (e *evaluator) parseDefined() (int64, bool) {
	paren := false
	if t, ok := e.peek(); ok && t.Kind == token.LPAREN {
		e.next()
		paren = true
	}
	name, ok := e.next()
	if !ok || name.Kind != token.NAME {
		return 0, false
	}
	if paren {
		if close, ok := e.next(); !ok || close.Kind != token.RPAREN {
			return 0, false
		}
	}
	_, defined := e.pp.Macro(name.Atom)
	return boolToInt(defined), true
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
