package lexer

import (
	"github.com/db47h/splex/intern"
	"github.com/db47h/splex/token"
)

// Token is a single lexeme produced by the lexer. Only the fields that
// apply to Kind are meaningful; see spec.md §3 "Payload (by kind)".
type Token struct {
	Kind  token.Kind
	Range token.Range

	IntValue    uint64     // INTEGER_LITERAL, HEX_LITERAL, CHAR_LITERAL
	FloatValue  float64    // FLOAT_LITERAL
	Atom        intern.Atom // NAME, LABEL, STRING_LITERAL
	HasAtom     bool
}

// Start returns the token's starting location.
func (t *Token) Start() token.Location { return t.Range.Start }

// End returns the token's ending (exclusive) location.
func (t *Token) End() token.Location { return t.Range.End }

func (t *Token) setAtom(a intern.Atom) {
	t.Atom = a
	t.HasAtom = true
}
