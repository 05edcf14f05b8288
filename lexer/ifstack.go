package lexer

import "github.com/db47h/splex/token"

// ifState is the state of one #if/#else/#endif frame (spec.md §3,
// "IfContext stack").
type ifState int

const (
	// ifActive: branch currently selected; tokens pass through.
	ifActive ifState = iota
	// ifInactive: branch currently unselected but a sibling was active;
	// tokens are skipped.
	ifInactive
	// ifIgnoring: no branch yet taken; waiting for #else.
	ifIgnoring
	// ifDead: inside an outer inactive region; this frame tracks nesting
	// only and must never be conflated with ifInactive (spec.md §9).
	ifDead
)

type ifFrame struct {
	first   token.Location
	state   ifState
	elseLoc token.Location
	hasElse bool
}

// ifStackActive reports whether the top of the stack (if any) is in Active state.
// An empty stack is considered active: there is no enclosing directive.
func (l *Lexer) ifStackActive() bool {
	if len(l.ifs) == 0 {
		return true
	}
	return l.ifs[len(l.ifs)-1].state == ifActive
}

func (l *Lexer) pushIf(first token.Location, active bool) {
	st := ifIgnoring
	if !l.ifStackActive() {
		st = ifDead
	} else if active {
		st = ifActive
	}
	l.ifs = append(l.ifs, ifFrame{first: first, state: st})
}

func (l *Lexer) popIf() (ifFrame, bool) {
	if len(l.ifs) == 0 {
		var z ifFrame
		return z, false
	}
	f := l.ifs[len(l.ifs)-1]
	l.ifs = l.ifs[:len(l.ifs)-1]
	return f, true
}

func (l *Lexer) topIf() *ifFrame {
	if len(l.ifs) == 0 {
		return nil
	}
	return &l.ifs[len(l.ifs)-1]
}
