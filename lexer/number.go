package lexer

import (
	"math"
	"math/bits"

	"github.com/db47h/splex/lexer/diag"
	"github.com/db47h/splex/token"
)

// isDigit, isHexDigit mirror the teacher's state package's digit-class
// helpers (db47h/lex/state), specialized to the byte cursor used here.
func isDigit(b int) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b int) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b int) uint64 {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0')
	case b >= 'a' && b <= 'f':
		return uint64(b-'a') + 10
	default:
		return uint64(b-'A') + 10
	}
}

// accumulator performs checked uint64 multiply-then-add, matching the
// source's overflow-detection idiom (TryUint64Multiply/TryUint64Add)
// without resorting to math/big (spec.md §4.3.1: "result is a 64-bit
// unsigned integer", a stated Non-goal for arbitrary precision).
type accumulator struct {
	v        uint64
	overflow bool
}

func (a *accumulator) add(base, digit uint64) {
	if a.overflow {
		return
	}
	hi, lo := bits.Mul64(a.v, base)
	if hi != 0 {
		a.overflow = true
		return
	}
	sum := lo + digit
	if sum < lo {
		a.overflow = true
		return
	}
	a.v = sum
}

// scanNumber scans an integer, hex, or float literal (spec.md §4.3.1).
// The cursor is positioned just past the leading digit; callers pass
// that digit explicitly since it was consumed by the dispatcher.
func (l *Lexer) scanNumber(first int) {
	acc := accumulator{}
	isZero := first == '0'

	if isZero && (l.cur.peek() == 'x' || l.cur.peek() == 'X') {
		l.cur.next() // consume x/X
		sawDigit := false
		for {
			p := l.cur.peek()
			if isHexDigit(p) {
				l.cur.next()
				sawDigit = true
				// spec.md §9 open question #1: the source accumulates hex
				// digits with *10, almost certainly a defect. This
				// implementation uses the correct base 16 and documents
				// the deviation (see DESIGN.md).
				acc.add(16, hexVal(p))
				continue
			}
			if p == '_' {
				l.cur.next()
				continue
			}
			break
		}
		_ = sawDigit
		if acc.overflow {
			l.reportf(diag.IntLiteralOverflow)
		}
		l.emitInt(token.HEX_LITERAL, acc.v)
		return
	}

	acc.add(10, uint64(first-'0'))
	for {
		p := l.cur.peek()
		if isDigit(p) {
			l.cur.next()
			acc.add(10, uint64(p-'0'))
			continue
		}
		if p == '_' {
			l.cur.next()
			continue
		}
		break
	}

	if l.cur.peek() == '.' && l.cur.peekAt(1) != '.' {
		l.cur.next() // consume '.'
		if acc.overflow {
			l.reportf(diag.IntLiteralOverflow)
		}
		l.scanFloat(float64(acc.v))
		return
	}

	if acc.overflow {
		l.reportf(diag.IntLiteralOverflow)
	}
	l.emitInt(token.INTEGER_LITERAL, acc.v)
}

// scanFloat continues a float literal after the decimal point has been
// consumed, with intPart already computed (spec.md §4.3.1).
func (l *Lexer) scanFloat(intPart float64) {
	frac := 0.0
	div := 1.0
	sawDigit := false
	for isDigit(l.cur.peek()) {
		d := l.cur.next()
		frac = frac*10 + float64(d-'0')
		div *= 10
		sawDigit = true
	}
	if !sawDigit {
		l.reportf(diag.ExpectedDigitForFloat)
	}
	value := intPart + frac/div

	if l.cur.peek() == 'e' || l.cur.peek() == 'E' {
		l.cur.next()
		neg := false
		if l.cur.peek() == '-' || l.cur.peek() == '+' {
			neg = l.cur.peek() == '-'
			l.cur.next()
		}
		exp := 0
		sawExpDigit := false
		for isDigit(l.cur.peek()) {
			d := l.cur.next()
			exp = exp*10 + (d - '0')
			sawExpDigit = true
		}
		if !sawExpDigit {
			l.reportf(diag.ExpectedDigitForFloat)
		}
		if neg {
			exp = -exp
		}
		value *= math.Pow(10, float64(exp))
	}

	l.emitFloat(value)
}
