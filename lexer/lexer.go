// Package lexer implements the SourcePawn-dialect lexical analyzer with
// integrated preprocessor interleaving.
//
// The design follows the teacher's state-function lexer (github.com/db47h/lex)
// in spirit: a single Lexer instance owns a cursor over one buffer and a
// public Next method that runs the scan to completion for one token at a
// time. Unlike the teacher, there is no asynchronous queue: this grammar is
// fixed and does not need a customizable token-search tree, so dispatch is
// a direct set of Go methods mirroring the source compiler's scan()
// function, per spec.md §9's dispatch guidance.
package lexer

import (
	"github.com/db47h/splex/intern"
	"github.com/db47h/splex/lexer/diag"
	"github.com/db47h/splex/token"
)

// loc is a convenience alias used throughout the literal sub-scanners.
type loc = token.Location

// compileContext bundles the diagnostic sink and interning pool the lexer
// consumes from outside (spec.md §1 "out of scope": the surrounding
// compile context). It is satisfied by any type implementing both
// interfaces; diag.Sink and CompileContext are kept separate so a minimal
// test harness can implement just what it needs.
type compileContext interface {
	diag.Sink
	CompileContext
}

// Lexer holds all mutable state for scanning one source buffer (spec.md
// §3 "Cursor state", "LiteralBuffer", "IfContext stack"). It is
// single-threaded and non-reentrant (spec.md §5): one instance processes
// one buffer, start to end-of-file.
type Lexer struct {
	buf  *token.Buffer
	file *token.File
	cur  cursor

	cc compileContext
	pp Preprocessor

	opts Options

	lit         litBuf
	litStartLoc loc
	ifs         []ifFrame

	lexedTokensOnLine  bool
	lexingForDirective bool
	suppressErrors     bool

	// directiveLineConsumed is set when a directive's own handler has
	// already drained its line through a real (consumed) EOL, so
	// chewLineAfterDirective must not scan again and swallow the next
	// line's tokens as bogus trailing garbage.
	directiveLineConsumed bool

	tok Token
}

// New creates a Lexer over buf, reporting diagnostics and consulting the
// macro table through cc and pp respectively. file is the position
// registry the caller uses to translate Token ranges back to
// filename:line:column; it must have been created for buf's path (e.g.
// via token.NewFile(buf.Path)).
func New(buf *token.Buffer, file *token.File, cc interface {
	diag.Sink
	CompileContext
}, pp Preprocessor, opts ...Option) *Lexer {
	l := &Lexer{
		buf:  buf,
		file: file,
		cc:   cc,
		pp:   pp,
	}
	l.cur = newCursor(buf, file)
	for _, o := range opts {
		o(&l.opts)
	}
	return l
}

// Options returns the lexer's current option set, e.g. to propagate
// RequireNewdecls to a child lexer created for an #include'd buffer.
func (l *Lexer) Options() Options {
	return l.opts
}

// Next scans and returns the next token (spec.md §4.7, "Entry contract").
// The returned Token is owned by the Lexer and is only valid until the
// next call to Next.
func (l *Lexer) Next() *Token {
	for {
		priorLexedOnLine := l.lexedTokensOnLine
		kind := l.scanOnce()

		if kind != token.COMMENT {
			l.updateLineFlag(kind)
			return &l.tok
		}

		if !l.opts.TraceComments || l.lexingForDirective {
			continue
		}
		if priorLexedOnLine {
			return l.collectTailComments()
		}
		return l.collectFrontComments()
	}
}

// updateLineFlag maintains lexedTokensOnLine per spec.md §3: true exactly
// when a line-first '#' would not begin a directive, i.e. once any
// non-comment, non-directive, non-sentinel token has been produced since
// the last line break.
func (l *Lexer) updateLineFlag(kind token.Kind) {
	switch kind {
	case token.NONE, token.EOF, token.EOL, token.COMMENT:
		return
	default:
		if kind >= token.M_DEFINE {
			return
		}
		l.lexedTokensOnLine = true
	}
}

func (l *Lexer) startToken() {
	l.litStartLoc = l.cur.loc()
	l.lit.reset()
}

func (l *Lexer) emitKind(k token.Kind) token.Kind {
	l.tok = Token{Kind: k, Range: token.Range{Start: l.litStartLoc, End: l.cur.loc()}}
	return k
}

func (l *Lexer) emitInt(k token.Kind, v uint64) token.Kind {
	l.tok = Token{Kind: k, Range: token.Range{Start: l.litStartLoc, End: l.cur.loc()}, IntValue: v}
	return k
}

func (l *Lexer) emitFloat(v float64) token.Kind {
	l.tok = Token{Kind: token.FLOAT_LITERAL, Range: token.Range{Start: l.litStartLoc, End: l.cur.loc()}, FloatValue: v}
	return token.FLOAT_LITERAL
}

func (l *Lexer) emitAtom(k token.Kind, a intern.Atom) token.Kind {
	t := Token{Kind: k, Range: token.Range{Start: l.litStartLoc, End: l.cur.loc()}}
	t.setAtom(a)
	l.tok = t
	return k
}

func (l *Lexer) emitString(b []byte) token.Kind {
	a := l.cc.Intern(b)
	return l.emitAtom(token.STRING_LITERAL, a)
}

func (l *Lexer) emitNone() token.Kind {
	return l.emitKind(token.NONE)
}

func (l *Lexer) emitEOF() token.Kind {
	return l.emitKind(token.EOF)
}

func (l *Lexer) emitEOL() token.Kind {
	return l.emitKind(token.EOL)
}

func (l *Lexer) emitUnknown() token.Kind {
	return l.emitKind(token.UNKNOWN)
}

func (l *Lexer) reportf(id diag.MessageID, args ...interface{}) {
	if l.suppressErrors {
		return
	}
	l.cc.Reportf(l.litStartLoc, id, args...)
}
