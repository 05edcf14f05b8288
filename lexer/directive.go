package lexer

import (
	"bytes"

	"github.com/db47h/splex/intern"
	"github.com/db47h/splex/lexer/diag"
	"github.com/db47h/splex/token"
)

// handleDirective is entered right after the line-leading '#' has been
// consumed (spec.md §4.4). Macro expansion is paused for the duration.
func (l *Lexer) handleDirective() {
	prevMacro := l.pp.SetMacroExpansion(false)
	defer l.pp.SetMacroExpansion(prevMacro)

	prevDirective := l.lexingForDirective
	l.lexingForDirective = true
	defer func() { l.lexingForDirective = prevDirective }()

	l.directiveLineConsumed = false

	at := l.litStartLoc
	name, ok := l.readDirectiveName()
	warnOnExtra := true
	if ok {
		warnOnExtra = l.dispatchDirective(at, name)
	} else {
		l.cc.Reportf(at, diag.BadDirectiveToken)
	}

	l.chewLineAfterDirective(warnOnExtra)
}

// readDirectiveName reads the directive keyword following '#' as a plain
// identifier, without interning (the set is fixed and small).
func (l *Lexer) readDirectiveName() (string, bool) {
	l.skipWhitespace()
	if !isIdentStart(l.cur.peek()) {
		return "", false
	}
	var b bytes.Buffer
	for isIdentCont(l.cur.peek()) {
		b.WriteByte(byte(l.cur.next()))
	}
	return b.String(), true
}

func (l *Lexer) dispatchDirective(at loc, name string) (warnOnExtra bool) {
	kind, known := token.Directives[name]
	if !known {
		l.cc.Reportf(at, diag.UnknownDirective, name)
		return true
	}
	switch kind {
	case token.M_DEFINE:
		l.handleDefine(at)
	case token.M_IF:
		return l.handleIf(at)
	case token.M_ELSE:
		l.handleElse(at)
	case token.M_ENDIF:
		l.handleEndif(at)
	case token.M_UNDEF:
		l.handleUndef(at)
	case token.M_ENDINPUT:
		l.handleEndinput()
	case token.M_INCLUDE:
		l.handleInclude(at, IncludeRequired)
	case token.M_TRYINCLUDE:
		l.handleInclude(at, IncludeOptional)
	case token.M_PRAGMA:
		l.handlePragma(at)
	}
	return true
}

func (l *Lexer) internIdentToken() (intern.Atom, bool) {
	l.skipWhitespace()
	if !isIdentStart(l.cur.peek()) {
		return 0, false
	}
	l.lit.reset()
	for isIdentCont(l.cur.peek()) {
		l.lit.writeByte(byte(l.cur.next()))
	}
	return l.cc.Intern(l.lit.bytes()), true
}

func (l *Lexer) handleDefine(at loc) {
	name, ok := l.internIdentToken()
	if !ok {
		l.cc.Reportf(at, diag.BadDirectiveToken)
		return
	}
	if l.cur.peek() == '(' {
		l.cc.Reportf(at, diag.MacroFunctionsUnsupported)
		l.finishLineInDirective()
		return
	}
	var body []Token
	for {
		kind := l.scanOnce()
		if kind == token.EOL {
			l.directiveLineConsumed = true
			break
		}
		if kind == token.EOF {
			break
		}
		if kind == token.COMMENT || kind == token.NONE {
			continue
		}
		body = append(body, l.tok)
	}
	l.pp.DefineMacro(name, at, body)
}

func (l *Lexer) handleIf(at loc) (warnOnExtra bool) {
	value, ok := l.pp.Eval(l.collectLineTokens())
	l.pushIf(at, value != 0)
	return ok
}

// collectLineTokens scans the remainder of the current directive line
// into a token slice, for handlers (#if, #pragma semicolon/dynamic) whose
// tail is a constant expression rather than a fixed grammar.
func (l *Lexer) collectLineTokens() []Token {
	var toks []Token
	for {
		kind := l.scanOnce()
		if kind == token.EOL {
			l.directiveLineConsumed = true
			break
		}
		if kind == token.EOF {
			break
		}
		if kind == token.COMMENT || kind == token.NONE {
			continue
		}
		toks = append(toks, l.tok)
	}
	return toks
}

func (l *Lexer) handleElse(at loc) {
	f := l.topIf()
	if f == nil {
		l.cc.Reportf(at, diag.ElseWithoutIf)
		return
	}
	if f.hasElse {
		l.cc.Reportf(at, diag.ElseDeclaredTwice)
		l.cc.Note(f.elseLoc, diag.PreviousLocation)
		return
	}
	f.hasElse = true
	f.elseLoc = at
	switch f.state {
	case ifIgnoring:
		f.state = ifActive
	case ifActive:
		f.state = ifInactive
	}
}

func (l *Lexer) handleEndif(at loc) {
	if _, ok := l.popIf(); !ok {
		l.cc.Reportf(at, diag.EndifWithoutIf)
	}
}

func (l *Lexer) handleUndef(at loc) {
	name, ok := l.internIdentToken()
	if !ok {
		l.cc.Reportf(at, diag.BadDirectiveToken)
		return
	}
	l.pp.RemoveMacro(at, name)
}

func (l *Lexer) handleEndinput() {
	l.ifs = l.ifs[:0]
	l.cur.pos = len(l.cur.buf.Data)
}

func (l *Lexer) handleInclude(at loc, kind IncludeKind) {
	l.skipWhitespace()
	open := l.cur.peek()
	var closer byte
	switch open {
	case '"':
		closer = '"'
	case '<':
		closer = '>'
	default:
		l.cc.Reportf(at, diag.BadIncludeSyntax)
		return
	}
	l.cur.next()
	l.lit.reset()
	for {
		c := l.cur.peek()
		if c == int(closer) {
			l.cur.next()
			break
		}
		if c == eof || c == '\n' || c == '\r' {
			l.cc.Reportf(at, diag.BadIncludeSyntax)
			break
		}
		l.lit.writeByte(byte(l.cur.next()))
	}
	path := l.lit.String()
	origin := ""
	if closer == '"' {
		origin = l.buf.Path
	}
	l.finishLineInDirective()
	l.pp.EnterFile(kind, at, path, origin)
}

func (l *Lexer) handlePragma(at loc) {
	name, ok := l.internIdentToken()
	if !ok {
		l.cc.Reportf(at, diag.PragmaMustHaveName)
		return
	}
	switch l.cc.Lookup(name) {
	case "deprecated":
		l.skipWhitespace()
		msg := l.readRestOfLineTrimmed()
		l.pp.SetNextDeprecationMessage(msg)
	case "newdecls":
		l.skipWhitespace()
		sub, ok := l.internIdentToken()
		if !ok {
			l.cc.Reportf(at, diag.BadPragmaNewdecls)
			return
		}
		switch l.cc.Lookup(sub) {
		case "required":
			l.opts.RequireNewdecls = true
		case "optional":
			l.opts.RequireNewdecls = false
		default:
			l.cc.Reportf(at, diag.BadPragmaNewdecls)
		}
	case "semicolon":
		l.pp.Eval(l.collectLineTokens())
	case "dynamic":
		value, _ := l.pp.Eval(l.collectLineTokens())
		l.cc.ChangePragmaDynamic(at, value)
	default:
		l.cc.Reportf(at, diag.UnknownPragma, l.cc.Lookup(name))
	}
}

// readRestOfLineTrimmed reads to end-of-line, trimming surrounding
// whitespace, for #pragma deprecated's message (spec.md §4.4).
func (l *Lexer) readRestOfLineTrimmed() string {
	var b bytes.Buffer
	for {
		c := l.cur.peek()
		if c == eof || c == '\n' || c == '\r' {
			break
		}
		b.WriteByte(byte(l.cur.next()))
	}
	return string(bytes.TrimSpace(b.Bytes()))
}

// finishLineInDirective fast-forwards to end-of-line without warning,
// used by directives (#include, malformed #define) that intentionally
// discard the remainder of the line themselves.
func (l *Lexer) finishLineInDirective() {
	for {
		c := l.cur.peek()
		if c == eof || c == '\n' || c == '\r' {
			return
		}
		l.cur.next()
	}
}

// chewLineAfterDirective consumes the remainder of the directive's
// physical line (spec.md §4.4, trailing paragraph), warning once if a
// non-comment token appears and warnOnExtra is set, then runs the
// conditional-skip engine if the new top-of-stack frame is not Active.
func (l *Lexer) chewLineAfterDirective(warnOnExtra bool) {
	if !l.directiveLineConsumed {
		prevSuppress := l.suppressErrors
		l.suppressErrors = true
		warned := false
		for {
			kind := l.scanOnce()
			if kind == token.EOL || kind == token.EOF {
				break
			}
			if kind == token.COMMENT || kind == token.NONE {
				continue
			}
			if warnOnExtra && !warned {
				// Reported via cc directly, bypassing the suppress-errors
				// flag set above: pp_extra_characters must survive even
				// though the offending token's own lexical errors do not.
				l.cc.Reportf(l.litStartLoc, diag.PPExtraCharacters)
				warned = true
			}
		}
		l.suppressErrors = prevSuppress
	}
	if !l.ifStackActive() {
		l.skipInactiveRegion()
	}
}

// skipInactiveRegion implements the conditional-skip engine (spec.md
// §4.5): fast-forward line by line, recognizing only if/else/endif,
// until the top frame becomes Active or the stack empties or EOF.
func (l *Lexer) skipInactiveRegion() {
	for !l.ifStackActive() {
		if l.cur.atEOF() {
			return
		}
		l.skipToLineStart()
		if l.cur.atEOF() {
			return
		}
		if l.firstNonSpaceIsHash() {
			l.handleRestrictedDirective()
			continue
		}
		l.finishLineInDirective()
		l.consumeLineBreak()
	}
}

// skipToLineStart consumes the line break left behind by the previous
// line's scan, if any, without re-entering directive mode.
func (l *Lexer) skipToLineStart() {
	l.consumeLineBreak()
}

func (l *Lexer) consumeLineBreak() {
	c := l.cur.peek()
	if c == '\n' || c == '\r' {
		l.cur.next()
	}
}

// firstNonSpaceIsHash consumes horizontal whitespace at the start of the
// current line and reports whether the next byte is '#', consuming the
// '#' if so; any other byte is left in place (spec.md §4.5).
func (l *Lexer) firstNonSpaceIsHash() bool {
	for l.cur.peek() == ' ' || l.cur.peek() == '\t' || l.cur.peek() == '\f' {
		l.cur.next()
	}
	if l.cur.peek() == '#' {
		l.cur.next()
		return true
	}
	return false
}

// handleRestrictedDirective is the skip-engine's directive handler: it
// understands only if/else/endif, pushing Dead frames for #if nested
// inside an already-inactive region (spec.md §4.5, §9 "If-stack
// representation").
func (l *Lexer) handleRestrictedDirective() {
	at := l.cur.loc()
	name, ok := l.readDirectiveName()
	if !ok {
		l.finishLineInDirective()
		l.consumeLineBreak()
		return
	}
	switch name {
	case "if":
		l.finishLineInDirective()
		l.pushIf(at, false)
	case "else":
		if f := l.topIf(); f != nil {
			switch f.state {
			case ifIgnoring:
				f.state = ifActive
			case ifActive:
				f.state = ifInactive
			}
		}
		l.finishLineInDirective()
	case "endif":
		l.popIf()
		l.finishLineInDirective()
	default:
		l.finishLineInDirective()
	}
	l.consumeLineBreak()
}

// checkIfStackAtEndOfFile emits one diagnostic per unterminated if-frame
// remaining at end-of-buffer (spec.md §3 invariants, §4.5).
func (l *Lexer) checkIfStackAtEndOfFile() {
	for _, f := range l.ifs {
		if f.hasElse {
			l.cc.Reportf(f.elseLoc, diag.UnterminatedElse)
		} else {
			l.cc.Reportf(f.first, diag.UnterminatedIf)
		}
	}
	l.ifs = l.ifs[:0]
}
