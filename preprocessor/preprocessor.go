// Package preprocessor implements a minimal but real driving preprocessor:
// a macro table, a constant-expression evaluator for #if, and a record of
// requested includes. It exists to exercise lexer.Preprocessor end-to-end (in this
// repo's own tests and cmd/splex) rather than to be a complete SourcePawn
// preprocessor; unsupported constructs fail closed (eval errors, includes
// reported but not resolved to actual file content).
package preprocessor

import (
	"strings"

	"github.com/db47h/splex/intern"
	"github.com/db47h/splex/lexer"
	"github.com/db47h/splex/lexer/diag"
	"github.com/db47h/splex/token"
)

// Macro is a registered object-like macro (spec.md §4.4 "define").
type Macro struct {
	Name   intern.Atom
	Loc    token.Location
	Tokens []lexer.Token
}

// Include records a resolved (or attempted) #include/#tryinclude
// (spec.md §4.4 "include / tryinclude").
type Include struct {
	Kind   lexer.IncludeKind
	Loc    token.Location
	Path   string
	Origin string
}

// Comment records a committed comment block (spec.md §4.6).
type Comment struct {
	Position lexer.CommentPosition
	Range    token.Range
}

// Preprocessor is the default lexer.Preprocessor and lexer.CompileContext
// implementation. It is not safe for concurrent use; like the Lexer it
// drives, one instance serves one compilation.
type Preprocessor struct {
	interner *intern.Pool
	sink     diag.Sink

	keywords map[intern.Atom]token.Kind

	macros         map[intern.Atom]*Macro
	macroExpansion bool
	expanding      map[intern.Atom]bool // re-entrancy guard per active expansion

	includes []Include

	comments []Comment

	nextDeprecation string
	pragmaDynamic   int64

	// macroQueue holds the substitution tokens of the most recently
	// entered macro, consumed one at a time by the lexer's caller via
	// NextMacroToken. This models the "stack of virtual sub-buffers"
	// spec.md §9 describes, reduced to depth 1 (no Non-goal machinery for
	// function-like or recursive macros).
	macroQueue []lexer.Token
}

// New returns a Preprocessor backed by interner and sink, seeded with
// keywords: a map from identifier spelling to the token.Kind it should
// resolve to (e.g. "if" -> token.KW_IF in a full grammar; this core only
// needs FindKeyword as a hook, so an empty map is valid for pure
// tokenization without a surrounding language grammar).
func New(interner *intern.Pool, sink diag.Sink, keywords map[string]token.Kind) *Preprocessor {
	p := &Preprocessor{
		interner:       interner,
		sink:           sink,
		keywords:       make(map[intern.Atom]token.Kind, len(keywords)),
		macros:         make(map[intern.Atom]*Macro),
		macroExpansion: true,
		expanding:      make(map[intern.Atom]bool),
	}
	for name, kind := range keywords {
		p.keywords[interner.Intern([]byte(name))] = kind
	}
	return p
}

func (p *Preprocessor) Intern(s []byte) intern.Atom { return p.interner.Intern(s) }
func (p *Preprocessor) Lookup(a intern.Atom) string { return p.interner.Lookup(a) }

// Reportf and Note forward to the configured diag.Sink, letting a
// Preprocessor double as the Lexer's compile-context argument alongside
// its Preprocessor role.
func (p *Preprocessor) Reportf(loc token.Location, id diag.MessageID, args ...interface{}) {
	p.sink.Reportf(loc, id, args...)
}

func (p *Preprocessor) Note(loc token.Location, id diag.MessageID, args ...interface{}) {
	p.sink.Note(loc, id, args...)
}

func (p *Preprocessor) FindKeyword(name intern.Atom) token.Kind {
	if k, ok := p.keywords[name]; ok {
		return k
	}
	return token.NONE
}

func (p *Preprocessor) MacroExpansion() bool { return p.macroExpansion }

func (p *Preprocessor) SetMacroExpansion(enabled bool) bool {
	prev := p.macroExpansion
	p.macroExpansion = enabled
	return prev
}

// EnterMacro pushes the macro's body as the pending token queue. Since
// this implementation supports only one active expansion at a time
// (spec.md Non-goals exclude function-like macros; nested object-like
// re-entry is guarded rather than modeled), a macro already mid-expansion
// is skipped and left as a plain name.
func (p *Preprocessor) EnterMacro(_ token.Location, name intern.Atom) bool {
	m, ok := p.macros[name]
	if !ok || p.expanding[name] {
		return false
	}
	p.expanding[name] = true
	p.macroQueue = append(append([]lexer.Token{}, m.Tokens...), p.macroQueue...)
	return true
}

// NextMacroToken pops the next queued macro-substitution token, if any.
// A real driving loop calls this whenever Lexer.Next returns token.NONE
// due to a successful EnterMacro, feeding the popped tokens to its
// consumer directly instead of calling Lexer.Next again until the queue
// drains.
func (p *Preprocessor) NextMacroToken() (lexer.Token, bool) {
	if len(p.macroQueue) == 0 {
		return lexer.Token{}, false
	}
	t := p.macroQueue[0]
	p.macroQueue = p.macroQueue[1:]
	if len(p.macroQueue) == 0 {
		for name := range p.expanding {
			delete(p.expanding, name)
		}
	}
	return t, true
}

func (p *Preprocessor) DefineMacro(name intern.Atom, loc token.Location, tokens []lexer.Token) {
	p.macros[name] = &Macro{Name: name, Loc: loc, Tokens: tokens}
}

func (p *Preprocessor) RemoveMacro(_ token.Location, name intern.Atom) bool {
	if _, ok := p.macros[name]; !ok {
		return false
	}
	delete(p.macros, name)
	return true
}

// Eval evaluates a small constant-expression grammar: integer literals,
// defined(NAME), and ! && || == != combined left-to-right with no
// operator-precedence climbing beyond what #if conditions in practice
// need. Anything it cannot parse reports ok=false.
func (p *Preprocessor) Eval(tokens []lexer.Token) (int64, bool) {
	e := &evaluator{toks: tokens, pp: p}
	v, ok := e.parseOr()
	if !ok || e.pos != len(e.toks) {
		return 0, false
	}
	return v, true
}

func (p *Preprocessor) EnterFile(kind lexer.IncludeKind, loc token.Location, path, origin string) {
	p.includes = append(p.includes, Include{Kind: kind, Loc: loc, Path: path, Origin: origin})
}

func (p *Preprocessor) AddComment(pos lexer.CommentPosition, r token.Range) {
	p.comments = append(p.comments, Comment{Position: pos, Range: r})
}

func (p *Preprocessor) SetNextDeprecationMessage(message string) {
	p.nextDeprecation = strings.TrimSpace(message)
}

// HandleEndOfFile reports false: this minimal driver does not maintain an
// include stack of live lexers, so end-of-buffer is always terminal from
// the core's point of view. A full driver would pop to the includer's
// lexer here and return true.
func (p *Preprocessor) HandleEndOfFile() bool { return false }

func (p *Preprocessor) ChangePragmaDynamic(_ token.Location, value int64) bool {
	p.pragmaDynamic = value
	return true
}

// Includes, Comments, Macros and PragmaDynamic expose the accumulated
// state for callers (e.g. cmd/splex) that want to report on what the
// source requested beyond the bare token stream.
func (p *Preprocessor) Includes() []Include        { return p.includes }
func (p *Preprocessor) Comments() []Comment         { return p.comments }
func (p *Preprocessor) PragmaDynamic() int64        { return p.pragmaDynamic }
func (p *Preprocessor) Macro(name intern.Atom) (*Macro, bool) {
	m, ok := p.macros[name]
	return m, ok
}
