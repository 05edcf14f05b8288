package lexer

import (
	"github.com/db47h/splex/intern"
	"github.com/db47h/splex/token"
)

// IncludeKind distinguishes #include from #tryinclude.
type IncludeKind int

const (
	IncludeRequired IncludeKind = iota
	IncludeOptional
)

// CommentPosition classifies a comment block relative to the token it was
// attributed to. See spec.md §4.6.
type CommentPosition int

const (
	CommentFront CommentPosition = iota
	CommentTail
)

// Preprocessor is the set of hooks the lexer core consumes from its driving
// preprocessor. It is an external collaborator (spec.md §1): the macro
// table, #if expression evaluator, and include-path search all live on the
// other side of this interface. See package preprocessor for a concrete,
// minimal implementation used in this repo's own tests and cmd/splex.
type Preprocessor interface {
	// FindKeyword resolves an interned identifier to a keyword token kind,
	// or token.NONE if it is an ordinary identifier.
	FindKeyword(name intern.Atom) token.Kind

	// MacroExpansion reports whether object-like macro expansion is
	// currently enabled. The lexer both reads and temporarily disables
	// this flag (e.g. while collecting a macro body or evaluating #undef's
	// argument), via SetMacroExpansion.
	MacroExpansion() bool

	// SetMacroExpansion toggles macro expansion, returning the previous
	// value so callers can restore it.
	SetMacroExpansion(enabled bool) (previous bool)

	// EnterMacro is called when an identifier is seen while macro
	// expansion is enabled. Returning true means the preprocessor has
	// pushed the macro's substitution as a virtual sub-buffer and the
	// lexer should yield token.NONE without otherwise producing a token.
	EnterMacro(loc token.Location, name intern.Atom) bool

	// DefineMacro registers an object-like macro's replacement token list.
	DefineMacro(name intern.Atom, loc token.Location, tokens []Token)

	// RemoveMacro undefines a macro, reporting whether it was defined.
	// The #undef handler does not act on the result.
	RemoveMacro(loc token.Location, name intern.Atom) bool

	// Eval evaluates a constant-expression tail. tokens is the remainder
	// of the current directive line, collected by the lexer (the lexer
	// has no expression grammar of its own: that lives with the macro
	// table, per spec.md §1's scoping of the evaluator to the
	// preprocessor). ok is false if evaluation failed; the lexer still
	// proceeds with value 0 in that case.
	Eval(tokens []Token) (value int64, ok bool)

	// EnterFile is invoked for #include/#tryinclude once the include path
	// has been fully scanned. origin is the including file's path for
	// quote-delimited includes, and the empty string for angle-bracket
	// includes.
	EnterFile(kind IncludeKind, loc token.Location, path string, origin string)

	// AddComment reports a committed comment block in source order.
	AddComment(pos CommentPosition, r token.Range)

	// SetNextDeprecationMessage attaches a #pragma deprecated message to
	// whatever declaration follows.
	SetNextDeprecationMessage(message string)

	// HandleEndOfFile is called when the cursor reaches the end of the
	// current buffer. Returning true means another buffer (e.g. the
	// includer) is now active and the lexer should yield token.NONE;
	// returning false means this really is the end and EOF should be
	// emitted.
	HandleEndOfFile() bool
}

// CompileContext is the diagnostic/interning/pragma surface the lexer
// consumes beyond the Preprocessor interface proper (spec.md §6,
// "Compile-context interface"). It is kept separate from Preprocessor
// because, unlike the macro table, it has no per-#if-branch state.
type CompileContext interface {
	intern.Interner

	// ChangePragmaDynamic forwards a #pragma dynamic value to the compile
	// context, mirroring original_source/v2/lexer.cpp's
	// cc_.ChangePragmaDynamic. The #pragma dynamic handler does not act on
	// the boolean result.
	ChangePragmaDynamic(loc token.Location, value int64) bool
}
