// Package diag defines the diagnostic message catalogue the lexer core
// reports through. It is deliberately thin: the compile context (out of
// scope per spec.md §1) decides how messages are rendered, batched, or
// escalated. The lexer only ever produces a MessageID, a position, and
// formatting arguments.
package diag

import "github.com/db47h/splex/token"

// MessageID identifies a diagnostic the lexer core can emit. Names mirror
// spec.md §6's abbreviated list and original_source/v2/lexer.cpp's
// rmsg::Id identifiers.
type MessageID int

const (
	IntLiteralOverflow MessageID = iota
	ExpectedDigitForFloat
	InvalidCharLiteral
	BadCharTerminator
	UnterminatedString
	UnterminatedComment
	UnknownEscapeCode
	UnexpectedChar
	BadDirectiveToken
	MacroFunctionsUnsupported
	ElseDeclaredTwice
	PreviousLocation
	ElseWithoutIf
	EndifWithoutIf
	UnknownDirective
	UnknownPragma
	BadPragmaNewdecls
	PPExtraCharacters
	BadIncludeSyntax
	PragmaMustHaveName
	UnterminatedElse
	UnterminatedIf
)

var names = [...]string{
	IntLiteralOverflow:        "int_literal_overflow",
	ExpectedDigitForFloat:     "expected_digit_for_float",
	InvalidCharLiteral:        "invalid_char_literal",
	BadCharTerminator:         "bad_char_terminator",
	UnterminatedString:        "unterminated_string",
	UnterminatedComment:       "unterminated_comment",
	UnknownEscapeCode:         "unknown_escapecode",
	UnexpectedChar:            "unexpected_char",
	BadDirectiveToken:         "bad_directive_token",
	MacroFunctionsUnsupported: "macro_functions_unsupported",
	ElseDeclaredTwice:         "else_declared_twice",
	PreviousLocation:          "previous_location",
	ElseWithoutIf:             "else_without_if",
	EndifWithoutIf:            "endif_without_if",
	UnknownDirective:          "unknown_directive",
	UnknownPragma:             "unknown_pragma",
	BadPragmaNewdecls:         "bad_pragma_newdecls",
	PPExtraCharacters:         "pp_extra_characters",
	BadIncludeSyntax:          "bad_include_syntax",
	PragmaMustHaveName:        "pragma_must_have_name",
	UnterminatedElse:          "unterminated_else",
	UnterminatedIf:            "unterminated_if",
}

func (id MessageID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	return "unknown_message"
}

// Sink is the diagnostic reporter the lexer core consumes. It is the
// "compile-context interface" of spec.md §6, reduced to the subset the
// lexer itself needs.
type Sink interface {
	// Reportf records a diagnostic at loc. args are positional, matching
	// id's expected arguments (e.g. the offending character and its hex
	// code for UnexpectedChar).
	Reportf(loc token.Location, id MessageID, args ...interface{})

	// Note attaches a secondary location to the most recently reported
	// diagnostic, e.g. PreviousLocation for ElseDeclaredTwice.
	Note(loc token.Location, id MessageID, args ...interface{})
}
