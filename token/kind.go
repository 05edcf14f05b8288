// Package token defines the vocabulary of token kinds and source positions
// produced by the lexer. It carries no scanning logic of its own.
package token

import "strconv"

// Kind identifies the lexical class of a Token.
type Kind uint8

// The complete set of token kinds the lexer can produce, per the SourcePawn
// dialect's lexical grammar.
const (
	NONE Kind = iota // no token yet; caller should call Next again
	EOF              // permanent end of input
	EOL              // end of line, only emitted while lexing a directive
	UNKNOWN          // an unrecognized byte, or a malformed literal

	SEMICOLON
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	TILDE
	QMARK
	COLON
	COMMA
	DOT
	ELLIPSES

	SLASH
	ASSIGN_DIV
	STAR
	ASSIGN_MUL
	PLUS
	ASSIGN_ADD
	INCREMENT
	BITAND
	ASSIGN_BITAND
	AND
	BITOR
	ASSIGN_BITOR
	OR
	BITXOR
	ASSIGN_BITXOR
	PERCENT
	ASSIGN_MOD
	MINUS
	ASSIGN_SUB
	DECREMENT
	NOT
	NOTEQUALS
	ASSIGN
	EQUALS
	LT
	LE
	SHL
	ASSIGN_SHL
	GT
	GE
	SHR
	USHR
	ASSIGN_USHR

	INTEGER_LITERAL
	HEX_LITERAL
	FLOAT_LITERAL
	CHAR_LITERAL
	STRING_LITERAL
	NAME
	LABEL
	COMMENT

	// Directive tags. These are never returned from Lexer.Next; they are
	// used internally (and exposed for Preprocessor.FindKeyword) to
	// classify the identifier following a line-leading '#'.
	M_DEFINE
	M_IF
	M_ELSE
	M_ENDIF
	M_UNDEF
	M_INCLUDE
	M_TRYINCLUDE
	M_PRAGMA
	M_ENDINPUT
)

var kindNames = [...]string{
	NONE:            "NONE",
	EOF:             "EOF",
	EOL:             "EOL",
	UNKNOWN:         "UNKNOWN",
	SEMICOLON:       ";",
	LBRACE:          "{",
	RBRACE:          "}",
	LPAREN:          "(",
	RPAREN:          ")",
	LBRACKET:        "[",
	RBRACKET:        "]",
	TILDE:           "~",
	QMARK:           "?",
	COLON:           ":",
	COMMA:           ",",
	DOT:             ".",
	ELLIPSES:        "...",
	SLASH:           "/",
	ASSIGN_DIV:      "/=",
	STAR:            "*",
	ASSIGN_MUL:      "*=",
	PLUS:            "+",
	ASSIGN_ADD:      "+=",
	INCREMENT:       "++",
	BITAND:          "&",
	ASSIGN_BITAND:   "&=",
	AND:             "&&",
	BITOR:           "|",
	ASSIGN_BITOR:    "|=",
	OR:              "||",
	BITXOR:          "^",
	ASSIGN_BITXOR:   "^=",
	PERCENT:         "%",
	ASSIGN_MOD:      "%=",
	MINUS:           "-",
	ASSIGN_SUB:      "-=",
	DECREMENT:       "--",
	NOT:             "!",
	NOTEQUALS:       "!=",
	ASSIGN:          "=",
	EQUALS:          "==",
	LT:              "<",
	LE:              "<=",
	SHL:             "<<",
	ASSIGN_SHL:      "<<=",
	GT:              ">",
	GE:              ">=",
	SHR:             ">>",
	USHR:            ">>>",
	ASSIGN_USHR:     ">>>=",
	INTEGER_LITERAL: "INTEGER_LITERAL",
	HEX_LITERAL:     "HEX_LITERAL",
	FLOAT_LITERAL:   "FLOAT_LITERAL",
	CHAR_LITERAL:    "CHAR_LITERAL",
	STRING_LITERAL:  "STRING_LITERAL",
	NAME:            "NAME",
	LABEL:           "LABEL",
	COMMENT:         "COMMENT",
	M_DEFINE:        "#define",
	M_IF:            "#if",
	M_ELSE:          "#else",
	M_ENDIF:         "#endif",
	M_UNDEF:         "#undef",
	M_INCLUDE:       "#include",
	M_TRYINCLUDE:    "#tryinclude",
	M_PRAGMA:        "#pragma",
	M_ENDINPUT:      "#endinput",
}

// String returns the kind's canonical spelling, or its symbolic name for
// kinds (literals, names, directives) that have no single fixed spelling.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Directives maps a directive's bare name (without the leading '#') to its
// Kind. It is the fixed set the directive handler recognizes; anything else
// following a line-leading '#' is unknown_directive.
var Directives = map[string]Kind{
	"define":     M_DEFINE,
	"if":         M_IF,
	"else":       M_ELSE,
	"endif":      M_ENDIF,
	"undef":      M_UNDEF,
	"endinput":   M_ENDINPUT,
	"include":    M_INCLUDE,
	"tryinclude": M_TRYINCLUDE,
	"pragma":     M_PRAGMA,
}
