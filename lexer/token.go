package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus     // '+'.
	TokDash     // '-'. Subtraction or the sign of a literal.
	TokAsterisk // '*'.
	TokSlash    // '/'.

	// Delimiters.
	TokWhitespace
	TokNewline
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:     "+",
	TokDash:     "-",
	TokAsterisk: "*",
	TokSlash:    "/",

	TokWhitespace: "WHITESPACE",
	TokNewline:    "NEWLINE",
	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an arithmetic program.
type Token struct {
	Type  TokenType
	Value string

	pos  int // Byte offset of the start of the token.
	line int
	col  int
}

// Pos returns the byte offset of the token in the input.
func (t Token) Pos() int { return t.pos }

// Line returns the 1-based line of the token.
func (t Token) Line() int { return t.line }

// Col returns the 1-based column of the token.
func (t Token) Col() int { return t.col }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.line, t.col, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.line, t.col, t.Value)
}

func (t Token) errorString() string {
	out := fmt.Sprintf("ERROR [%d:%d]: %s", t.line, t.col, t.Value)
	return out
}
