package parser

import (
	"fmt"
)

// Rule names carried by SyntaxError.
const (
	RuleProgram    = "program"
	RuleExpression = "expression"
	RuleTerm       = "term"
	RuleFactor     = "factor"
	RuleLiteral    = "literal"
	RuleOperator   = "operator"
)

// SyntaxError is returned when a grammar rule fails to match.
type SyntaxError struct {
	Rule      string // Deepest rule being attempted.
	Remainder string // Unconsumed input, starting at the offending token.
	Line      int
	Column    int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %s at %d:%d: %s (remaining %.16q)", e.Rule, e.Line, e.Column, e.Msg, e.Remainder)
}

// LiteralConversionError is returned when a literal does not fit its numeric
// representation.
type LiteralConversionError struct {
	Literal string // Literal text, sign included.
	Kind    string // "integer" or "float".
	Err     error  // Usually strconv.ErrRange.
}

func (e *LiteralConversionError) Error() string {
	return fmt.Sprintf("convert %s literal %q: %s", e.Kind, e.Literal, e.Err)
}

func (e *LiteralConversionError) Unwrap() error { return e.Err }
