// Package ast holds the tree produced by the parser. Precedence is encoded
// structurally:
//
//	program    : expression+
//	expression : term (('+' | '-') term)*
//	term       : factor (('*' | '/') factor)*
//	factor     : integer | float | '(' expression ')'
//
// The tree is built once by the parser and only read afterwards.
package ast

import (
	"reflect"
	"strings"
)

// Node is any node of the tree.
type Node interface {
	Dump() string
	Accept(Visitor) error
}

// Visitor is implemented by tree walkers. Accept dispatches to exactly one
// method; walking the children is up to the visitor.
type Visitor interface {
	VisitProgram(Program) error
	VisitExpression(Expression) error
	VisitTerm(Term) error
	VisitFactor(Factor) error
	VisitInteger(IntegerLiteral) error
	VisitFloat(FloatLiteral) error
	VisitOperator(Operator) error
}

// Equal reports whether two trees have the same shape and literal values.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}

// Program represents the top-level program.
type Program struct {
	Expressions []Expression // Never empty when produced by the parser.
}

func (p Program) Accept(v Visitor) error { return v.VisitProgram(p) }

func (p Program) Dump() string {
	result := ""
	for _, expr := range p.Expressions {
		result += expr.Dump() + "\n"
	}
	return result
}

// Expression : term (('+' | '-') term)*.
type Expression struct {
	Left  Term
	Right []ExprOp // Applied left to right against Left.
}

// ExprOp is an additive operator with its right hand side.
type ExprOp struct {
	Op   Operator // AddOp or SubOp.
	Term Term
}

func (Expression) factorValue() {}

func (e Expression) Accept(v Visitor) error { return v.VisitExpression(e) }

func (e Expression) Dump() string {
	var sb strings.Builder
	sb.WriteString(e.Left.Dump())
	for _, r := range e.Right {
		sb.WriteString(" " + r.Op.String() + " " + r.Term.Dump())
	}
	return sb.String()
}

// Term : factor (('*' | '/') factor)*.
type Term struct {
	Left  Factor
	Right []TermOp // Applied left to right against Left.
}

// TermOp is a multiplicative operator with its right hand side.
type TermOp struct {
	Op     Operator // MulOp or DivOp.
	Factor Factor
}

func (t Term) Accept(v Visitor) error { return v.VisitTerm(t) }

func (t Term) Dump() string {
	var sb strings.Builder
	sb.WriteString(t.Left.Dump())
	for _, r := range t.Right {
		sb.WriteString(" " + r.Op.String() + " " + r.Factor.Dump())
	}
	return sb.String()
}

// FactorValue is what a Factor can wrap: a literal or a parenthesized
// expression.
type FactorValue interface {
	Node
	factorValue()
}

// Factor wraps a literal or a parenthesized expression.
type Factor struct {
	Value FactorValue
}

func (f Factor) Accept(v Visitor) error { return v.VisitFactor(f) }

func (f Factor) Dump() string {
	if e, ok := f.Value.(Expression); ok {
		return "(" + e.Dump() + ")"
	}
	if f.Value == nil {
		return ""
	}
	return f.Value.Dump()
}
