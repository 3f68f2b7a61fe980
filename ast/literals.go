package ast

import (
	"strconv"
	"strings"
)

// Operator is a binary arithmetic operator.
type Operator int

const (
	AddOp Operator = iota
	SubOp
	MulOp
	DivOp
)

var operatorStrings = [...]string{
	AddOp: "+",
	SubOp: "-",
	MulOp: "*",
	DivOp: "/",
}

var operatorMnemonics = [...]string{
	AddOp: "ADD",
	SubOp: "SUB",
	MulOp: "MUL",
	DivOp: "DIV",
}

func (o Operator) valid() bool { return o >= AddOp && o <= DivOp }

func (o Operator) String() string {
	if !o.valid() {
		return "Operator(" + strconv.Itoa(int(o)) + ")"
	}
	return operatorStrings[o]
}

// Mnemonic returns the instruction name of the operator.
func (o Operator) Mnemonic() string {
	if !o.valid() {
		return ""
	}
	return operatorMnemonics[o]
}

// Additive reports whether the operator binds at expression level.
func (o Operator) Additive() bool { return o == AddOp || o == SubOp }

func (o Operator) Accept(v Visitor) error { return v.VisitOperator(o) }

func (o Operator) Dump() string { return o.String() }

// IntegerLiteral is a signed 64-bit integer.
type IntegerLiteral struct {
	Value int64
}

func (IntegerLiteral) factorValue() {}

func (i IntegerLiteral) Accept(v Visitor) error { return v.VisitInteger(i) }

func (i IntegerLiteral) Dump() string { return strconv.FormatInt(i.Value, 10) }

// FloatLiteral is a 64-bit float.
type FloatLiteral struct {
	Value float64
}

func (FloatLiteral) factorValue() {}

func (f FloatLiteral) Accept(v Visitor) error { return v.VisitFloat(f) }

// Dump always keeps a fraction so the value reads back as a float.
func (f FloatLiteral) Dump() string {
	s := strconv.FormatFloat(f.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
