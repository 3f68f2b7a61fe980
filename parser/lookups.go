package parser

import (
	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

type lookupTable[T any] map[lexer.TokenType]T

// Operators allowed at each precedence level. Keeping them apart is what
// makes precedence structural.
var (
	additiveOperators = lookupTable[ast.Operator]{
		lexer.TokPlus: ast.AddOp,
		lexer.TokDash: ast.SubOp,
	}
	multiplicativeOperators = lookupTable[ast.Operator]{
		lexer.TokAsterisk: ast.MulOp,
		lexer.TokSlash:    ast.DivOp,
	}
	anyOperator = lookupTable[ast.Operator]{
		lexer.TokPlus:     ast.AddOp,
		lexer.TokDash:     ast.SubOp,
		lexer.TokAsterisk: ast.MulOp,
		lexer.TokSlash:    ast.DivOp,
	}
)

// operator consumes the current token if it is one of table's operators.
func (p *parser) operator(table lookupTable[ast.Operator]) (ast.Operator, bool) {
	p.ignoreWhitespaces()
	op, ok := table[p.curToken.Type]
	if ok {
		p.nextToken()
	}
	return op, ok
}
