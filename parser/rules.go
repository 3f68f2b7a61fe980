package parser

import (
	"errors"
	"strconv"
	"strings"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

// parseProgram : expression+.
func parseProgram(p *parser) ast.Program {
	defer p.enter(RuleProgram)()

	prog := ast.Program{}
	for {
		prog.Expressions = append(prog.Expressions, parseExpression(p))
		p.ignoreWhitespaces()
		if p.curToken.Type == lexer.TokEOF {
			return prog
		}
	}
}

// parseExpression : term (('+' | '-') term)*.
func parseExpression(p *parser) ast.Expression {
	defer p.enter(RuleExpression)()

	expr := ast.Expression{Left: parseTerm(p)}
	for {
		op, ok := p.operator(additiveOperators)
		if !ok {
			return expr
		}
		expr.Right = append(expr.Right, ast.ExprOp{Op: op, Term: parseTerm(p)})
	}
}

// parseTerm : factor (('*' | '/') factor)*.
func parseTerm(p *parser) ast.Term {
	defer p.enter(RuleTerm)()

	term := ast.Term{Left: parseFactor(p)}
	for {
		op, ok := p.operator(multiplicativeOperators)
		if !ok {
			return term
		}
		term.Right = append(term.Right, ast.TermOp{Op: op, Factor: parseFactor(p)})
	}
}

// parseFactor : literal | '(' expression ')'.
func parseFactor(p *parser) ast.Factor {
	defer p.enter(RuleFactor)()

	p.ignoreWhitespaces()
	switch p.curToken.Type {
	case lexer.TokNumber, lexer.TokDash:
		return ast.Factor{Value: parseLiteral(p)}
	case lexer.TokParenLeft:
		p.nextToken()
		expr := parseExpression(p)
		p.ignoreWhitespaces()
		p.expect("')'", lexer.TokParenRight)
		p.nextToken()
		return ast.Factor{Value: expr}
	}
	p.unexpected("literal or '('")
	return ast.Factor{}
}

// parseLiteral : '-'? digits ('.' digits)?.
// The sign must touch the digits.
func parseLiteral(p *parser) ast.FactorValue {
	defer p.enter(RuleLiteral)()

	p.ignoreWhitespaces()
	sign := ""
	if p.curToken.Type == lexer.TokDash {
		sign = "-"
		p.nextToken()
	}
	tok := p.expect("digits", lexer.TokNumber)
	p.nextToken()

	text := sign + tok.Value
	if strings.Contains(tok.Value, ".") {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			panic(conversionError(text, "float", err))
		}
		return ast.FloatLiteral{Value: value}
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		panic(conversionError(text, "integer", err))
	}
	return ast.IntegerLiteral{Value: value}
}

// parseOperator : '+' | '-' | '*' | '/'.
func parseOperator(p *parser) ast.Operator {
	defer p.enter(RuleOperator)()

	op, ok := p.operator(anyOperator)
	if !ok {
		p.unexpected("operator")
	}
	return op
}

func conversionError(text, kind string, err error) *LiteralConversionError {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &LiteralConversionError{Literal: text, Kind: kind, Err: err}
}
