// Package parser turns source text into an ast.Program with a hand-written
// recursive descent over the lexer's tokens. The first malformed token aborts
// the parse; no partial tree is ever returned.
package parser

import (
	"fmt"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

type parser struct {
	lex *lexer.Lexer
	src string

	curToken lexer.Token

	rules []string // Rules being attempted, outermost first.
}

func newParser(src string) *parser {
	p := &parser{
		lex: lexer.New(src),
		src: src,
	}
	p.nextToken()
	return p
}

// Parse parses a whole program. It fails with *SyntaxError or
// *LiteralConversionError.
func Parse(src string) (ast.Program, error) {
	return parseAll(src, RuleProgram, parseProgram)
}

// ParseExpression parses src as a single expression.
func ParseExpression(src string) (ast.Expression, error) {
	return parseAll(src, RuleExpression, parseExpression)
}

// ParseTerm parses src as a single term.
func ParseTerm(src string) (ast.Term, error) {
	return parseAll(src, RuleTerm, parseTerm)
}

// ParseFactor parses src as a single factor.
func ParseFactor(src string) (ast.Factor, error) {
	return parseAll(src, RuleFactor, parseFactor)
}

// ParseLiteral parses src as a single, possibly negative, number.
func ParseLiteral(src string) (ast.FactorValue, error) {
	return parseAll(src, RuleLiteral, parseLiteral)
}

// ParseOperator parses src as one of + - * /.
func ParseOperator(src string) (ast.Operator, error) {
	return parseAll(src, RuleOperator, parseOperator)
}

// parseAll runs rule and requires the whole input to be consumed. Leftover
// input is reported against name.
func parseAll[T any](src, name string, rule func(*parser) T) (node T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var zero T
		switch e := r.(type) {
		case *SyntaxError:
			node, err = zero, e
		case *LiteralConversionError:
			node, err = zero, e
		default:
			panic(r)
		}
	}()

	p := newParser(src)
	node = rule(p)
	p.ignoreWhitespaces()
	if p.curToken.Type != lexer.TokEOF {
		p.rules = append(p.rules[:0], name)
		p.unexpected("end of input")
	}
	return node, nil
}

func (p *parser) nextToken() lexer.Token {
	p.curToken = p.lex.NextToken()
	return p.curToken
}

// enter marks rule as attempted. Callers defer the returned func.
func (p *parser) enter(rule string) func() {
	p.rules = append(p.rules, rule)
	return func() { p.rules = p.rules[:len(p.rules)-1] }
}

func (p *parser) rule() string {
	if len(p.rules) == 0 {
		return RuleProgram
	}
	return p.rules[len(p.rules)-1]
}

// failf aborts the parse at tok. Parse recovers it.
func (p *parser) failf(tok lexer.Token, format string, args ...any) {
	panic(&SyntaxError{
		Rule:      p.rule(),
		Remainder: p.src[min(tok.Pos(), len(p.src)):],
		Line:      tok.Line(),
		Column:    tok.Col(),
		Msg:       fmt.Sprintf(format, args...),
	})
}

// unexpected aborts the parse on the current token.
func (p *parser) unexpected(want string) {
	switch tok := p.curToken; tok.Type {
	case lexer.TokError:
		p.failf(tok, "%s", tok.Value)
	case lexer.TokEOF:
		p.failf(tok, "expected %s, got end of input", want)
	default:
		p.failf(tok, "expected %s, got %q", want, tok.Value)
	}
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(want string, kind ...lexer.TokenType) lexer.Token {
	if !p.curToken.Type.IsOneOf(kind...) {
		p.unexpected(want)
	}
	return p.curToken
}

// ignoreWhitespaces skips blanks, newlines included.
func (p *parser) ignoreWhitespaces() {
	for p.curToken.Type.IsOneOf(lexer.TokWhitespace, lexer.TokNewline) {
		p.nextToken()
	}
}
