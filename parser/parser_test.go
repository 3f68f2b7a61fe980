package parser

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/arith/ast"
)

func integer(v int64) ast.Factor { return ast.Factor{Value: ast.IntegerLiteral{Value: v}} }

func float(v float64) ast.Factor { return ast.Factor{Value: ast.FloatLiteral{Value: v}} }

func group(e ast.Expression) ast.Factor { return ast.Factor{Value: e} }

func term(f ast.Factor, right ...ast.TermOp) ast.Term { return ast.Term{Left: f, Right: right} }

func mul(f ast.Factor) ast.TermOp { return ast.TermOp{Op: ast.MulOp, Factor: f} }
func div(f ast.Factor) ast.TermOp { return ast.TermOp{Op: ast.DivOp, Factor: f} }

func expr(t ast.Term, right ...ast.ExprOp) ast.Expression { return ast.Expression{Left: t, Right: right} }

func add(t ast.Term) ast.ExprOp { return ast.ExprOp{Op: ast.AddOp, Term: t} }
func sub(t ast.Term) ast.ExprOp { return ast.ExprOp{Op: ast.SubOp, Term: t} }

func program(exprs ...ast.Expression) ast.Program { return ast.Program{Expressions: exprs} }

func requireTree(t *testing.T, want, got ast.Node) {
	t.Helper()
	if !ast.Equal(want, got) {
		t.Fatalf("tree mismatch:\n%s\nwant: %# v\ngot:  %# v", pretty.Diff(want, got), pretty.Formatter(want), pretty.Formatter(got))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Program
	}{
		{
			name:  "single literal",
			input: "5",
			want:  program(expr(term(integer(5)))),
		},
		{
			name:  "addition",
			input: "1+2",
			want:  program(expr(term(integer(1)), add(term(integer(2))))),
		},
		{
			name:  "multiplication",
			input: "3*4",
			want:  program(expr(term(integer(3), mul(integer(4))))),
		},
		{
			name:  "precedence",
			input: "1 + 2 * 3",
			want:  program(expr(term(integer(1)), add(term(integer(2), mul(integer(3)))))),
		},
		{
			name:  "left associative chains",
			input: "8 / 4 / 2 - 1 - 1",
			want: program(expr(
				term(integer(8), div(integer(4)), div(integer(2))),
				sub(term(integer(1))),
				sub(term(integer(1))),
			)),
		},
		{
			name:  "parenthesized factor",
			input: "(4*3)-1",
			want: program(expr(
				term(group(expr(term(integer(4), mul(integer(3)))))),
				sub(term(integer(1))),
			)),
		},
		{
			name:  "nested parentheses",
			input: "((3*4)*2)",
			want: program(expr(term(group(expr(term(
				group(expr(term(integer(3), mul(integer(4))))),
				mul(integer(2)),
			)))))),
		},
		{
			name:  "floats",
			input: " -1.0 + 323.8 ",
			want:  program(expr(term(float(-1)), add(term(float(323.8))))),
		},
		{
			name:  "negative literal after operator",
			input: "1 - -2",
			want:  program(expr(term(integer(1)), sub(term(integer(-2))))),
		},
		{
			name:  "dash is an operator first",
			input: "1 -2",
			want:  program(expr(term(integer(1)), sub(term(integer(2))))),
		},
		{
			name:  "operator across newline",
			input: "1\n+ 2",
			want:  program(expr(term(integer(1)), add(term(integer(2))))),
		},
		{
			name:  "multiple expressions",
			input: "1+2\n3*4\n\n5",
			want: program(
				expr(term(integer(1)), add(term(integer(2)))),
				expr(term(integer(3), mul(integer(4)))),
				expr(term(integer(5))),
			),
		},
		{
			name:  "space separated expressions",
			input: "1 (2)",
			want:  program(expr(term(integer(1))), expr(term(group(expr(term(integer(2))))))),
		},
		{
			name:  "min int",
			input: "-9223372036854775808",
			want:  program(expr(term(integer(-9223372036854775808)))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			requireTree(t, tt.want, got)
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	const input = "(1 + 2.5) * -3 / (4 - 5)\n6"
	first, err := Parse(input)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Parse(input)
		require.NoError(t, err)
		requireTree(t, first, again)
	}
}

func TestParseDumpRoundTrip(t *testing.T) {
	for _, input := range []string{
		"1+2",
		"(4*3)-1",
		"-1.5 * (2 - -3) / 7\n8 9",
		"((1))",
	} {
		t.Run(input, func(t *testing.T) {
			prog, err := Parse(input)
			require.NoError(t, err)
			again, err := Parse(prog.Dump())
			require.NoError(t, err, "dump: %q", prog.Dump())
			requireTree(t, prog, again)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		rule      string
		remainder string
	}{
		{name: "empty", input: "", rule: RuleFactor, remainder: ""},
		{name: "blank", input: " \n\t", rule: RuleFactor, remainder: ""},
		{name: "trailing letters", input: "5abc", rule: RuleFactor, remainder: "abc"},
		{name: "trailing dot", input: "1.", rule: RuleFactor, remainder: "."},
		{name: "dangling operator", input: "1 +", rule: RuleFactor, remainder: ""},
		{name: "missing operand", input: "2 * / 3", rule: RuleFactor, remainder: "/ 3"},
		{name: "unclosed paren", input: "(1 + 2", rule: RuleFactor, remainder: ""},
		{name: "missing expression in paren", input: "()", rule: RuleFactor, remainder: ")"},
		{name: "stray paren", input: "1)", rule: RuleFactor, remainder: ")"},
		{name: "detached sign", input: "- 2", rule: RuleLiteral, remainder: " 2"},
		{name: "sign on group", input: "-(2)", rule: RuleLiteral, remainder: "(2)"},
		{name: "junk inside paren", input: "(1 x)", rule: RuleFactor, remainder: "x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(tt.input)
			require.Error(t, err)
			assert.Empty(t, prog.Expressions, "partial tree returned")

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.rule, syntaxErr.Rule)
			assert.Equal(t, tt.remainder, syntaxErr.Remainder)
		})
	}
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("1 +\n  ?")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 2, syntaxErr.Line)
	assert.Equal(t, 3, syntaxErr.Column)
	assert.Equal(t, "?", syntaxErr.Remainder)
	assert.Contains(t, syntaxErr.Error(), "syntax error in factor at 2:3")
}

func TestParseLiteralConversionError(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
		kind    string
	}{
		{name: "one below min int", input: "-9223372036854775809", literal: "-9223372036854775809", kind: "integer"},
		{name: "one above max int", input: "1 + 9223372036854775808", literal: "9223372036854775808", kind: "integer"},
		{name: "float overflow", input: "1" + strings.Repeat("0", 400) + ".5", literal: "1" + strings.Repeat("0", 400) + ".5", kind: "float"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prog ast.Program
			var err error
			require.NotPanics(t, func() { prog, err = Parse(tt.input) })
			assert.Empty(t, prog.Expressions)

			var convErr *LiteralConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tt.literal, convErr.Literal)
			assert.Equal(t, tt.kind, convErr.Kind)
			assert.True(t, errors.Is(err, strconv.ErrRange))

			var syntaxErr *SyntaxError
			assert.False(t, errors.As(err, &syntaxErr), "conversion failure reported as syntax error")
		})
	}
}

func TestParseRules(t *testing.T) {
	f, err := ParseFactor("(1+2)")
	require.NoError(t, err)
	requireTree(t, group(expr(term(integer(1)), add(term(integer(2))))), f)

	f, err = ParseFactor(" -4.5 ")
	require.NoError(t, err)
	requireTree(t, float(-4.5), f)

	tm, err := ParseTerm("(3*4)*2")
	require.NoError(t, err)
	requireTree(t, term(group(expr(term(integer(3), mul(integer(4))))), mul(integer(2))), tm)

	e, err := ParseExpression("1 - 2 + 3")
	require.NoError(t, err)
	requireTree(t, expr(term(integer(1)), sub(term(integer(2))), add(term(integer(3)))), e)

	// A term does not swallow an additive operator.
	_, err = ParseTerm("3 + 4")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, RuleTerm, syntaxErr.Rule)
	assert.Equal(t, "+ 4", syntaxErr.Remainder)
}

func TestParseLiteral(t *testing.T) {
	lit, err := ParseLiteral(" -42")
	require.NoError(t, err)
	requireTree(t, ast.IntegerLiteral{Value: -42}, lit)

	lit, err = ParseLiteral("0.25")
	require.NoError(t, err)
	requireTree(t, ast.FloatLiteral{Value: 0.25}, lit)

	_, err = ParseLiteral("(1)")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, RuleLiteral, syntaxErr.Rule)
	assert.Equal(t, "(1)", syntaxErr.Remainder)

	_, err = ParseLiteral("1 2")
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, RuleLiteral, syntaxErr.Rule)
	assert.Equal(t, "2", syntaxErr.Remainder)

	_, err = ParseLiteral("99999999999999999999")
	var convErr *LiteralConversionError
	require.ErrorAs(t, err, &convErr)
}

func TestParseOperator(t *testing.T) {
	for src, want := range map[string]ast.Operator{
		"+":   ast.AddOp,
		" - ": ast.SubOp,
		"*":   ast.MulOp,
		"\n/":  ast.DivOp,
	} {
		op, err := ParseOperator(src)
		require.NoError(t, err, "%q", src)
		assert.Equal(t, want, op, "%q", src)
	}

	for src, remainder := range map[string]string{
		"":   "",
		"1":  "1",
		"+-": "-",
		"(":  "(",
	} {
		_, err := ParseOperator(src)
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "%q", src)
		assert.Equal(t, RuleOperator, syntaxErr.Rule, "%q", src)
		assert.Equal(t, remainder, syntaxErr.Remainder, "%q", src)
	}
}
