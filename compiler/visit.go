package compiler

import (
	"fmt"

	"go.creack.net/arith/ast"
)

var _ ast.Visitor = (*Compiler)(nil)

func (c *Compiler) VisitProgram(p ast.Program) error {
	c.tracef("visit program: %d expressions", len(p.Expressions))
	for i, expr := range p.Expressions {
		if err := expr.Accept(c); err != nil {
			return fmt.Errorf("expression %d: %w", i+1, err)
		}
	}
	return nil
}

// VisitExpression visits each right operand before its operator so both
// operand registers are live when the operator is applied.
func (c *Compiler) VisitExpression(e ast.Expression) error {
	c.tracef("visit expression: %s", e.Dump())
	if err := e.Left.Accept(c); err != nil {
		return err
	}
	for _, r := range e.Right {
		if !r.Op.Additive() {
			return fmt.Errorf("%w: operator %s in expression", ErrMalformedTree, r.Op)
		}
		if err := r.Term.Accept(c); err != nil {
			return err
		}
		if err := r.Op.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) VisitTerm(t ast.Term) error {
	c.tracef("visit term: %s", t.Dump())
	if err := t.Left.Accept(c); err != nil {
		return err
	}
	for _, r := range t.Right {
		if r.Op != ast.MulOp && r.Op != ast.DivOp {
			return fmt.Errorf("%w: operator %s in term", ErrMalformedTree, r.Op)
		}
		if err := r.Factor.Accept(c); err != nil {
			return err
		}
		if err := r.Op.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) VisitFactor(f ast.Factor) error {
	if f.Value == nil {
		return fmt.Errorf("%w: empty factor", ErrMalformedTree)
	}
	return f.Value.Accept(c)
}

func (c *Compiler) VisitInteger(i ast.IntegerLiteral) error { return c.load(i.Dump()) }

func (c *Compiler) VisitFloat(f ast.FloatLiteral) error { return c.load(f.Dump()) }

func (c *Compiler) load(value string) error {
	r, err := c.allocate()
	if err != nil {
		return fmt.Errorf("load #%s: %w", value, err)
	}
	c.emit("LOAD $%d #%s", r, value)
	c.used.push(r)
	return nil
}

// VisitOperator applies o to the two most recent live values. The first pop
// is the right operand, the second the left one.
func (c *Compiler) VisitOperator(o ast.Operator) error {
	mnemonic := o.Mnemonic()
	if mnemonic == "" {
		return fmt.Errorf("%w: unknown operator %s", ErrMalformedTree, o)
	}
	if len(c.used) < 2 {
		return fmt.Errorf("%s: %w: %d live values", mnemonic, ErrOperandUnderflow, len(c.used))
	}
	// The result register is taken while both operands are still live.
	result, err := c.allocate()
	if err != nil {
		return fmt.Errorf("%s: %w", mnemonic, err)
	}
	right, _ := c.used.pop()
	left, _ := c.used.pop()

	order := c.cfg.OperandOrder.Multiplicative
	if o.Additive() {
		order = c.cfg.OperandOrder.Additive
	}
	first, second := left, right
	if order == RightLeft {
		first, second = right, left
	}
	c.emit("%s $%d $%d $%d", mnemonic, first, second, result)

	c.free.push(right)
	c.free.push(left)
	c.used.push(result)
	return nil
}
