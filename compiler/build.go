package compiler

import (
	"go.creack.net/arith/parser"
)

// Build parses src, compiles it with cfg and assembles the result. Parser,
// compiler and assembler failures keep their types.
func Build(src string, asm Assembler, cfg Config, opts ...Option) ([]byte, error) {
	c, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := c.Compile(prog); err != nil {
		return nil, err
	}
	return c.Bytecode(asm)
}
