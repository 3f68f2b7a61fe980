// Package compiler walks an ast.Program, allocates registers from a fixed
// pool and emits assembly for the register VM.
//
// A Compiler is owned by a single goroutine. Compile reinitializes it, so one
// instance can process several trees one after the other, never concurrently.
package compiler

import (
	"fmt"
	"log"
	"strings"

	"go.creack.net/arith/ast"
)

// Section markers of the assembly text.
const (
	codeSection = ".code"
	dataSection = ".data"
)

// Assembler turns assembly text into bytecode.
type Assembler interface {
	Assemble(text string) ([]byte, error)
}

type Compiler struct {
	cfg    Config
	logger *log.Logger

	free     registerStack // Registers available for allocation.
	used     registerStack // Registers holding live values.
	assembly []string

	failed error // Set by a failed Compile until the next one.
}

type Option func(*Compiler)

// WithLogger sets the logger used for diagnostics and tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Compiler) { c.logger = logger }
}

// New validates cfg and returns a ready compiler.
func New(cfg Config, opts ...Option) (*Compiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Compiler{
		cfg:    cfg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c, nil
}

// Default returns a compiler using DefaultConfig.
func Default(opts ...Option) *Compiler {
	c, err := New(DefaultConfig(), opts...)
	if err != nil {
		panic(fmt.Errorf("default config: %w", err)) // Should never happen.
	}
	return c
}

func (c *Compiler) reset() {
	c.free = newFreePool(c.cfg.Registers)
	c.used = c.used[:0]
	c.assembly = nil
	c.failed = nil
}

// Compile emits the instructions for prog, replacing any previous output.
// On failure no partial output is kept and Bytecode refuses to assemble
// until the next successful Compile.
func (c *Compiler) Compile(prog ast.Program) error {
	c.reset()
	if err := prog.Accept(c); err != nil {
		c.reset()
		c.failed = fmt.Errorf("compile: %w", err)
		return c.failed
	}
	return nil
}

// Instructions returns the emitted lines.
func (c *Compiler) Instructions() []string {
	return append([]string(nil), c.assembly...)
}

// Free returns the registers available for allocation. The last one is
// handed out next.
func (c *Compiler) Free() []int {
	return append([]int(nil), c.free...)
}

// Live returns the registers holding live values, oldest first. After a
// successful Compile there is one per expression.
func (c *Compiler) Live() []int {
	return append([]int(nil), c.used...)
}

// Assembly returns the emitted lines as a program text, inserting the code
// and data section markers when missing.
func (c *Compiler) Assembly() string {
	text := strings.Join(c.assembly, "\n")
	if !strings.Contains(text, dataSection) {
		text = dataSection + "\n" + text
	}
	if !strings.Contains(text, codeSection) {
		text = codeSection + "\n" + text
	}
	return text
}

// Bytecode hands Assembly to asm. On failure it logs the diagnostic and
// returns an empty slice along with an *AssemblerError. After a failed
// Compile it returns an empty slice and an error matching ErrCompileFailed.
func (c *Compiler) Bytecode(asm Assembler) ([]byte, error) {
	if c.failed != nil {
		return []byte{}, fmt.Errorf("%w: %w", ErrCompileFailed, c.failed)
	}
	if asm == nil {
		return []byte{}, &AssemblerError{Err: ErrNoAssembler}
	}
	code, err := asm.Assemble(c.Assembly())
	if err != nil {
		c.logger.Printf("Assemble error: %s.", err)
		return []byte{}, &AssemblerError{Err: err}
	}
	return code, nil
}

func (c *Compiler) tracef(format string, args ...any) {
	if c.cfg.Trace {
		c.logger.Printf(format, args...)
	}
}

func (c *Compiler) emit(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	c.tracef("emit %s", line)
	c.assembly = append(c.assembly, line)
}

func (c *Compiler) allocate() (int, error) {
	r, ok := c.free.pop()
	if !ok {
		return -1, &RegisterExhaustedError{Pool: c.cfg.Registers, Live: len(c.used)}
	}
	return r, nil
}
