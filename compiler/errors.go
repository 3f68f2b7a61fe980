package compiler

import (
	"errors"
	"fmt"
)

var (
	// ErrRegisterExhausted is matched by *RegisterExhaustedError.
	ErrRegisterExhausted = errors.New("register pool exhausted")
	// ErrOperandUnderflow is returned when an operator is applied with fewer
	// than two live values.
	ErrOperandUnderflow = errors.New("operand stack underflow")
	ErrMalformedTree    = errors.New("malformed tree")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrNoAssembler      = errors.New("no assembler")
	// ErrCompileFailed is returned by Bytecode when the last Compile failed.
	ErrCompileFailed = errors.New("last compile failed")
)

// RegisterExhaustedError is returned when more values are live at once than
// the pool holds. Registers are never spilled.
type RegisterExhaustedError struct {
	Pool int // Size of the register pool.
	Live int // Values live when allocation failed.
}

func (e *RegisterExhaustedError) Error() string {
	return fmt.Sprintf("%s: %d registers, %d live", ErrRegisterExhausted, e.Pool, e.Live)
}

func (e *RegisterExhaustedError) Is(target error) bool { return target == ErrRegisterExhausted }

// AssemblerError wraps a failure of the external assembler.
type AssemblerError struct {
	Err error
}

func (e *AssemblerError) Error() string { return "assemble: " + e.Err.Error() }

func (e *AssemblerError) Unwrap() error { return e.Err }
