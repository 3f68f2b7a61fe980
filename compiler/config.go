package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRegisters = 31
	MaxRegisters     = 256
)

// OperandOrder is the order in which a binary instruction lists its source
// registers.
type OperandOrder string

const (
	LeftRight OperandOrder = "left-right"
	RightLeft OperandOrder = "right-left"
)

func (o OperandOrder) valid() bool { return o == LeftRight || o == RightLeft }

// OperandOrders selects the operand order per operator class.
type OperandOrders struct {
	Additive       OperandOrder `yaml:"additive"`       // ADD, SUB.
	Multiplicative OperandOrder `yaml:"multiplicative"` // MUL, DIV.
}

// Config drives code generation.
type Config struct {
	Registers    int           `yaml:"registers"` // Pool size, ids 0..Registers-1.
	Trace        bool          `yaml:"trace"`     // Log every visit and emitted line.
	OperandOrder OperandOrders `yaml:"operand_order"`
}

// DefaultConfig returns the configuration matching the target VM: 31
// registers, additive instructions list the right operand first and
// multiplicative ones the left operand first.
func DefaultConfig() Config {
	return Config{
		Registers: DefaultRegisters,
		OperandOrder: OperandOrders{
			Additive:       RightLeft,
			Multiplicative: LeftRight,
		},
	}
}

// ParseConfig decodes a YAML document on top of DefaultConfig. Unknown keys
// are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Registers < 1 || c.Registers > MaxRegisters {
		return fmt.Errorf("%w: registers must be within [1, %d], got %d", ErrInvalidConfig, MaxRegisters, c.Registers)
	}
	if !c.OperandOrder.Additive.valid() {
		return fmt.Errorf("%w: additive operand order %q", ErrInvalidConfig, c.OperandOrder.Additive)
	}
	if !c.OperandOrder.Multiplicative.valid() {
		return fmt.Errorf("%w: multiplicative operand order %q", ErrInvalidConfig, c.OperandOrder.Multiplicative)
	}
	return nil
}
