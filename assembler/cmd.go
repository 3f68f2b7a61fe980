// Package assembler provides adapters for the external assembler that turns
// assembly text into VM bytecode.
package assembler

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoOutput is returned when the assembler succeeds without producing
// bytecode.
var ErrNoOutput = errors.New("assembler produced no output")

// Func adapts a plain function to the Assemble contract.
type Func func(text string) ([]byte, error)

func (f Func) Assemble(text string) ([]byte, error) { return f(text) }

// Cmd runs an external assembler process. The assembly text is written to
// its stdin and the bytecode read from its stdout.
type Cmd struct {
	Path string
	Args []string
	Env  []string // Inherits the current environment when nil.
	Dir  string
}

// Command returns a Cmd running name with the given arguments.
func Command(name string, args ...string) *Cmd {
	return &Cmd{Path: name, Args: args}
}

// ExitError reports a non-zero exit of the assembler process.
type ExitError struct {
	Path     string
	ExitCode int
	Stderr   string // Trimmed.
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: exit status %d", e.Path, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Path, e.ExitCode, e.Stderr)
}

func (c *Cmd) Assemble(text string) ([]byte, error) {
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	cmd := exec.Command(c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = c.Env
	cmd.Dir = c.Dir

	if err := cmd.Run(); err != nil {
		var e0 *exec.ExitError
		if !errors.As(err, &e0) {
			return nil, fmt.Errorf("run %q: %w", c.Path, err)
		}
		return nil, &ExitError{
			Path:     c.Path,
			ExitCode: e0.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
		}
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", c.Path, ErrNoOutput)
	}
	return stdout.Bytes(), nil
}
