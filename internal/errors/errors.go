// Package errors defines the generator's error taxonomy. Registry-level
// failures abort the run; input-file failures are isolated per file;
// symbol-level issues never surface as errors at all (they are warnings).
package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a generation error for propagation decisions.
type ErrorType string

const (
	// ErrorTypeRegistry covers failures loading or indexing registry files.
	// Always fatal: without a registry index no output can be produced.
	ErrorTypeRegistry ErrorType = "registry"

	// ErrorTypeInput covers failures reading a usage-scan input file.
	// Recoverable: the file is skipped and processing continues.
	ErrorTypeInput ErrorType = "input"

	// ErrorTypeConfig covers configuration load/validation failures.
	ErrorTypeConfig ErrorType = "config"

	// ErrorTypeOutput covers failures writing the generated file.
	ErrorTypeOutput ErrorType = "output"
)

// Sentinel conditions checked with errors.Is.
var (
	// ErrEmptyFile marks a zero-length file; treated like an unreadable one.
	ErrEmptyFile = errors.New("file is empty")

	// ErrTableFull marks symbol-index exhaustion. The original generator
	// dropped the insertion silently, corrupting output; here it is a hard
	// registry failure.
	ErrTableFull = errors.New("symbol index is full")
)

// GenError is a classified generation error with optional file context.
type GenError struct {
	Type       ErrorType
	Path       string
	Op         string
	Underlying error
}

// NewRegistryError wraps a fatal registry-stage failure.
func NewRegistryError(op string, err error) *GenError {
	return &GenError{Type: ErrorTypeRegistry, Op: op, Underlying: err}
}

// NewInputError wraps a recoverable per-input-file failure.
func NewInputError(op string, err error) *GenError {
	return &GenError{Type: ErrorTypeInput, Op: op, Underlying: err}
}

// NewConfigError wraps a configuration failure.
func NewConfigError(op string, err error) *GenError {
	return &GenError{Type: ErrorTypeConfig, Op: op, Underlying: err}
}

// NewOutputError wraps a failure producing the generated file.
func NewOutputError(op string, err error) *GenError {
	return &GenError{Type: ErrorTypeOutput, Op: op, Underlying: err}
}

// WithPath attaches the file the error relates to.
func (e *GenError) WithPath(path string) *GenError {
	e.Path = path
	return e
}

// Recoverable reports whether the run can continue past this error.
// Only input-file errors are recoverable.
func (e *GenError) Recoverable() bool {
	return e.Type == ErrorTypeInput
}

// Error implements the error interface.
func (e *GenError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s failed for %s: %v", e.Type, e.Op, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Op, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *GenError) Unwrap() error {
	return e.Underlying
}
