package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks user-supplied values that fail validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCalculation marks an internal arithmetic precondition violation.
	ErrCalculation = errors.New("calculation error")
)

// InputError reports the offending field and value of a rejected input.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

// NewInputError builds an InputError, formatting value with %v.
func NewInputError(field string, value any, reason string) *InputError {
	return &InputError{Field: field, Value: fmt.Sprintf("%v", value), Reason: reason}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s=%s: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// CalculationError reports a violated arithmetic precondition. Upstream
// validation should make these unreachable.
type CalculationError struct {
	Op     string
	Reason string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation error in %s: %s", e.Op, e.Reason)
}

func (e *CalculationError) Unwrap() error { return ErrCalculation }
