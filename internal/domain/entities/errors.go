package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAllocationExhausted is returned when a unique reference, token or
// number could not be allocated within the retry bound. Callers should
// treat it as an internal failure, not retry further.
var ErrAllocationExhausted = errors.New("could not allocate a unique value within the retry bound")

// ValidationError means caller-supplied data is incomplete or malformed for
// the requested operation. The caller can correct the input and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError means the order is not in a state that permits the
// requested operation, or a uniqueness precondition failed. The caller must
// re-fetch and decide; resubmitting unchanged will fail again.
type ConflictError struct {
	Message  string
	Current  OrderStatus
	Required []OrderStatus
}

func (e *ConflictError) Error() string {
	if len(e.Required) == 0 {
		return e.Message
	}
	required := make([]string, len(e.Required))
	for i, s := range e.Required {
		required[i] = string(s)
	}
	return fmt.Sprintf("%s (status is %q, requires one of %s)",
		e.Message, e.Current, strings.Join(required, ", "))
}

// NewStatusConflictError builds the conflict raised by every guarded
// transition, naming the current and required states.
func NewStatusConflictError(current OrderStatus, required ...OrderStatus) *ConflictError {
	return &ConflictError{
		Message:  "the order is not in a state that allows this action",
		Current:  current,
		Required: required,
	}
}
