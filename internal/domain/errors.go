package domain

import "fmt"

// ValidationError reports a caller-supplied input that violates a stated
// invariant. Field names the offending input field; Constraint describes the
// rule it broke, suitable for surfacing in a user-facing message.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, constraint string) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint}
}
