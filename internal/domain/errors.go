package domain

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a validation failure detected before any
// cash-flow construction. Field carries the wire name of the offending
// input so API callers can surface it as a client error.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// NewInvalidInput builds an InvalidInputError for the named field.
func NewInvalidInput(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
