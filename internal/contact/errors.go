package contact

import (
	"fmt"

	"folio/internal/validation"
)

// ValidationError lists the fields the visitor has to correct.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("validation error: %s", validation.Summary(e.Fields))
}

// Field returns the problem reported for name, if any.
func (e *ValidationError) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

// RelayError wraps a delivery failure reported by a Relay.
type RelayError struct {
	Err error
}

func (e *RelayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("relay error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RelayError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
