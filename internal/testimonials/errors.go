package testimonials

import (
	"fmt"

	"folio/internal/validation"
)

// ValidationError reports user-correctable problems with a Candidate.
// Nothing is stored when it is returned.
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return fmt.Sprintf("validation error: %s", validation.Summary(e.Fields))
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Field returns the problem reported for name, if any.
func (e *ValidationError) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

// PersistenceError reports that a valid submission could not be written.
// The store's collection is left as it was; Testimonial holds the entry that
// was built so the caller may Adopt it in memory or retry.
type PersistenceError struct {
	Testimonial Testimonial
	Err         error
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("persist testimonials: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
