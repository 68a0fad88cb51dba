package models

import "fmt"

// ValidationError is returned when a menu cannot be built from its
// options. It is always reported before the terminal is touched.
type ValidationError struct {
	Field  string
	Index  int // offending option index, -1 when not tied to one
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s [%d]: %s", e.Field, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field string, index int, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Index: index, Reason: fmt.Sprintf(format, args...)}
}
