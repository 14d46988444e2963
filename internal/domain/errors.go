package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a required contract value was not supplied.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidValue indicates a contract value was supplied but cannot be used,
	// such as a negative phase cost or a blank currency code.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError ties a MissingField or InvalidValue failure to the dotted path of
// the offending field (e.g. "project.phases[2].cost").
type FieldError struct {
	Field  string
	Err    error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Missing returns a FieldError wrapping ErrMissingField.
func Missing(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

// Invalid returns a FieldError wrapping ErrInvalidValue.
func Invalid(field, format string, args ...any) error {
	return &FieldError{Field: field, Err: ErrInvalidValue, Detail: fmt.Sprintf(format, args...)}
}
