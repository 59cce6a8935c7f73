package content

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every ValidationError and TypeError.
	ErrValidation = errors.New("invalid input message content")
	// ErrUnknownField matches every UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownKind is returned for a variant name that is not supported.
	ErrUnknownKind = errors.New("unknown content kind")
)

// ValidationError reports a missing required field or a value that could not
// be decoded into the field's type.
type ValidationError struct {
	Kind   Kind
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s content: %s", e.Kind, e.Reason)
	if e.Field != "" {
		msg = fmt.Sprintf("%s content: field %q: %s", e.Kind, e.Field, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TypeError reports a supplied value whose type does not match the declared
// scalar type of the field.
type TypeError struct {
	Kind  Kind
	Field string
	Want  string
	Got   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s content: field %q: want %s, got %s", e.Kind, e.Field, e.Want, e.Got)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrValidation
}

// UnknownFieldError reports a field name the variant does not declare.
type UnknownFieldError struct {
	Kind  Kind
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s content: unknown field %q", e.Kind, e.Field)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}
