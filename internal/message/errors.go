package message

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKind    = errors.New("invalid message type")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidContent = errors.New("invalid message content")
)

// MissingFieldError names the required content field that was absent.
type MissingFieldError struct {
	Kind  Kind
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s message: missing required field %q", e.Kind, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
