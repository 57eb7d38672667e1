package acquirer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMethod         = errors.New("invalid payment method choice")
	ErrInvalidMethodOverride = errors.New("invalid PAYMENT_METHOD override")
	ErrInputClosed           = errors.New("input closed before a valid value was entered")
)

// MethodOverrideError reports the rejected PAYMENT_METHOD value. It matches
// ErrInvalidMethodOverride under errors.Is.
type MethodOverrideError struct {
	Override string
}

func (e *MethodOverrideError) Error() string {
	return fmt.Sprintf("%s: %q (expected 1, 2 or 3)", ErrInvalidMethodOverride, e.Override)
}

func (e *MethodOverrideError) Unwrap() error {
	return ErrInvalidMethodOverride
}
