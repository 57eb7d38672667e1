package processor

import "errors"

var (
	ErrInvalidAmount = errors.New("the amount must be greater than zero")
	ErrUnknownMethod = errors.New("unknown payment method")
)
