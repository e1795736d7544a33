package data

import (
	"errors"
)

var (
	ErrTruncatedInput     = errors.New("truncated input")
	ErrMalformedAmount    = errors.New("malformed amount")
	ErrMalformedPath      = errors.New("malformed path")
	ErrAmountOverflow     = errors.New("amount overflow")
	ErrAmountTypeMismatch = errors.New("amounts are not comparable")
	ErrAmountDivideByZero = errors.New("division by zero")
	ErrInvalidLength      = errors.New("unsupported variable length encoding")
	ErrUnknownField       = errors.New("unknown field")
	ErrUnknownType        = errors.New("unknown serialized type")
)
