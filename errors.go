package tendril

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two recoverable fault classes a Tendril
// operation can hit: a range that falls outside the tendril's length,
// and a byte sequence that fails its format's validation. Both are
// returned from Try*-prefixed operations; the convenience wrappers that
// drop the error return panic with it instead.
var (
	ErrOutOfBounds      = errors.New("tendril: index out of bounds")
	ErrValidationFailed = errors.New("tendril: byte sequence failed format validation")
)

// Error wraps a sentinel fault with the operation that raised it.
type Error struct {
	Context string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// wrapErr attaches context to a sentinel error, returning nil unchanged.
func wrapErr(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Context: context, Cause: cause}
}
