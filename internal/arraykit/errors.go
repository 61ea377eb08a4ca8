package arraykit

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes arraykit errors.
type ErrorCode string

// ErrCodeInvalidArgument indicates a precondition violation on function input.
const ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

// ErrInvalidArgument is the sentinel matched by errors.Is for every
// *ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a rejected input.
type ArgumentError struct {
	// Code is always ErrCodeInvalidArgument.
	Code ErrorCode

	// Op is the operation that rejected its input (e.g. "rotate_left").
	Op string

	// Arg names the offending argument (e.g. "positions", "from").
	Arg string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%s: %s: %s (arg=%s)", e.Op, e.Code, e.Message, e.Arg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IsInvalidArgument returns true if err is, or wraps, an *ArgumentError.
func IsInvalidArgument(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

func newArgumentError(op, arg, message string) *ArgumentError {
	return &ArgumentError{
		Code:    ErrCodeInvalidArgument,
		Op:      op,
		Arg:     arg,
		Message: message,
	}
}

// errEmpty is returned by every operation given an empty sequence.
func errEmpty(op string) *ArgumentError {
	return newArgumentError(op, "sequence", "array must contain at least one element")
}
