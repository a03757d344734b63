package jsonvalue_airp

import (
	"github.com/pkg/errors"
)

// Errors returned by Cast when the cell's tag does not fit the requested
// view. Use errors.Is to test for them.
var (
	ErrNotString  = errors.New("value is not a string")
	ErrNotNumber  = errors.New("value is not a number")
	ErrNotBoolean = errors.New("value is not a boolean")
	ErrNotArray   = errors.New("value is not an array")
	ErrNotObject  = errors.New("value is not an object")
)

// ErrNotEngaged is returned by Optional.Value on an empty optional.
var ErrNotEngaged = errors.New("optional value is not engaged")

// ErrTooLarge is the panic value of a growth request beyond the length a
// cell can record.
var ErrTooLarge = errors.New("value too large")

// ErrOverflow is returned by Unpack when a number does not fit the Go type
// it is read into.
var ErrOverflow = errors.New("number does not fit")

// ErrUnsupported signals a Go value FromGo can not represent.
var ErrUnsupported = errors.New("unsupported Go type")

// CastError captures a failed narrowing. Its message is the static message
// of the requested view; the kind that was found is kept for inspection.
type CastError struct {
	want error
	got  Kind
}

func newCastError(want error, got tag) error {
	return errors.WithStack(&CastError{want: want, got: kindOf(got)})
}

func (e *CastError) Error() string {
	return e.want.Error()
}

// Unwrap returns one of the ErrNot... sentinels.
func (e *CastError) Unwrap() error {
	return e.want
}

// Got returns the kind of the value that was rejected.
func (e *CastError) Got() Kind {
	return e.got
}
