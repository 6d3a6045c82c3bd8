package rex

import (
	"errors"
	"fmt"
)

// Composition errors. They are returned synchronously by the operation that
// received the bad argument; no fragment is produced alongside them.
var (
	// ErrInvalidRange indicates repetition bounds outside the accepted shapes:
	// a negative bound, or an upper bound not greater than the lower bound.
	ErrInvalidRange = errors.New("invalid repetition range")

	// ErrInvalidIndex indicates an Index key that is neither an integer nor
	// a Slice, or a Slice with a step.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrUnsupportedMultiplier indicates a Times argument that is neither an
	// integer nor a pair of integers.
	ErrUnsupportedMultiplier = errors.New("unsupported multiplier")

	// ErrUnsupportedPart indicates a Seq part that is neither a
	// string nor a Fragment.
	ErrUnsupportedPart = errors.New("unsupported part")

	// ErrDuplicateName indicates a pattern that names two groups alike.
	// Compile rejects it so that every name resolves to one group.
	ErrDuplicateName = errors.New("duplicate group name")
)

// Error wraps a composition error with the operation that raised it.
type Error struct {
	Op     string // operation, e.g. "Between"
	Detail string // offending arguments
	Err    error  // one of the Err* sentinels
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("rex: %s: %v: %s", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("rex: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error, format string, args ...any) *Error {
	return &Error{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// Must returns f, or panics if err is non-nil.
//
// It is intended for bounds known when the program is written:
//
//	var hex8 = rex.Must(rex.HexDigit.Repeat(8))
func Must(f Fragment, err error) Fragment {
	if err != nil {
		panic(err)
	}
	return f
}
