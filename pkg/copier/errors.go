package copier

import (
	"errors"
	"fmt"
)

// ErrUnsupported is reported when no usable clipboard is present or the
// context is not trusted to use it
var ErrUnsupported = errors.New("Clipboard API is not supported")

// Op identifies which operation produced a failure
type Op int

const (
	OpCopy Op = iota
	OpClear
)

func (o Op) String() string {
	if o == OpClear {
		return "clear"
	}
	return "copy"
}

// prefix is prepended to normalised failure messages
func (o Op) prefix() string {
	if o == OpClear {
		return "Failed to clear clipboard. "
	}
	return "Failed to copy text. "
}

// FailureError wraps a platform failure that was not an error value,
// e.g. a string a backend panicked with
type FailureError struct {
	Op    Op
	Value any
}

func (e *FailureError) Error() string {
	return e.Op.prefix() + fmt.Sprint(e.Value)
}

// normalize passes errors through unchanged and wraps anything else
func normalize(op Op, v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &FailureError{Op: op, Value: v}
}
