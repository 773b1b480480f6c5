package optional

import (
	"fmt"
)

type (
	// ErrNilValue reports a nil value passed to a constructor that
	// requires one, such as Some.
	ErrNilValue struct {
		op string
	}

	// ErrAbsent reports an extraction from an empty Optional. It is the
	// panic payload of Unwrap and Expect.
	ErrAbsent struct {
		message string
	}
)

func (me *ErrNilValue) Error() string {
	return fmt.Sprintf("optional: called %s with a nil value", me.op)
}

func (me *ErrAbsent) Error() string {
	return me.message
}
