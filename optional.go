// Package optional provides a generic container that either holds a value
// (Some) or holds nothing (None), so absence is part of a signature instead
// of a nil hidden inside the value's own type.
//
// An Optional is an immutable plain value: combinators return new instances,
// instances may be shared across goroutines without locking, and the zero
// value is None.
package optional

import (
	"fmt"
)

type (
	// Optional holds either a value of type T or nothing.
	Optional[T any] struct {
		value   T
		present bool
	}
)

// Some returns an Optional holding v.
//
// A Some never holds a nil value: passing a nil pointer, interface, map,
// slice, channel or function panics with *ErrNilValue. Callers holding a
// possibly-nil value should use FromPtr or FromNillable, which pick the
// variant instead of panicking.
func Some[T any](v T) Optional[T] {
	if isNil(v) {
		panic(&ErrNilValue{op: "Some"})
	}
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns None when v is nil, otherwise Some of the pointed-to
// value.
func FromPtr[T any](v *T) Optional[T] {
	if v == nil {
		return None[T]()
	}
	return Optional[T]{value: *v, present: true}
}

// FromNillable returns None when v is a nil pointer, interface, map, slice,
// channel or function, otherwise Some(v). For non-nillable kinds it always
// returns Some(v).
func FromNillable[T any](v T) Optional[T] {
	if isNil(v) {
		return None[T]()
	}
	return Optional[T]{value: v, present: true}
}

// Copy returns an Optional with the same variant and value.
func (o Optional[T]) Copy() Optional[T] {
	return Optional[T]{value: o.value, present: o.present}
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Optional is empty.
func (o Optional[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Expect returns the held value, or panics with *ErrAbsent carrying message
// verbatim. Use it where absence is a logic error worth naming.
func (o Optional[T]) Expect(message string) T {
	if !o.present {
		panic(&ErrAbsent{message: message})
	}
	return o.value
}

// Unwrap returns the held value, or panics with *ErrAbsent and a fixed
// message. Handy in tests and prototypes; production call sites should
// prefer Expect or the UnwrapOr family.
func (o Optional[T]) Unwrap() T {
	if !o.present {
		panic(&ErrAbsent{message: "optional: called Unwrap on a None value"})
	}
	return o.value
}

// UnwrapOr returns the held value, or d when empty.
func (o Optional[T]) UnwrapOr(d T) T {
	if !o.present {
		return d
	}
	return o.value
}

// UnwrapOrElse returns the held value, or the result of calling f when
// empty. f is only invoked on the empty path.
func (o Optional[T]) UnwrapOrElse(f func() T) T {
	if !o.present {
		return f()
	}
	return o.value
}

// OkOr returns the held value, or the zero value together with err when
// empty. The error is returned exactly as supplied.
func (o Optional[T]) OkOr(err error) (T, error) {
	if !o.present {
		var zero T
		return zero, err
	}
	return o.value, nil
}

// OkOrElse returns the held value, or the zero value together with the
// error built by f when empty.
func (o Optional[T]) OkOrElse(f func() error) (T, error) {
	if !o.present {
		var zero T
		return zero, f()
	}
	return o.value, nil
}

// Filter returns the Optional unchanged when it holds a value accepted by
// p, and None otherwise.
func (o Optional[T]) Filter(p func(v T) bool) Optional[T] {
	if o.present && p(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the Optional when it holds a value, and other otherwise.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns the Optional when it holds a value, and the result of
// calling f otherwise.
func (o Optional[T]) OrElse(f func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return f()
}

// Xor returns whichever of the two Optionals holds a value when exactly one
// does, and None when both or neither do.
func (o Optional[T]) Xor(other Optional[T]) Optional[T] {
	if o.present == other.present {
		return None[T]()
	}
	if o.present {
		return o
	}
	return other
}

// And returns other when the Optional holds a value, and None otherwise.
func (o Optional[T]) And(other Optional[T]) Optional[T] {
	if o.present {
		return other
	}
	return None[T]()
}

// IfSome calls f with the held value when present.
func (o Optional[T]) IfSome(f func(v T)) {
	if o.present {
		f(o.value)
	}
}

// IfNone calls f when the Optional is empty.
func (o Optional[T]) IfNone(f func()) {
	if !o.present {
		f()
	}
}

// Ptr returns a pointer to a copy of the held value, or nil when empty.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// String implements fmt.Stringer, rendering Some(value) or None.
func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
