package optional

// Combinators whose result type differs from the element type live here as
// package functions, since Go methods cannot introduce type parameters.

// Map returns Some of f applied to the held value, or None when o is empty.
// A nil result collapses to None, keeping the rule that a Some never holds
// a nil value.
func Map[T, U any](o Optional[T], f func(v T) U) Optional[U] {
	if o.IsNone() {
		return None[U]()
	}
	return FromNillable(f(o.Unwrap()))
}

// MapOr returns f applied to the held value, or d when o is empty. No
// intermediate Optional is built.
func MapOr[T, U any](o Optional[T], f func(v T) U, d U) U {
	if o.IsNone() {
		return d
	}
	return f(o.Unwrap())
}

// MapOrElse returns f applied to the held value, or the result of calling d
// when o is empty.
func MapOrElse[T, U any](o Optional[T], f func(v T) U, d func() U) U {
	if o.IsNone() {
		return d()
	}
	return f(o.Unwrap())
}

// AndThen returns f applied to the held value, or None when o is empty. The
// Optional built by f is returned as-is, so chains of optional-producing
// steps never nest.
func AndThen[T, U any](o Optional[T], f func(v T) Optional[U]) Optional[U] {
	if o.IsNone() {
		return None[U]()
	}
	return f(o.Unwrap())
}

// Flatten removes exactly one level of nesting: Some(inner) becomes inner,
// None stays None.
func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if o.IsNone() {
		return None[T]()
	}
	return o.Unwrap()
}

// Match returns some applied to the held value when o holds one, and the
// result of calling none otherwise. Both arms produce a U; it is the single
// value-returning elimination form the accessors can be read as shorthands
// for.
func Match[T, U any](o Optional[T], some func(v T) U, none func() U) U {
	if o.IsNone() {
		return none()
	}
	return some(o.Unwrap())
}

// Equal reports whether both Optionals are empty, or both hold values that
// compare equal. Optional[T] itself supports == whenever T does; Equal
// spells the contract out.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}
