package optional

import (
	"iter"
)

// Iter returns a sequence over the held value: one element when present,
// none when empty. The sequence is lazy and each call yields a fresh,
// independently consumable sequence. A held collection is yielded as a
// single element, not element by element.
func (o Optional[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToSlice returns a slice with the held value, or an empty slice.
func (o Optional[T]) ToSlice() []T {
	if !o.present {
		return []T{}
	}
	return []T{o.value}
}
