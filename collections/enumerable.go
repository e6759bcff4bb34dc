package collections

// Enumerable is the read-only surface shared by eager collections.
//
// Accept Enumerable in your own functions so that callers can pass any
// *Collection[T] (or a test double) without depending on the concrete type.
type Enumerable[T any] interface {
	// All returns a copy of the values in order.
	All() []T

	// Entries returns a copy of the key/value entries in order.
	Entries() []Entry[T]

	// Count returns the number of entries.
	Count() int

	// Each calls fn(item, key) for every entry.
	Each(fn func(T, Key))

	// Get returns the value stored under key.
	Get(key Key) (T, bool)

	// First returns the first value, optionally the first matching fns[0],
	// or ErrNotFound.
	First(fns ...func(T, Key) bool) (T, error)

	// Last returns the last value, optionally the last matching fns[0],
	// or ErrNotFound.
	Last(fns ...func(T, Key) bool) (T, error)

	IsEmpty() bool
	IsNotEmpty() bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
