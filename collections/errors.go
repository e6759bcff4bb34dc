package collections

import "github.com/pkg/errors"

// Sentinel errors returned by Collection and LazyCollection operations.
//
// Call sites wrap them with context, so compare with [errors.Is]:
//
//	_, err := c.Pop()
//	if errors.Is(err, collections.ErrEmptyCollection) {
//	    // nothing to pop
//	}
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty (Pop, Shift, Random, Avg, Min, Max,
	// Reduce without an initial value).
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNotFound is returned by First / Last when no item exists or none
	// satisfies the predicate.
	ErrNotFound = errors.New("collections: no items match the given condition")

	// ErrKeyNotFound is returned by Pull when the key is not present.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrArityMismatch is returned by MapSpread when an item does not hold
	// as many values as the callback takes arguments.
	ErrArityMismatch = errors.New("collections: item arity does not match callback arity")

	// ErrInvalidCallback is returned by MapSpread when the callback is not a
	// function or its parameter/result types do not fit the collection.
	ErrInvalidCallback = errors.New("collections: invalid callback")

	// ErrLengthMismatch is returned by Combine when the key and value
	// collections have different lengths.
	ErrLengthMismatch = errors.New("collections: keys and values must have the same length")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
