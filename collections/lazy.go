package collections

import (
	"iter"
	"slices"
)

// LazyCollection is a deferred, pull-driven sequence of values. Nothing is
// produced until a terminal operation (Take, First, Each, Collect) asks for
// values, and only as many values as that operation needs are pulled, so the
// source may be infinite:
//
//	naturals := collections.Lazy(func(yield func(int) bool) {
//	    for n := 0; ; n++ {
//	        if !yield(n) {
//	            return
//	        }
//	    }
//	})
//	naturals.Take(3).All() // [0 1 2]
//
// Lazy values carry no keys. Stages such as Map and Filter wrap the producer
// and are themselves lazy. A LazyCollection is meant for one consumer at a
// time; abandoning it mid-sequence needs no cleanup.
type LazyCollection[T any] struct {
	source iter.Seq[T]
}

// Lazy wraps a producer. The producer must return as soon as yield returns
// false.
func Lazy[T any](producer iter.Seq[T]) *LazyCollection[T] {
	return &LazyCollection[T]{source: producer}
}

// LazyFrom creates a LazyCollection over a copy of items.
func LazyFrom[T any](items []T) *LazyCollection[T] {
	return Lazy(slices.Values(slices.Clone(items)))
}

// LazyFunc creates a LazyCollection from a pull function that returns the
// next value and false once exhausted. next is called exactly once per value
// consumed. The state lives in next, so consuming the collection twice
// continues where the first consumer stopped.
func LazyFunc[T any](next func() (T, bool)) *LazyCollection[T] {
	return Lazy(func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	})
}

// LazyRange yields from..to inclusive, counting down when from > to.
func LazyRange(from, to int) *LazyCollection[int] {
	step := 1
	if from > to {
		step = -1
	}
	return Lazy(func(yield func(int) bool) {
		for n := from; ; n += step {
			if !yield(n) || n == to {
				return
			}
		}
	})
}

// Seq exposes the producer for use with range.
func (l *LazyCollection[T]) Seq() iter.Seq[T] { return l.source }

// Cursor starts the producer and returns an explicit pull handle.
// Call [Cursor.Stop] when done with it before the source is exhausted.
func (l *LazyCollection[T]) Cursor() *Cursor[T] {
	next, stop := iter.Pull(l.source)
	return &Cursor[T]{next: next, stop: stop}
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy stages
// ─────────────────────────────────────────────────────────────────────────────

// Map transforms each value as it is pulled.
func (l *LazyCollection[T]) Map(fn func(T) T) *LazyCollection[T] {
	return LazyMap(l, fn)
}

// LazyMap transforms each value as it is pulled, changing the element type.
func LazyMap[T, U any](l *LazyCollection[T], fn func(T) U) *LazyCollection[U] {
	return Lazy(func(yield func(U) bool) {
		for v := range l.source {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// Filter passes on only the values for which fn returns true.
func (l *LazyCollection[T]) Filter(fn func(T) bool) *LazyCollection[T] {
	return Lazy(func(yield func(T) bool) {
		for v := range l.source {
			if fn(v) && !yield(v) {
				return
			}
		}
	})
}

// Reject passes on only the values for which fn returns false.
func (l *LazyCollection[T]) Reject(fn func(T) bool) *LazyCollection[T] {
	return l.Filter(func(v T) bool { return !fn(v) })
}

// Skip drops the first n values.
func (l *LazyCollection[T]) Skip(n int) *LazyCollection[T] {
	return Lazy(func(yield func(T) bool) {
		skipped := 0
		for v := range l.source {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// SkipWhile drops values while fn returns true and passes on the rest.
func (l *LazyCollection[T]) SkipWhile(fn func(T) bool) *LazyCollection[T] {
	return Lazy(func(yield func(T) bool) {
		skipping := true
		for v := range l.source {
			if skipping && fn(v) {
				continue
			}
			skipping = false
			if !yield(v) {
				return
			}
		}
	})
}

// Limit passes on at most n values and stops pulling afterwards.
func (l *LazyCollection[T]) Limit(n int) *LazyCollection[T] {
	return Lazy(func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range l.source {
			taken++
			if !yield(v) || taken == n {
				return
			}
		}
	})
}

// TakeWhile passes on values while fn returns true. The first failing value
// is pulled but not passed on.
func (l *LazyCollection[T]) TakeWhile(fn func(T) bool) *LazyCollection[T] {
	return Lazy(func(yield func(T) bool) {
		for v := range l.source {
			if !fn(v) || !yield(v) {
				return
			}
		}
	})
}

// TakeUntil passes on values until fn returns true (exclusive).
func (l *LazyCollection[T]) TakeUntil(fn func(T) bool) *LazyCollection[T] {
	return l.TakeWhile(func(v T) bool { return !fn(v) })
}

// LazyChunk groups consecutive values of l into collections of size values
// each; the last chunk may be shorter. Yields nothing if size <= 0.
func LazyChunk[T any](l *LazyCollection[T], size int) *LazyCollection[*Collection[T]] {
	return Lazy(func(yield func(*Collection[T]) bool) {
		if size <= 0 {
			return
		}
		chunk := make([]T, 0, min(size, 64))
		for v := range l.source {
			chunk = append(chunk, v)
			if len(chunk) < size {
				continue
			}
			if !yield(positional(chunk)) {
				return
			}
			chunk = make([]T, 0, min(size, 64))
		}
		if len(chunk) > 0 {
			yield(positional(chunk))
		}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations
// ─────────────────────────────────────────────────────────────────────────────

// Take pulls at most n values and returns them as an eager collection keyed
// 0..n-1. The producer is not asked for a value beyond the n-th, so Take is
// safe on infinite sources. n <= 0 pulls nothing.
func (l *LazyCollection[T]) Take(n int) *Collection[T] {
	if n <= 0 {
		return Empty[T]()
	}
	items := make([]T, 0, min(n, 64))
	for v := range l.source {
		items = append(items, v)
		if len(items) == n {
			break
		}
	}
	return positional(items)
}

// First returns the first value, optionally the first matching fns[0].
// Returns [ErrNotFound] if the source ends first. On an infinite source with
// no matching value First never returns.
func (l *LazyCollection[T]) First(fns ...func(T) bool) (T, error) {
	for v := range l.source {
		if len(fns) == 0 || fns[0](v) {
			return v, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Each calls fn for every value until fn returns false or the source ends.
func (l *LazyCollection[T]) Each(fn func(T) bool) {
	for v := range l.source {
		if !fn(v) {
			return
		}
	}
}

// Collect pulls every value into an eager collection. The source must be
// finite; bound infinite sources with Limit or use Take.
func (l *LazyCollection[T]) Collect() *Collection[T] {
	return positional(slices.AppendSeq([]T{}, l.source))
}

// ─────────────────────────────────────────────────────────────────────────────
// Cursor
// ─────────────────────────────────────────────────────────────────────────────

// Cursor is an explicit pull handle over a lazy source. The producer is
// suspended between calls to Next and resumes where it left off.
// A Cursor must not be used from more than one goroutine.
type Cursor[T any] struct {
	next    func() (T, bool)
	stop    func()
	pos     int
	done    bool
	stopped bool
}

// Next returns the next value, or false once the source is exhausted or the
// cursor was stopped.
func (c *Cursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		return v, false
	}
	c.pos++
	return v, true
}

// Position returns how many values have been pulled so far.
func (c *Cursor[T]) Position() int { return c.pos }

// Stop abandons the source. Further calls to Next return false. Safe to call
// more than once.
func (c *Cursor[T]) Stop() {
	if c.stopped {
		return
	}
	c.stopped, c.done = true, true
	c.stop()
	l := Logger()
	l.Debug().Int("position", c.pos).Msg("lazy cursor stopped")
}
