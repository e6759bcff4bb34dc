package collections

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-collections/data"
)

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They are designed to be
// composable with method-chaining calls:
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4, 5).Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Collection[U] with the
// same keys.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, Key) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, c.keys[i])
	}
	return build(slices.Clone(c.keys), out)
}

// MapInto wraps every value with a one-argument constructor, keys preserved.
//
//	people := collections.MapInto(names, NewPerson)
func MapInto[T, U any](c *Collection[T], ctor func(T) U) *Collection[U] {
	return Map(c, func(item T, _ Key) U { return ctor(item) })
}

// MapWithKeys builds a new collection from the entries returned by fn.
// When two entries share a key the later value wins, in the first position.
func MapWithKeys[T, V any](c *Collection[T], fn func(T, Key) Entry[V]) *Collection[V] {
	out := Empty[V]()
	for i, item := range c.items {
		e := fn(item, c.keys[i])
		out.Put(e.Key, e.Value)
	}
	return out
}

// MapToGroups groups the single-entry results of fn by their key. Each group
// is a collection of the entry values in input order, keyed 0..n-1; groups
// appear in the order their key was first produced.
//
//	byDept := collections.MapToGroups(people, func(p Person, _ collections.Key) collections.Entry[string] {
//	    return collections.KV(p.Department, p.Name)
//	})
func MapToGroups[T, V any](c *Collection[T], fn func(T, Key) Entry[V]) *Collection[*Collection[V]] {
	groups := Empty[*Collection[V]]()
	for i, item := range c.items {
		e := fn(item, c.keys[i])
		group, ok := groups.Get(e.Key)
		if !ok {
			group = Empty[V]()
			groups.Put(e.Key, group)
		}
		group.Push(e.Value)
	}
	return groups
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Collection[U] keyed 0..n-1.
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    func(s string, _ collections.Key) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T, Key) []U) *Collection[U] {
	out := make([]U, 0, len(c.items))
	for i, item := range c.items {
		out = append(out, fn(item, c.keys[i])...)
	}
	return positional(out)
}

// Reduce folds Collection[T] into a single value of type U, starting from
// initial.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n int, _ collections.Key) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, Key) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, c.keys[i])
	}
	return result
}

// Pluck extracts a single field U from every item T, keys preserved.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ Key) U { return fn(item) })
}

// PluckField extracts the value at a dot-notation path from every item, keys
// preserved. Missing paths yield nil. See [data.Get] for the path rules.
//
//	cities := collections.PluckField(users, "Address.City")
func PluckField[T any](c *Collection[T], path string) *Collection[any] {
	return Map(c, func(item T, _ Key) any { return data.Get(item, path) })
}

// GroupBy groups entries by the value fn returns, converted with [KeyOf].
// Groups appear in first-seen order and each group keeps the input order of
// its entries, keyed 0..n-1.
//
//	byParity := collections.GroupBy(c, func(n int, _ collections.Key) string {
//	    if n%2 == 0 { return "even" }
//	    return "odd"
//	})
func GroupBy[T any, K comparable](c *Collection[T], fn func(T, Key) K) *Collection[*Collection[T]] {
	groups := Empty[*Collection[T]]()
	for i, item := range c.items {
		k := KeyOf(fn(item, c.keys[i]))
		group, ok := groups.Get(k)
		if !ok {
			group = Empty[T]()
			groups.Put(k, group)
		}
		group.Push(item)
	}
	return groups
}

// GroupByField groups entries by the value found at a dot-notation path
// (map keys, struct fields, slice indexes). Items lacking the path are
// grouped under the empty string key.
//
//	byDept := collections.GroupByField(people, "department")
func GroupByField[T any](c *Collection[T], path string) *Collection[*Collection[T]] {
	return GroupBy(c, func(item T, _ Key) Key { return KeyOf(data.Get(item, path)) })
}

// GroupByFields groups by several paths, one nesting level per path. Every
// level but the last holds *Collection[any] values; the last level holds the
// *Collection[T] groups. Without paths each item is returned as an any.
//
//	nested := collections.GroupByFields(people, "department", "city")
//	// → {"IT": {"Jakarta": [...], "Bandung": [...]}, "HR": {...}}
func GroupByFields[T any](c *Collection[T], paths ...string) *Collection[any] {
	if len(paths) == 0 {
		return Map(c, func(item T, _ Key) any { return item })
	}
	return Map(GroupByField(c, paths[0]), func(group *Collection[T], _ Key) any {
		if len(paths) == 1 {
			return group
		}
		return GroupByFields(group, paths[1:]...)
	})
}

// KeyBy re-keys the collection by the value fn returns, converted with
// [KeyOf]. When several items share a key the last one wins.
//
//	byID := collections.KeyBy(users, func(u User, _ collections.Key) int { return u.ID })
func KeyBy[T any, K comparable](c *Collection[T], fn func(T, Key) K) *Collection[T] {
	out := Empty[T]()
	for i, item := range c.items {
		out.Put(KeyOf(fn(item, c.keys[i])), item)
	}
	return out
}

// ContainsValue reports whether c holds a value equal to v.
func ContainsValue[T comparable](c *Collection[T], v T) bool {
	return slices.Contains(c.items, v)
}

// ZipPairs combines two collections element-by-element into Pairs.
// Stops at the shorter of the two collections.
//
//	pairs := collections.ZipPairs(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2, 3),
//	) // → [(a,1), (b,2), (c,3)]
func ZipPairs[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	n := min(len(a.items), len(b.items))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return positional(out)
}

// Zip pairs the values of a and b by position. Each result entry is a
// two-item collection; the length is the shorter of the two inputs.
// Use [ZipPairs] to zip collections of different element types.
//
//	collections.Zip(collections.New(1, 2, 3), collections.New(4, 5, 6))
//	// → [[1, 4], [2, 5], [3, 6]]
func Zip[T any](a, b *Collection[T]) *Collection[*Collection[T]] {
	n := min(len(a.items), len(b.items))
	out := make([]*Collection[T], n)
	for i := 0; i < n; i++ {
		out[i] = New(a.items[i], b.items[i])
	}
	return positional(out)
}

// Chunk splits c into consecutive sub-collections of at most size entries.
// The outer collection is keyed 0..n-1; each chunk keeps the original keys
// of its entries. Returns an empty collection if size <= 0.
func Chunk[T any](c *Collection[T], size int) *Collection[*Collection[T]] {
	total := len(c.items)
	if size <= 0 || total == 0 {
		return Empty[*Collection[T]]()
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	chunks := make([]*Collection[T], 0, n)
	for start := 0; start < total; {
		end := start + min(size, total-start)
		chunks = append(chunks, c.window(start, end))
		start = end
	}
	return positional(chunks)
}

// Combine uses the values of keys as keys for the values of values.
// Returns [ErrLengthMismatch] if the two collections differ in length.
//
//	c, _ := collections.Combine(collections.New("name", "country"),
//	    collections.New("Eko", "Indonesia"))
//	// → {"name": "Eko", "country": "Indonesia"}
func Combine[K ~string | ~int, V any](keys *Collection[K], values *Collection[V]) (*Collection[V], error) {
	if len(keys.items) != len(values.items) {
		return nil, errors.Wrapf(ErrLengthMismatch, "combine %d keys with %d values", len(keys.items), len(values.items))
	}
	out := Empty[V]()
	for i, k := range keys.items {
		out.Put(KeyOf(k), values.items[i])
	}
	return out, nil
}

// Collapse flattens a collection of collections into one collection keyed
// 0..n-1 (one level only).
func Collapse[T any](c *Collection[*Collection[T]]) *Collection[T] {
	total := 0
	for _, inner := range c.items {
		total += inner.Count()
	}
	out := make([]T, 0, total)
	for _, inner := range c.items {
		out = append(out, inner.items...)
	}
	return positional(out)
}

// CollapseSlices flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.CollapseSlices(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func CollapseSlices[T any](c *Collection[[]T]) *Collection[T] {
	total := 0
	for _, chunk := range c.items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range c.items {
		out = append(out, chunk...)
	}
	return positional(out)
}

// FlattenDeep recursively flattens a Collection[any] that may contain nested
// []any slices or *Collection[any] values of arbitrary depth.
//
// The result type is Collection[any]; use type assertions on individual
// elements as needed.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	out := make([]any, 0, len(c.items))
	var flatten func(items []any)
	flatten = func(items []any) {
		for _, item := range items {
			switch v := item.(type) {
			case []any:
				flatten(v)
			case *Collection[any]:
				flatten(v.items)
			default:
				out = append(out, item)
			}
		}
	}
	flatten(c.items)
	return positional(out)
}
