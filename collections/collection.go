package collections

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Collection is a generic, ordered container of key/value entries.
//
// Keys are either positional integers or strings (see [Key]) and are unique
// within a collection. Iteration follows construction order unless an
// operation documents a reordering.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. The mutators Push, Pop, Shift, Put, Forget
// and Pull are the exceptions: they change the receiver in place.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.FromEntries(collections.KV("Eko", 100), collections.KV("Budi", 80))
//	c := collections.Empty[int]()
//
// # Keys
//
// Operations that select entries (Filter, Partition, Slice, Take, Skip, …)
// keep the original keys. Operations that build a fresh sequence (Concat,
// Collapse, [Zip], sorting, the outer level of [Chunk]) assign positional keys.
// Call [Collection.Values] to renumber explicitly.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are exposed as package-level
// functions in this package:
//
//	names := collections.Map(c, func(n int, _ collections.Key) string {
//	    return strconv.Itoa(n * 2)
//	})
//	groups := collections.GroupBy(c, func(n int, _ collections.Key) string {
//	    if n%2 == 0 { return "even" }
//	    return "odd"
//	})
//
// # Laravel equivalents
//
// The method names map 1-to-1 to Laravel's Collection methods where possible.
// Differences:
//   - Failures are returned as errors (see errors.go) instead of nulls.
//   - Operations requiring comparable values accept a key-extraction fn
//     (e.g., Diff, Intersect, Unique) instead of relying on loose equality.
//   - Type-transforming operations (Map, GroupBy, …) are package-level functions.
type Collection[T any] struct {
	keys  []Key
	items []T
	index map[Key]int
	next  int
}

// build wraps parallel key/value slices, taking ownership of both.
// keys must be unique.
func build[T any](keys []Key, items []T) *Collection[T] {
	c := &Collection[T]{}
	c.reset(keys, items)
	return c
}

func positional[T any](items []T) *Collection[T] {
	keys := make([]Key, len(items))
	for i := range keys {
		keys[i] = IntKey(i)
	}
	return build(keys, items)
}

func (c *Collection[T]) reset(keys []Key, items []T) {
	c.keys = keys
	c.items = items
	c.index = make(map[Key]int, len(keys))
	c.next = 0
	for i, k := range keys {
		c.index[k] = i
		if n, ok := k.Int(); ok && n >= c.next {
			c.next = n + 1
		}
	}
}

// window copies the entries in positions [start, end), keeping their keys.
func (c *Collection[T]) window(start, end int) *Collection[T] {
	return build(slices.Clone(c.keys[start:end]), slices.Clone(c.items[start:end]))
}

func (c *Collection[T]) clone() *Collection[T] {
	return c.window(0, len(c.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied), keyed 0..n-1.
func New[T any](items ...T) *Collection[T] {
	return positional(slices.Clone(items))
}

// From creates a Collection from a slice (the slice is copied), keyed 0..n-1.
func From[T any](items []T) *Collection[T] {
	return positional(slices.Clone(items))
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return positional([]T{})
}

// FromEntries creates a Collection that keeps the given keys in order.
// A repeated key overwrites the earlier value but keeps its position.
func FromEntries[T any](entries ...Entry[T]) *Collection[T] {
	c := Empty[T]()
	for _, e := range entries {
		c.Put(e.Key, e.Value)
	}
	return c
}

// FromMap creates a keyed Collection from m. Keys are normalised with
// [KeyOf] and, since Go maps are unordered, sorted: integer keys first in
// numeric order, then string keys lexically.
func FromMap[T any](m map[string]T) *Collection[T] {
	entries := make([]Entry[T], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[T]{Key: KeyOf(k), Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key.less(entries[j].Key) })
	return FromEntries(entries...)
}

// Times creates a Collection by calling fn with 1..n.
func Times[T any](n int, fn func(int) T) *Collection[T] {
	if n < 0 {
		n = 0
	}
	items := make([]T, n)
	for i := range items {
		items[i] = fn(i + 1)
	}
	return positional(items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the values in order.
func (c *Collection[T]) All() []T { return slices.Clone(c.items) }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Entries returns a copy of the key/value entries in order.
func (c *Collection[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(c.items))
	for i, item := range c.items {
		out[i] = Entry[T]{Key: c.keys[i], Value: item}
	}
	return out
}

// Keys returns the keys in order.
func (c *Collection[T]) Keys() []Key { return slices.Clone(c.keys) }

// Values returns a copy of the collection with keys reset to 0..n-1.
func (c *Collection[T]) Values() *Collection[T] { return From(c.items) }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the value stored under key together with a presence flag.
func (c *Collection[T]) Get(key Key) (T, bool) {
	if i, ok := c.index[key]; ok {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Has reports whether key is present.
func (c *Collection[T]) Has(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// DataGet resolves one segment of a data path (see the data package).
// The segment is converted with [KeyOf], so "0" finds positional entries.
func (c *Collection[T]) DataGet(segment string) (any, bool) {
	v, ok := c.Get(KeyOf(segment))
	if !ok {
		return nil, false
	}
	return v, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key) for every entry.
func (c *Collection[T]) Each(fn func(T, Key)) {
	for i, item := range c.items {
		fn(item, c.keys[i])
	}
}

// Seq returns an iterator over the entries for use with range:
//
//	for k, v := range c.Seq() { ... }
func (c *Collection[T]) Seq() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for i, item := range c.items {
			if !yield(c.keys[i], item) {
				return
			}
		}
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Dump writes the collection to the package logger and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	l := Logger()
	b, err := c.ToJSON()
	if err != nil {
		l.Info().Int("count", c.Count()).Str("items", fmt.Sprintf("%v", c.items)).Msg("collection dump")
		return c
	}
	l.Info().Int("count", c.Count()).RawJSON("items", b).Msg("collection dump")
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally the first matching fns[0].
// Returns [ErrNotFound] when the collection is empty or nothing matches.
func (c *Collection[T]) First(fns ...func(T, Key) bool) (T, error) {
	for i, item := range c.items {
		if len(fns) == 0 || fns[0](item, c.keys[i]) {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// FirstOr is like [Collection.First] but returns def instead of an error.
func (c *Collection[T]) FirstOr(def T, fns ...func(T, Key) bool) T {
	item, err := c.First(fns...)
	if err != nil {
		return def
	}
	return item
}

// Last returns the last item, optionally the last matching fns[0]. The scan
// runs from the end. Returns [ErrNotFound] when nothing qualifies.
func (c *Collection[T]) Last(fns ...func(T, Key) bool) (T, error) {
	for i := len(c.items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](c.items[i], c.keys[i]) {
			return c.items[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// LastOr is like [Collection.Last] but returns def instead of an error.
func (c *Collection[T]) LastOr(def T, fns ...func(T, Key) bool) T {
	item, err := c.Last(fns...)
	if err != nil {
		return def
	}
	return item
}

// Contains reports whether at least one entry satisfies fn. It stops at the
// first match. Use [ContainsValue] to test for a literal value.
func (c *Collection[T]) Contains(fn func(T, Key) bool) bool {
	_, ok := c.Search(fn)
	return ok
}

// Search returns the key of the first entry for which fn returns true.
func (c *Collection[T]) Search(fn func(T, Key) bool) (Key, bool) {
	for i, item := range c.items {
		if fn(item, c.keys[i]) {
			return c.keys[i], true
		}
	}
	return Key{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the entries for which fn(item, key) returns true.
// Keys are preserved, not renumbered.
func (c *Collection[T]) Filter(fn func(T, Key) bool) *Collection[T] {
	keys := make([]Key, 0, len(c.keys))
	items := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, c.keys[i]) {
			keys = append(keys, c.keys[i])
			items = append(items, item)
		}
	}
	return build(keys, items)
}

// Reject returns the entries for which fn returns false.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, Key) bool) *Collection[T] {
	return c.Filter(func(item T, k Key) bool { return !fn(item, k) })
}

// Map returns a new collection with every value replaced by fn(item, key).
// Keys are preserved. Use the package-level [Map] to change the element type.
func (c *Collection[T]) Map(fn func(T, Key) T) *Collection[T] {
	items := make([]T, len(c.items))
	for i, item := range c.items {
		items[i] = fn(item, c.keys[i])
	}
	return build(slices.Clone(c.keys), items)
}

// Unique removes entries whose fn(item) was already seen, keeping the first
// occurrence and its key. Pass nil to compare fmt.Sprintf("%v") forms.
func (c *Collection[T]) Unique(fn func(T) any) *Collection[T] {
	fn = identity(fn)
	seen := make(map[any]struct{}, len(c.items))
	return c.Filter(func(item T, _ Key) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Diff returns the entries of c whose fn(item) does not occur in other.
// A nil fn compares fmt.Sprintf("%v") forms.
func (c *Collection[T]) Diff(other *Collection[T], fn func(T) any) *Collection[T] {
	fn = identity(fn)
	set := make(map[any]struct{}, other.Count())
	for _, item := range other.items {
		set[fn(item)] = struct{}{}
	}
	return c.Filter(func(item T, _ Key) bool {
		_, found := set[fn(item)]
		return !found
	})
}

// Intersect returns the entries of c whose fn(item) also occurs in other.
// A nil fn compares fmt.Sprintf("%v") forms.
func (c *Collection[T]) Intersect(other *Collection[T], fn func(T) any) *Collection[T] {
	fn = identity(fn)
	set := make(map[any]struct{}, other.Count())
	for _, item := range other.items {
		set[fn(item)] = struct{}{}
	}
	return c.Filter(func(item T, _ Key) bool {
		_, found := set[fn(item)]
		return found
	})
}

func identity[T any](fn func(T) any) func(T) any {
	if fn != nil {
		return fn
	}
	return func(item T) any { return fmt.Sprintf("%v", item) }
}

// Reverse returns the entries in reverse order, keys preserved.
func (c *Collection[T]) Reverse() *Collection[T] {
	out := c.clone()
	slices.Reverse(out.keys)
	slices.Reverse(out.items)
	out.reset(out.keys, out.items)
	return out
}

// SortFunc returns the values sorted by cmp, which returns a negative number
// when a < b, zero when equal and a positive number when a > b. The sort is
// stable and the result is keyed 0..n-1.
func (c *Collection[T]) SortFunc(cmp func(a, b T) int) *Collection[T] {
	items := slices.Clone(c.items)
	slices.SortStableFunc(items, cmp)
	return positional(items)
}

// SortBy returns the values sorted ascending by the float64 extracted by fn.
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return c.SortFunc(func(a, b T) int { return compareFloat(fn(a), fn(b)) })
}

// SortByDesc returns the values sorted descending by fn.
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return c.SortFunc(func(a, b T) int { return compareFloat(fn(b), fn(a)) })
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Shuffle returns the values in random order, keyed 0..n-1.
// See [SetRandom] for deterministic output.
func (c *Collection[T]) Shuffle() *Collection[T] {
	items := slices.Clone(c.items)
	randShuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return positional(items)
}

// Random returns one uniformly chosen value, or [ErrEmptyCollection].
func (c *Collection[T]) Random() (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return c.items[randIntn(len(c.items))], nil
}

// RandomN returns n randomly selected values (without replacement). If
// n >= Count(), a shuffled copy of the whole collection is returned.
func (c *Collection[T]) RandomN(n int) *Collection[T] {
	s := c.Shuffle()
	if n >= s.Count() {
		return s
	}
	return s.Take(n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values under the next free integer keys. It mutates the
// receiver and returns it.
func (c *Collection[T]) Push(values ...T) *Collection[T] {
	for _, v := range values {
		c.appendEntry(IntKey(c.next), v)
	}
	return c
}

// Put stores value under key, replacing an existing value in place or
// appending a new entry. It mutates the receiver and returns it.
func (c *Collection[T]) Put(key Key, value T) *Collection[T] {
	if i, ok := c.index[key]; ok {
		c.items[i] = value
		return c
	}
	c.appendEntry(key, value)
	return c
}

func (c *Collection[T]) appendEntry(key Key, value T) {
	if c.index == nil {
		c.index = make(map[Key]int)
	}
	c.index[key] = len(c.items)
	c.keys = append(c.keys, key)
	c.items = append(c.items, value)
	if n, ok := key.Int(); ok && n >= c.next {
		c.next = n + 1
	}
}

// Pop removes and returns the last value. It mutates the receiver.
// Returns [ErrEmptyCollection] when there is nothing to remove.
//
// Popping the most recently pushed integer key releases it, so a Push
// followed by a Pop leaves the collection exactly as it was.
func (c *Collection[T]) Pop() (T, error) {
	var zero T
	n := len(c.items)
	if n == 0 {
		return zero, ErrEmptyCollection
	}
	item, key := c.items[n-1], c.keys[n-1]
	c.items[n-1] = zero
	c.items = c.items[:n-1]
	c.keys = c.keys[:n-1]
	delete(c.index, key)
	if i, ok := key.Int(); ok && i == c.next-1 {
		c.next--
	}
	return item, nil
}

// Shift removes and returns the first value. It mutates the receiver and,
// like PHP's array_shift, renumbers the remaining integer keys from 0.
func (c *Collection[T]) Shift() (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	item := c.items[0]
	keys := make([]Key, 0, len(c.keys)-1)
	pos := 0
	for _, k := range c.keys[1:] {
		if k.IsInt() {
			k = IntKey(pos)
			pos++
		}
		keys = append(keys, k)
	}
	c.reset(keys, slices.Clone(c.items[1:]))
	return item, nil
}

// Pull removes the entry under key and returns its value. It mutates the
// receiver. Returns [ErrKeyNotFound] when key is absent.
func (c *Collection[T]) Pull(key Key) (T, error) {
	i, ok := c.index[key]
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrKeyNotFound, "pull %q", key.String())
	}
	item := c.items[i]
	c.removeAt(i)
	return item, nil
}

// Forget removes the entry under key if present. It mutates the receiver and
// returns it.
func (c *Collection[T]) Forget(key Key) *Collection[T] {
	if i, ok := c.index[key]; ok {
		c.removeAt(i)
	}
	return c
}

func (c *Collection[T]) removeAt(i int) {
	next := c.next
	keys := slices.Delete(slices.Clone(c.keys), i, i+1)
	items := slices.Delete(slices.Clone(c.items), i, i+1)
	c.reset(keys, items)
	// removing a key does not free its integer slot
	c.next = next
}

// Prepend returns a new collection with values inserted at the front.
// Integer keys are renumbered from 0; string keys are kept.
func (c *Collection[T]) Prepend(values ...T) *Collection[T] {
	keys := make([]Key, 0, len(values)+len(c.keys))
	items := make([]T, 0, len(values)+len(c.items))
	for i, v := range values {
		keys = append(keys, IntKey(i))
		items = append(items, v)
	}
	pos := len(values)
	for i, k := range c.keys {
		if k.IsInt() {
			k = IntKey(pos)
			pos++
		}
		keys = append(keys, k)
		items = append(items, c.items[i])
	}
	return build(keys, items)
}

// Concat returns a new collection holding c's values followed by other's,
// keyed 0..n+m-1. Original keys of both sides are discarded.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	items := make([]T, 0, len(c.items)+len(other.items))
	items = append(items, c.items...)
	items = append(items, other.items...)
	return positional(items)
}

// Merge returns a new collection where string-keyed entries of other
// overwrite those of c and integer-keyed entries of other are appended.
func (c *Collection[T]) Merge(other *Collection[T]) *Collection[T] {
	out := c.clone()
	for i, k := range other.keys {
		if k.IsInt() {
			out.Push(other.items[i])
			continue
		}
		out.Put(k, other.items[i])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n entries from the start, keys preserved.
// A negative n returns entries from the end (Take(-3) ≡ last 3 entries).
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return c.window(max(total+n, 0), total)
	}
	return c.window(0, min(n, total))
}

// TakeUntil returns entries from the start until fn returns true (exclusive).
func (c *Collection[T]) TakeUntil(fn func(T, Key) bool) *Collection[T] {
	for i, item := range c.items {
		if fn(item, c.keys[i]) {
			return c.window(0, i)
		}
	}
	return c.clone()
}

// TakeWhile returns entries from the start while fn returns true.
func (c *Collection[T]) TakeWhile(fn func(T, Key) bool) *Collection[T] {
	return c.TakeUntil(func(item T, k Key) bool { return !fn(item, k) })
}

// Skip returns the entries after the first n, keys preserved.
// A negative n drops entries counted from the end.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return c.window(0, max(total+n, 0))
	}
	return c.window(min(n, total), total)
}

// SkipUntil skips entries until fn returns true, then returns the rest
// (including the matching entry).
func (c *Collection[T]) SkipUntil(fn func(T, Key) bool) *Collection[T] {
	for i, item := range c.items {
		if fn(item, c.keys[i]) {
			return c.window(i, len(c.items))
		}
	}
	return Empty[T]()
}

// SkipWhile skips entries while fn returns true, then returns the rest.
func (c *Collection[T]) SkipWhile(fn func(T, Key) bool) *Collection[T] {
	return c.SkipUntil(func(item T, k Key) bool { return !fn(item, k) })
}

// Slice returns the entries starting at offset, keys preserved.
//
// A negative offset counts from the end. The optional length caps the
// number of entries; a negative length stops that many entries before the
// end. Without a length the slice runs to the end.
func (c *Collection[T]) Slice(offset int, length ...int) *Collection[T] {
	total := len(c.items)
	if offset < 0 {
		offset = max(total+offset, 0)
	}
	if offset >= total {
		return Empty[T]()
	}
	end := total
	if len(length) > 0 {
		switch {
		case length[0] < 0:
			end = total + length[0]
		case length[0] < total-offset:
			end = offset + length[0]
		}
	}
	if end <= offset {
		return Empty[T]()
	}
	return c.window(offset, end)
}

// ForPage returns the entries shown on page (1-based) when perPage entries
// fit on a page.
func (c *Collection[T]) ForPage(page, perPage int) *Collection[T] {
	if perPage <= 0 {
		return Empty[T]()
	}
	if page <= 1 {
		return c.Slice(0, perPage)
	}
	if page-1 > len(c.items)/perPage {
		return Empty[T]()
	}
	return c.Slice((page-1)*perPage, perPage)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// SumBy returns the sum of fn(item) over all items.
func (c *Collection[T]) SumBy(fn func(T) float64) float64 {
	var sum float64
	for _, item := range c.items {
		sum += fn(item)
	}
	return sum
}

// AvgBy returns the arithmetic mean of fn(item), or [ErrEmptyCollection].
func (c *Collection[T]) AvgBy(fn func(T) float64) (float64, error) {
	if len(c.items) == 0 {
		return 0, ErrEmptyCollection
	}
	return c.SumBy(fn) / float64(len(c.items)), nil
}

// MinBy returns the item with the smallest fn(item). Ties keep the first.
func (c *Collection[T]) MinBy(fn func(T) float64) (T, error) {
	return c.extremeBy(fn, func(v, best float64) bool { return v < best })
}

// MaxBy returns the item with the largest fn(item). Ties keep the first.
func (c *Collection[T]) MaxBy(fn func(T) float64) (T, error) {
	return c.extremeBy(fn, func(v, best float64) bool { return v > best })
}

func (c *Collection[T]) extremeBy(fn func(T) float64, better func(v, best float64) bool) (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	bestItem, bestVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); better(v, bestVal) {
			bestVal, bestItem = v, item
		}
	}
	return bestItem, nil
}

// Reduce folds the values from left to right with fn.
//
// With an initial value the fold starts from it. Without one the first value
// seeds the accumulator and folding starts at the second, so a single-item
// collection returns that item without calling fn. An empty collection with
// no initial value returns [ErrEmptyCollection].
//
// For reductions that change the type, use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial ...T) (T, error) {
	items := c.items
	var carry T
	switch {
	case len(initial) > 0:
		carry = initial[0]
	case len(items) == 0:
		return carry, ErrEmptyCollection
	default:
		carry, items = items[0], items[1:]
	}
	for _, item := range items {
		carry = fn(carry, item)
	}
	return carry, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits the collection in two: the entries for which fn returns
// true and the rest. Both sides keep their original keys.
func (c *Collection[T]) Partition(fn func(T, Key) bool) (*Collection[T], *Collection[T]) {
	pass, fail := Empty[T](), Empty[T]()
	for i, item := range c.items {
		if fn(item, c.keys[i]) {
			pass.appendEntry(c.keys[i], item)
		} else {
			fail.appendEntry(c.keys[i], item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Join concatenates the values formatted with fmt.Sprint.
//
// With a last separator and at least two items, every value but the last is
// joined by sep and the last one is attached with last[0]:
//
//	New("a", "b", "c").Join(", ", " and ") // "a, b and c"
func (c *Collection[T]) Join(sep string, last ...string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fmt.Sprint(item)
	}
	n := len(parts)
	if len(last) == 0 || n < 2 {
		return strings.Join(parts, sep)
	}
	return strings.Join(parts[:n-1], sep) + last[0] + parts[n-1]
}

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn)
}
