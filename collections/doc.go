// Package collections provides a generic, fluent, keyed Collection type and
// a lazy, pull-driven LazyCollection, inspired by Laravel's
// Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][T], an ordered sequence of key/value
// entries. Keys are positional integers or strings (see [Key]), so the same
// type serves as a list and as an ordered map:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    Join(", ") // → "10, 8, 6"
//
//	scores := collections.FromEntries(
//	    collections.KV("Eko", 100), collections.KV("Budi", 80), collections.KV("Joko", 90))
//	scores.Filter(func(v int, _ collections.Key) bool { return v >= 90 })
//	// → {"Eko": 100, "Joko": 90}
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Push, Pop, Shift, Put, Forget and Pull are the only methods that
// modify their receiver. A Collection is not safe for concurrent mutation.
//
// # Key preservation
//
// Selecting operations (Filter, Reject, Partition, Slice, Take*, Skip*,
// Reverse, Unique) keep the original keys, so filtering a list leaves gaps:
// New(1, 2, 3, 4).Filter(even) holds 2 under key 1 and 4 under key 3.
// Operations that build a new sequence (Concat, Collapse, [Zip], FlatMap,
// Sort*, Shuffle) assign keys 0..n-1. [Collection.Values] renumbers.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, including those that nest
// collections (Zip, Chunk), are package-level functions:
//
//	collections.Map(c, func(n int, _ collections.Key) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [MapInto], [MapSpread], [MapToGroups],
// [MapWithKeys], [FlatMap], [Reduce], [Pluck], [PluckField], [GroupBy],
// [GroupByField], [GroupByFields], [KeyBy], [Zip], [ZipPairs], [Chunk],
// [Combine], [Collapse], [CollapseSlices], [FlattenDeep], [Sort], [SortDesc],
// [SortLocale], [Sum], [Avg], [Min], [Max], [ContainsValue], [LazyMap],
// [LazyChunk].
//
// # Lazy collections
//
// [LazyCollection] wraps an iter.Seq producer, possibly infinite. Stages
// (Map, Filter, Skip, Limit, …) wrap the producer; terminal operations pull
// only what they need:
//
//	collections.LazyRange(0, math.MaxInt).Filter(isPrime).Take(5)
//
// # Errors
//
// Operations that cannot produce a value return one of the sentinel errors in
// errors.go (e.g. [ErrEmptyCollection], [ErrNotFound]); test with errors.Is.
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
//
// # Logging
//
// Dump, macro calls and lazy cursors write to a zerolog logger; replace it
// with [SetLogger].
package collections
