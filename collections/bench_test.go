package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-collections/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	return collections.Times(n, func(i int) int { return i })
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(n int, _ collections.Key) int { return n * 2 })
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(c, func(acc, n int, _ collections.Key) int { return acc + n }, 0)
	}
}

func BenchmarkSort(b *testing.B) {
	c := makeInts(10_000).Shuffle() // pre-shuffle once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Sort(c)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.GroupBy(c, func(n int, _ collections.Key) string {
			if n%2 == 0 {
				return "even"
			}
			return "odd"
		})
	}
}

func BenchmarkPushPop(b *testing.B) {
	c := collections.Empty[int]()
	for i := 0; i < b.N; i++ {
		c.Push(i)
		if c.Count() > 1000 {
			for c.IsNotEmpty() {
				_, _ = c.Pop()
			}
		}
	}
}

func BenchmarkUnique(b *testing.B) {
	// 50% duplicates
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i % 5000
	}
	c := collections.From(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Unique(func(n int) any { return n })
	}
}

func BenchmarkChunk(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Chunk(c, 100)
	}
}

func BenchmarkSum(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Sum(c)
	}
}

func BenchmarkZip(b *testing.B) {
	a := makeInts(10_000)
	other := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Zip(a, other)
	}
}

func BenchmarkLazyTake(b *testing.B) {
	for i := 0; i < b.N; i++ {
		collections.LazyRange(0, 1<<30).Filter(func(n int) bool { return n%3 == 0 }).Take(1000)
	}
}

func BenchmarkToJSON(b *testing.B) {
	c := makeInts(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.ToJSON()
	}
}
