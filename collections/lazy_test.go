package collections_test

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-laravel-collections/collections"
)

// counter returns an infinite 0, 1, 2, … source and a pointer to the number
// of values it has produced so far.
func counter() (*collections.LazyCollection[int], *int) {
	produced := new(int)
	return collections.Lazy(func(yield func(int) bool) {
		for n := 0; ; n++ {
			*produced++
			if !yield(n) {
				return
			}
		}
	}), produced
}

func TestLazyCollection(t *testing.T) {
	lazy, produced := counter()

	result := lazy.Take(10)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, result.All())
	assert.Equal(t, 10, *produced, "take must not pull past the n-th value")
}

func TestLazyTakeZero(t *testing.T) {
	lazy, produced := counter()
	assert.True(t, lazy.Take(0).IsEmpty())
	assert.True(t, lazy.Take(-1).IsEmpty())
	assert.Zero(t, *produced)
}

func TestLazyTakeFinite(t *testing.T) {
	assert.Equal(t, []int{1, 2}, collections.LazyFrom([]int{1, 2}).Take(5).All())
}

func TestLazyFromCopies(t *testing.T) {
	items := []int{1, 2, 3}
	lazy := collections.LazyFrom(items)
	items[0] = 100
	assert.Equal(t, []int{1, 2, 3}, lazy.Collect().All())
}

func TestLazyStages(t *testing.T) {
	lazy, produced := counter()

	result := lazy.
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * 10 }).
		Take(3)

	assert.Equal(t, []int{0, 20, 40}, result.All())
	assert.Equal(t, 5, *produced)
}

func TestLazyMapChangesType(t *testing.T) {
	lazy, _ := counter()
	labels := collections.LazyMap(lazy, func(n int) string { return "#" + strconv.Itoa(n) }).Take(2)
	assert.Equal(t, []string{"#0", "#1"}, labels.All())
}

func TestLazyReject(t *testing.T) {
	odd := collections.LazyRange(1, 6).Reject(func(n int) bool { return n%2 == 0 }).Collect()
	assert.Equal(t, []int{1, 3, 5}, odd.All())
}

func TestLazySkipLimit(t *testing.T) {
	lazy, produced := counter()

	assert.Equal(t, []int{2, 3, 4}, lazy.Skip(2).Limit(3).Collect().All())
	assert.Equal(t, 5, *produced)

	assert.True(t, collections.LazyRange(1, 3).Limit(0).Collect().IsEmpty())
	assert.Equal(t, []int{1, 2, 3}, collections.LazyRange(1, 3).Limit(10).Collect().All())
}

func TestLazyTakeWhileUntil(t *testing.T) {
	lazy, _ := counter()
	assert.Equal(t, []int{0, 1, 2, 3}, lazy.TakeWhile(func(n int) bool { return n < 4 }).Collect().All())

	lazy, _ = counter()
	assert.Equal(t, []int{0, 1}, lazy.TakeUntil(func(n int) bool { return n == 2 }).Collect().All())
}

func TestLazySkipWhile(t *testing.T) {
	lazy, _ := counter()
	assert.Equal(t, []int{3, 4}, lazy.SkipWhile(func(n int) bool { return n < 3 }).Take(2).All())

	// only the leading run is skipped
	got := collections.LazyFrom([]int{1, 5, 1}).SkipWhile(func(n int) bool { return n < 3 }).Collect()
	assert.Equal(t, []int{5, 1}, got.All())
}

func TestLazyChunk(t *testing.T) {
	lazy, produced := counter()
	chunks := collections.LazyChunk(lazy, 2).Take(2).All()
	require.Len(t, chunks, 2)
	assert.Equal(t, []int{0, 1}, chunks[0].All())
	assert.Equal(t, []int{2, 3}, chunks[1].All())
	assert.Equal(t, 4, *produced)

	tail := collections.LazyChunk(collections.LazyRange(1, 5), 2).Collect().All()
	require.Len(t, tail, 3)
	assert.Equal(t, []int{5}, tail[2].All())

	assert.True(t, collections.LazyChunk(collections.LazyRange(1, 5), 0).Collect().IsEmpty())
}

func TestLazyChunkHugeSize(t *testing.T) {
	chunks := collections.LazyChunk(collections.LazyFrom([]int{1, 2}), math.MaxInt).Take(1).All()
	require.Len(t, chunks, 1)
	assert.Equal(t, []int{1, 2}, chunks[0].All())
}

func TestLazyFirst(t *testing.T) {
	lazy, _ := counter()
	v, err := lazy.First(func(n int) bool { return n > 5 })
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	v, err = collections.LazyRange(7, 9).First()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = collections.LazyFrom([]int{}).First()
	require.ErrorIs(t, err, collections.ErrNotFound)
}

func TestLazyEach(t *testing.T) {
	lazy, _ := counter()
	var seen []int
	lazy.Each(func(n int) bool {
		seen = append(seen, n)
		return n < 3
	})
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestLazyFunc(t *testing.T) {
	calls := 0
	a, b := 0, 1
	fib := collections.LazyFunc(func() (int, bool) {
		calls++
		v := b
		a, b = b, a+b
		return v, true
	})

	assert.Equal(t, []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}, fib.Take(10).All())
	assert.Equal(t, 10, calls)
}

func TestLazyFuncExhausted(t *testing.T) {
	n := 0
	lazy := collections.LazyFunc(func() (int, bool) {
		n++
		return n, n <= 3
	})
	assert.Equal(t, []int{1, 2, 3}, lazy.Collect().All())
}

func TestLazyRange(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collections.LazyRange(1, 5).Collect().All())
	assert.Equal(t, []int{3, 2, 1}, collections.LazyRange(3, 1).Collect().All())
	assert.Equal(t, []int{2}, collections.LazyRange(2, 2).Collect().All())
}

func TestLazySeq(t *testing.T) {
	sum := 0
	for n := range collections.LazyRange(1, 4).Seq() {
		sum += n
	}
	assert.Equal(t, 10, sum)
}

func TestLazyCursor(t *testing.T) {
	var buf bytes.Buffer
	prev := collections.Logger()
	collections.SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { collections.SetLogger(prev) })

	lazy, produced := counter()
	cur := lazy.Cursor()
	for want := 0; want < 3; want++ {
		v, ok := cur.Next()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 3, cur.Position())
	assert.Equal(t, 3, *produced)

	cur.Stop()
	cur.Stop()
	_, ok := cur.Next()
	assert.False(t, ok)
	assert.Contains(t, buf.String(), `"position":3`)
}

func TestLazyCursorExhausted(t *testing.T) {
	cur := collections.LazyFrom([]string{"a"}).Cursor()
	defer cur.Stop()

	v, ok := cur.Next()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = cur.Next()
	assert.False(t, ok)
	_, ok = cur.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, cur.Position())
}

func TestLazyMacro(t *testing.T) {
	t.Cleanup(collections.FlushMacros)

	collections.RegisterMacro("firstThree", func(l any, _ ...any) any {
		return l.(*collections.LazyCollection[int]).Take(3)
	})
	lazy, _ := counter()
	res, err := lazy.Macro("firstThree")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.(*collections.Collection[int]).All())
}
