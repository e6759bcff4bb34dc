package collections

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Number is the set of element types Sum and Avg accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sort returns the values in ascending natural order, keyed 0..n-1.
// The sort is stable.
func Sort[T cmp.Ordered](c *Collection[T]) *Collection[T] {
	return c.SortFunc(cmp.Compare[T])
}

// SortDesc returns the values in descending natural order, keyed 0..n-1.
func SortDesc[T cmp.Ordered](c *Collection[T]) *Collection[T] {
	return c.SortFunc(func(a, b T) int { return cmp.Compare(b, a) })
}

// SortLocale sorts strings with the collation rules of tag, so that e.g.
// "apple" sorts before "Banana" in English. Keyed 0..n-1.
func SortLocale(c *Collection[string], tag language.Tag, opts ...collate.Option) *Collection[string] {
	col := collate.New(tag, opts...)
	return c.SortFunc(col.CompareString)
}

// Sum returns the sum of the values; 0 for an empty collection.
func Sum[T Number](c *Collection[T]) T {
	var sum T
	for _, v := range c.items {
		sum += v
	}
	return sum
}

// Avg returns the arithmetic mean of the values as a float64.
// Returns [ErrEmptyCollection] for an empty collection.
func Avg[T Number](c *Collection[T]) (float64, error) {
	if len(c.items) == 0 {
		return 0, ErrEmptyCollection
	}
	var sum float64
	for _, v := range c.items {
		sum += float64(v)
	}
	return sum / float64(len(c.items)), nil
}

// Min returns the smallest value, or [ErrEmptyCollection].
func Min[T cmp.Ordered](c *Collection[T]) (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return slices.Min(c.items), nil
}

// Max returns the largest value, or [ErrEmptyCollection].
func Max[T cmp.Ordered](c *Collection[T]) (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return slices.Max(c.items), nil
}
