package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-laravel-collections/collections"
)

type label string

func (l label) String() string { return "label:" + string(l) }

type badge struct{ name string }

func (b *badge) String() string { return "badge:" + b.name }

func TestKeyOf(t *testing.T) {
	seven := 7
	var missing *int
	var noBadge *badge

	tests := []struct {
		name string
		in   any
		want collections.Key
	}{
		{"int", 3, collections.IntKey(3)},
		{"negative int", -3, collections.IntKey(-3)},
		{"uint8", uint8(9), collections.IntKey(9)},
		{"numeric string", "7", collections.IntKey(7)},
		{"negative numeric string", "-12", collections.IntKey(-12)},
		{"leading zero", "07", collections.StringKey("07")},
		{"plus sign", "+7", collections.StringKey("+7")},
		{"minus zero", "-0", collections.StringKey("-0")},
		{"float string", "1.5", collections.StringKey("1.5")},
		{"word", "abc", collections.StringKey("abc")},
		{"empty string", "", collections.StringKey("")},
		{"true", true, collections.IntKey(1)},
		{"false", false, collections.IntKey(0)},
		{"nil", nil, collections.StringKey("")},
		{"nil pointer", missing, collections.StringKey("")},
		{"pointer", &seven, collections.IntKey(7)},
		{"float", 3.5, collections.StringKey("3.5")},
		{"stringer", label("x"), collections.StringKey("label:x")},
		{"pointer stringer", &badge{"gold"}, collections.StringKey("badge:gold")},
		{"nil pointer stringer", noBadge, collections.StringKey("")},
		{"key", collections.StringKey("10"), collections.StringKey("10")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collections.KeyOf(tt.in))
		})
	}
}

func TestKeyAccessors(t *testing.T) {
	i := collections.IntKey(4)
	n, ok := i.Int()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.True(t, i.IsInt())
	assert.Equal(t, "4", i.String())

	s := collections.StringKey("4")
	_, ok = s.Int()
	assert.False(t, ok)
	assert.False(t, s.IsInt())
	assert.Equal(t, "4", s.String())

	assert.False(t, i.Equal(s), "int and string keys with the same spelling differ")
	assert.True(t, s.Equal(collections.StringKey("4")))
}

func TestKeyAsMapKey(t *testing.T) {
	m := map[collections.Key]int{
		collections.IntKey(1):      1,
		collections.StringKey("1"): 2,
	}
	assert.Len(t, m, 2)
}

func TestSortLocale(t *testing.T) {
	words := collections.New("cherry", "Banana", "apple")

	assert.Equal(t, []string{"Banana", "apple", "cherry"}, collections.Sort(words).All())
	assert.Equal(t, []string{"apple", "Banana", "cherry"}, collections.SortLocale(words, language.English).All())
}

func TestPairUnpack(t *testing.T) {
	pairs := collections.ZipPairs(collections.New("a", "b", "c"), ints(1, 2))
	assert.Equal(t, 2, pairs.Count())

	first, err := pairs.First()
	assert.NoError(t, err)
	s, n := first.Unpack()
	assert.Equal(t, "a", s)
	assert.Equal(t, 1, n)
	assert.Equal(t, "(b, 2)", pairs.All()[1].String())
}

func TestEnumerable(t *testing.T) {
	var e collections.Enumerable[int] = ints(4, 5)
	assert.Equal(t, 2, e.Count())
	v, ok := e.Get(collections.IntKey(1))
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}
