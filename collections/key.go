package collections

import (
	"fmt"
	"reflect"
	"strconv"
)

// Key identifies an entry in a [Collection]. A key is either an integer
// (positional) or a string (associative), mirroring PHP array keys.
//
// Key is comparable and can be used as a map key.
type Key struct {
	name  string
	index int
	named bool
}

// IntKey returns a positional key.
func IntKey(i int) Key { return Key{index: i} }

// StringKey returns an associative key. The string is kept verbatim, even
// when it looks like a number; use [KeyOf] for PHP-style normalisation.
func StringKey(s string) Key { return Key{name: s, named: true} }

// KeyOf converts v into a Key using PHP array-key rules:
//
//   - integer types become integer keys
//   - strings holding a canonical decimal integer ("7", "-3") become integer
//     keys; everything else ("07", "1.5", "abc") stays a string key
//   - bools become 0 or 1
//   - nil, including a nil pointer, becomes the empty string key
//   - other pointers are dereferenced
//   - any other value is formatted with fmt.Sprint
func KeyOf(v any) Key {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return StringKey("")
	}
	switch k := v.(type) {
	case Key:
		return k
	case nil:
		return StringKey("")
	case bool:
		if k {
			return IntKey(1)
		}
		return IntKey(0)
	case int:
		return IntKey(k)
	case int8:
		return IntKey(int(k))
	case int16:
		return IntKey(int(k))
	case int32:
		return IntKey(int(k))
	case int64:
		return IntKey(int(k))
	case uint:
		return IntKey(int(k))
	case uint8:
		return IntKey(int(k))
	case uint16:
		return IntKey(int(k))
	case uint32:
		return IntKey(int(k))
	case uint64:
		return IntKey(int(k))
	case string:
		if i, ok := canonicalInt(k); ok {
			return IntKey(i)
		}
		return StringKey(k)
	case fmt.Stringer:
		return KeyOf(k.String())
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			return KeyOf(rv.Elem().Interface())
		}
		return KeyOf(fmt.Sprint(v))
	}
}

// canonicalInt reports whether s is the canonical decimal spelling of an int:
// no leading zeros, no plus sign, no whitespace.
func canonicalInt(s string) (int, bool) {
	if s == "" || s == "-0" {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsInt reports whether k is a positional key.
func (k Key) IsInt() bool { return !k.named }

// Int returns the positional value of k; ok is false for string keys.
func (k Key) Int() (int, bool) {
	if k.named {
		return 0, false
	}
	return k.index, true
}

// String returns the key as a string. Integer keys are formatted in base 10.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// Equal reports whether k and other are the same key.
func (k Key) Equal(other Key) bool { return k == other }

// less orders integer keys before string keys, integers numerically and
// strings lexically.
func (k Key) less(other Key) bool {
	if k.named != other.named {
		return !k.named
	}
	if k.named {
		return k.name < other.name
	}
	return k.index < other.index
}

// Entry is a single key/value pair of a [Collection].
type Entry[T any] struct {
	Key   Key
	Value T
}

// KV returns an entry with a string key.
func KV[T any](key string, value T) Entry[T] {
	return Entry[T]{Key: StringKey(key), Value: value}
}

// IV returns an entry with an integer key.
func IV[T any](index int, value T) Entry[T] {
	return Entry[T]{Key: IntKey(index), Value: value}
}
