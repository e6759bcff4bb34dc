package data

import (
	"reflect"
	"strconv"
	"strings"
)

// Accessor is implemented by containers that resolve a single path segment
// themselves.
type Accessor interface {
	DataGet(segment string) (any, bool)
}

// Get returns the value at the dot-notation path inside target.
// Returns def[0] (or nil) when any segment cannot be resolved. An empty path
// returns target itself.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(target any, path string, def ...any) any {
	if v, ok := Lookup(target, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation path resolves inside target.
func Has(target any, path string) bool {
	_, ok := Lookup(target, path)
	return ok
}

// Lookup returns the value at the dot-notation path and whether it exists.
func Lookup(target any, path string) (any, bool) {
	if path == "" {
		return target, true
	}
	current := target
	for _, seg := range strings.Split(path, ".") {
		next, ok := segment(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func segment(target any, seg string) (any, bool) {
	switch t := target.(type) {
	case nil:
		return nil, false
	case Accessor:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false
		}
		return t.DataGet(seg)
	case map[string]any:
		v, ok := t[seg]
		return v, ok
	}

	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
		if a, ok := v.Interface().(Accessor); ok {
			return a.DataGet(seg)
		}
	}

	switch v.Kind() {
	case reflect.Map:
		return mapIndex(v, seg)
	case reflect.Struct:
		return field(v, seg)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() {
			return nil, false
		}
		return v.Index(i).Interface(), true
	}
	return nil, false
}

func mapIndex(m reflect.Value, seg string) (any, bool) {
	kt := m.Type().Key()
	var key reflect.Value
	switch kt.Kind() {
	case reflect.String:
		key = reflect.ValueOf(seg).Convert(kt)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, kt.Bits())
		if err != nil {
			return nil, false
		}
		key = reflect.New(kt).Elem()
		key.SetInt(n)
	default:
		return nil, false
	}
	v := m.MapIndex(key)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func field(s reflect.Value, seg string) (any, bool) {
	st := s.Type()
	if f, ok := st.FieldByName(seg); ok && f.IsExported() {
		// promoted through a nil embedded pointer
		v, err := s.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}
		return v.Interface(), true
	}
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == seg || (name == "" && strings.EqualFold(f.Name, seg)) {
			return s.Field(i).Interface(), true
		}
	}
	return nil, false
}
