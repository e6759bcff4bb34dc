// Package data resolves dot-notation paths against arbitrary Go values, in
// the spirit of Laravel's data_get helper.
//
// A path such as "user.address.city" is split on dots and each segment is
// looked up in turn:
//
//   - map[string]any and other maps with string or integer keys
//   - exported struct fields, by name, by json tag, or case-insensitively
//   - slices and arrays, by decimal index
//   - pointers and interfaces are followed
//   - values implementing [Accessor] resolve segments themselves
//
//	m := map[string]any{
//	    "user": map[string]any{"name": "Alice", "tags": []string{"a", "b"}},
//	}
//	data.Get(m, "user.name")            // → "Alice"
//	data.Get(m, "user.tags.1")          // → "b"
//	data.Get(m, "user.age", 0)          // → 0 (default)
//	data.Has(m, "user.name")            // → true
//
// The collections package uses this to group and pluck by field path.
package data
