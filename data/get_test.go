package data_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-laravel-collections/data"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
			"tags": []string{"admin", "ops"},
		},
		"score": 42,
	}
}

type address struct {
	City string `json:"city"`
}

type user struct {
	Name     string   `json:"name"`
	Email    string   `json:"email_address,omitempty"`
	Address  *address `json:"address"`
	Scores   map[int]int
	internal string
}

// shelf resolves segments itself.
type shelf map[string]string

func (s shelf) DataGet(segment string) (any, bool) {
	v, ok := s["book:"+segment]
	return v, ok
}

func TestGet(t *testing.T) {
	m := makeNested()
	if v := data.Get(m, "user.name"); v != "Alice" {
		t.Fatalf("Get user.name = %v; want Alice", v)
	}
	if v := data.Get(m, "user.address.city"); v != "London" {
		t.Fatalf("Get city = %v; want London", v)
	}
	if v := data.Get(m, "score"); v != 42 {
		t.Fatalf("Get score = %v; want 42", v)
	}
	if v := data.Get(m, "user.tags.1"); v != "ops" {
		t.Fatalf("Get user.tags.1 = %v; want ops", v)
	}
	if v := data.Get(m, "missing"); v != nil {
		t.Fatalf("Get missing = %v; want nil", v)
	}
	if v := data.Get(m, "missing", "default"); v != "default" {
		t.Fatalf("Get missing default = %v; want default", v)
	}
	if v := data.Get(m, "score.deeper", 0); v != 0 {
		t.Fatalf("Get through a scalar = %v; want 0", v)
	}
}

func TestGetEmptyPath(t *testing.T) {
	m := makeNested()
	if diff := cmp.Diff(m, data.Get(m, "")); diff != "" {
		t.Fatalf("Get with empty path (-want +got):\n%s", diff)
	}
}

func TestGetStruct(t *testing.T) {
	u := user{
		Name:     "Bob",
		Email:    "bob@example.com",
		Address:  &address{City: "Paris"},
		Scores:   map[int]int{2024: 7},
		internal: "hidden",
	}

	tests := []struct {
		path string
		want any
		ok   bool
	}{
		{"Name", "Bob", true},
		{"name", "Bob", true},
		{"email_address", "bob@example.com", true},
		{"Email", "bob@example.com", true},
		{"address.city", "Paris", true},
		{"Address.City", "Paris", true},
		{"Scores.2024", 7, true},
		{"Scores.1999", nil, false},
		{"Scores.abc", nil, false},
		{"internal", nil, false},
		{"nope", nil, false},
	}
	for _, tt := range tests {
		got, ok := data.Lookup(&u, tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGetNilPointers(t *testing.T) {
	var u *user
	if data.Has(u, "name") {
		t.Fatal("Has on nil pointer = true; want false")
	}
	if data.Has(user{}, "address.city") {
		t.Fatal("Has through nil field = true; want false")
	}
	if data.Has(nil, "x") {
		t.Fatal("Has on nil = true; want false")
	}
}

func TestGetSliceBounds(t *testing.T) {
	items := []int{1, 2, 3}
	for _, path := range []string{"-1", "3", "x"} {
		if data.Has(items, path) {
			t.Errorf("Has(items, %q) = true; want false", path)
		}
	}
	if v := data.Get([2]string{"a", "b"}, "1"); v != "b" {
		t.Fatalf("Get array index = %v; want b", v)
	}
}

func TestGetAccessor(t *testing.T) {
	s := shelf{"book:go": "The Go Programming Language"}
	m := map[string]any{"shelf": s}

	if v := data.Get(m, "shelf.go"); v != "The Go Programming Language" {
		t.Fatalf("Get shelf.go = %v", v)
	}
	if data.Has(m, "shelf.rust") {
		t.Fatal("Has shelf.rust = true; want false")
	}
	if v := data.Get(&s, "go"); v != "The Go Programming Language" {
		t.Fatalf("Get through pointer to accessor = %v", v)
	}
}

func TestHas(t *testing.T) {
	m := makeNested()
	if !data.Has(m, "user.address.country") {
		t.Fatal("Has user.address.country = false; want true")
	}
	if data.Has(m, "user.address.zip") {
		t.Fatal("Has user.address.zip = true; want false")
	}
}
