package collections

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// isList reports whether the keys are exactly 0..n-1 in order, i.e. whether
// the collection encodes as an array rather than an object.
func (c *Collection[T]) isList() bool {
	for i, k := range c.keys {
		if k != IntKey(i) {
			return false
		}
	}
	return true
}

// ToJSON encodes the collection. A collection keyed 0..n-1 becomes a JSON
// array; any other collection becomes an object whose members follow entry
// order.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := c.encodeJSON(enc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c *Collection[T]) encodeJSON(enc *jsontext.Encoder) error {
	list := c.isList()
	begin, end := jsontext.ObjectStart, jsontext.ObjectEnd
	if list {
		begin, end = jsontext.ArrayStart, jsontext.ArrayEnd
	}
	if err := enc.WriteToken(begin); err != nil {
		return err
	}
	for i, item := range c.items {
		if !list {
			if err := enc.WriteToken(jsontext.String(c.keys[i].String())); err != nil {
				return err
			}
		}
		if err := json.MarshalEncode(enc, item); err != nil {
			return errors.Wrapf(err, "collections: encode entry %q", c.keys[i].String())
		}
	}
	return enc.WriteToken(end)
}

// MarshalJSON implements json.Marshaler. See [Collection.ToJSON].
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}

// MarshalYAML implements yaml.Marshaler: a sequence for collections keyed
// 0..n-1, otherwise a mapping that keeps entry order.
func (c *Collection[T]) MarshalYAML() (interface{}, error) {
	if c.isList() {
		return c.All(), nil
	}
	out := make(yaml.MapSlice, len(c.items))
	for i, item := range c.items {
		var k interface{} = c.keys[i].String()
		if n, ok := c.keys[i].Int(); ok {
			k = n
		}
		out[i] = yaml.MapItem{Key: k, Value: item}
	}
	return out, nil
}

// ToYAML encodes the collection as a YAML document.
func (c *Collection[T]) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// String returns the JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}
