package collections

import (
	"reflect"
	"slices"

	"github.com/pkg/errors"
)

// MapSpread calls fn with the values of each item spread as positional
// arguments and collects the results, keys preserved.
//
// fn must be a function returning a single value assignable to U whose
// parameters accept E. A non-variadic fn must take exactly as many
// parameters as every item has values; a variadic fn needs at least its
// fixed parameters.
//
//	people, err := collections.MapSpread[string, Person](names,
//	    func(first, last string) Person { return Person{Name: first + " " + last} })
//
// Returns [ErrInvalidCallback] when fn does not fit and [ErrArityMismatch]
// when an item's length does not match fn. Nothing is returned on error.
// [MapSpread2] and [MapSpread3] are checked at compile time instead.
func MapSpread[E, U any](c *Collection[[]E], fn any) (*Collection[U], error) {
	fv := reflect.ValueOf(fn)
	if err := checkSpreadFunc[E, U](fn, fv); err != nil {
		return nil, err
	}
	ft := fv.Type()
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}

	out := make([]U, len(c.items))
	for i, args := range c.items {
		if len(args) < fixed || (!ft.IsVariadic() && len(args) != fixed) {
			return nil, errors.Wrapf(ErrArityMismatch,
				"item %s has %d values, callback takes %d", c.keys[i].String(), len(args), fixed)
		}
		in := make([]reflect.Value, len(args))
		for j, a := range args {
			in[j] = reflect.ValueOf(&a).Elem()
		}
		// a nil interface result fails the assertion and leaves the zero value
		if v, ok := fv.Call(in)[0].Interface().(U); ok {
			out[i] = v
		}
	}
	return build(slices.Clone(c.keys), out), nil
}

func checkSpreadFunc[E, U any](fn any, fv reflect.Value) error {
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return errors.Wrapf(ErrInvalidCallback, "mapSpread needs a func, got %T", fn)
	}
	ft := fv.Type()
	elem := reflect.TypeFor[E]()
	for j := 0; j < ft.NumIn(); j++ {
		param := ft.In(j)
		if ft.IsVariadic() && j == ft.NumIn()-1 {
			param = param.Elem()
		}
		if !elem.AssignableTo(param) {
			return errors.Wrapf(ErrInvalidCallback, "parameter %d is %s, items hold %s", j, param, elem)
		}
	}
	if ft.NumOut() != 1 || !ft.Out(0).AssignableTo(reflect.TypeFor[U]()) {
		return errors.Wrapf(ErrInvalidCallback, "callback must return a single %s", reflect.TypeFor[U]())
	}
	return nil
}

// MapSpread2 calls fn with the two values of each item, keys preserved.
// Returns [ErrArityMismatch] if an item does not hold exactly two values.
func MapSpread2[E, U any](c *Collection[[]E], fn func(E, E) U) (*Collection[U], error) {
	return spreadN(c, 2, func(args []E) U { return fn(args[0], args[1]) })
}

// MapSpread3 calls fn with the three values of each item, keys preserved.
// Returns [ErrArityMismatch] if an item does not hold exactly three values.
func MapSpread3[E, U any](c *Collection[[]E], fn func(E, E, E) U) (*Collection[U], error) {
	return spreadN(c, 3, func(args []E) U { return fn(args[0], args[1], args[2]) })
}

func spreadN[E, U any](c *Collection[[]E], arity int, call func([]E) U) (*Collection[U], error) {
	out := make([]U, len(c.items))
	for i, args := range c.items {
		if len(args) != arity {
			return nil, errors.Wrapf(ErrArityMismatch,
				"item %s has %d values, callback takes %d", c.keys[i].String(), len(args), arity)
		}
		out[i] = call(args)
	}
	return build(slices.Clone(c.keys), out), nil
}
