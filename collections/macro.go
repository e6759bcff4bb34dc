package collections

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

// MacroFunc is the function signature for a registered macro.
//
// The receiver is passed as an any so that one macro can serve every
// Collection[T] and LazyCollection[T] instantiation. Type-assert inside the
// macro to the concrete receiver type.
type MacroFunc func(receiver any, args ...any) any

var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro of the same name. Safe to call from multiple goroutines.
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
//	})
//
//	res, _ := collections.New(1, 2, 3, 4, 5).Macro("evens") // *Collection[int]{2, 4}
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// Macros returns the registered macro names in sorted order.
func Macros() []string {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	names := make([]string, 0, len(macroRegistry.macros))
	for name := range macroRegistry.macros {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with receiver and args.
// Returns [ErrMacroNotFound] if no macro is registered under name.
func CallMacro(name string, receiver any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrMacroNotFound, "%q", name)
	}
	l := Logger()
	l.Debug().Str("macro", name).Int("args", len(args)).Msg("calling macro")
	return fn(receiver, args...), nil
}

// Macro calls the named registered macro on c, forwarding args.
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}

// Macro calls the named registered macro on l, forwarding args.
func (l *LazyCollection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}
