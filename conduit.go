package refined

import (
	"log/slog"
	"reflect"
	"sync"
)

// conduit is the per-supertype scaffold minted on first use of a supertype.
// It carries the supertype identity and the safety verdict every derived
// type over that supertype shares. Conduits are never user-facing.
type conduit struct {
	super reflect.Type
	safe  bool
}

// safeKinds is the recognized set of built-in-like supertype kinds. Anything
// outside it still works but draws a one-time configuration warning, since
// arbitrary method sets make wrapped behavior hard to reason about.
var safeKinds = map[reflect.Kind]struct{}{
	reflect.Bool:    {},
	reflect.Int:     {},
	reflect.Int8:    {},
	reflect.Int16:   {},
	reflect.Int32:   {},
	reflect.Int64:   {},
	reflect.Uint:    {},
	reflect.Uint8:   {},
	reflect.Uint16:  {},
	reflect.Uint32:  {},
	reflect.Uint64:  {},
	reflect.Float32: {},
	reflect.Float64: {},
	reflect.String:  {},
	reflect.Slice:   {},
	reflect.Array:   {},
	reflect.Map:     {},
}

var (
	conduitsOnce sync.Once
	conduits     *registry[reflect.Type, *conduit]
)

func conduitRegistry() *registry[reflect.Type, *conduit] {
	conduitsOnce.Do(func() {
		conduits = newRegistry[reflect.Type, *conduit](loadSettings().ConduitCacheSize)
	})
	return conduits
}

// conduitFor returns the cached conduit for T's supertype identity,
// synthesizing it on first request. Idempotent: repeated calls for the same
// supertype return the identical conduit.
func conduitFor[T any]() *conduit {
	super := reflect.TypeOf((*T)(nil)).Elem()

	reg := conduitRegistry()
	if c, ok := reg.get(super); ok {
		return c
	}

	_, safe := safeKinds[super.Kind()]
	c := &conduit{super: super, safe: safe}
	if !safe && loadSettings().WarnUnsafe {
		logger().Warn("refined: supertype is outside the recognized built-in set",
			slog.String("supertype", super.String()),
			slog.String("kind", super.Kind().String()),
		)
	}

	// put resolves construction races in favor of the first cached conduit.
	return reg.put(super, c)
}
