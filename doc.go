// Package refined provides runtime-validated refinement types: wrapper values
// that behave like an underlying supertype while guaranteeing that every live
// instance satisfies a user-supplied validation hook.
//
// A refinement is declared by pairing a supertype (any Go type, typically a
// built-in-like kind such as string, int, slice or map) with a Validator hook.
// Construction funnels every raw value through the hook before a usable
// instance exists, and every operation derived from an instance funnels back
// through the same hook: value-producing operations re-wrap their result via
// construction, in-place mutations re-validate before committing, and
// boolean-returning comparisons pass through untouched.
//
// Key Features:
//
//   - Type-safe refinement declaration using generics
//   - Validator hooks that reject or normalize raw values
//   - Derived-type caching so repeated declaration of the same logical type
//     returns the identical *Type
//   - Parametrized families (Family.Index) for runtime-indexed refinements
//     such as length-capped lists or fixed word counts
//   - JSON/YAML decoding that funnels through validation
//
// Basic Usage:
//
//	// A six-digit object identifier.
//	ObjectID := refined.MustDefine("ObjectID", rules.Between(100000, 999999))
//
//	id, err := ObjectID.New(123456)
//	if err != nil {
//	    // raw value rejected by the hook
//	}
//
//	next, err := id.Map(func(v int) int { return v + 1 })
//	// next is again a validated ObjectID instance
//
// Parametrized Families:
//
//	Mnemonics := refined.NewFamily("Mnemonics", func(words int) refined.Validator[string] {
//	    return rules.WordCount(words)
//	})
//
//	phrase, err := Mnemonics.Index(2).New("hello bye")
//
// Subpackages:
//
//   - rules:  composable validator-hook builders (strings, numbers,
//     collections, identifiers)
//   - kinds:  ready-made operation surfaces (Text, Number, List, Dict) that
//     mirror the supertype's operations with validation applied
//   - config: environment-driven runtime settings for the registries and the
//     warning channel
//
// The process-wide registries (conduits, derived types, family members) are
// bounded LRU structures with an explicit ResetRegistries escape hatch; entry
// lifetime is tied to cache pressure or an explicit reset, never to garbage
// collection.
package refined
