// Package kinds provides ready-made operation surfaces for refinement types
// over the common supertype kinds: Text (string), Number (numeric), List
// (slice) and Dict (map).
//
// Each surface mirrors the operations its supertype supports, with the
// wrapping protocol applied per operation:
//
//   - Value-producing operations (Replace, Concat, Add, SliceRange, ...)
//     re-wrap their raw result through full construction, so success yields
//     another validated instance of the same refinement.
//   - Mutating operations (Append, Set, Delete, ...) validate the candidate
//     before committing; a rejection leaves the instance at its prior value.
//   - Boolean-returning operations (Equal, Less, Contains, ...) return plain
//     booleans, never wrapped instances.
//
// # Usage
//
//	BoundedInts := refined.NewFamily("BoundedInts", func(cap int) refined.Validator[[]int] {
//	    return rules.MaxItems[int](cap)
//	})
//
//	l, err := kinds.NewList(BoundedInts.Index(3), []int{1, 2, 3})
//	err = l.Append(4) // rejected: cap is 3, instance still holds [1 2 3]
//
// Surfaces are thin: each wraps a *refined.Value and funnels everything
// through Map, Mutate and New. Operations the surfaces do not cover remain
// available through those funnels directly.
package kinds
