// Package rules provides composable validator-hook builders for refinement
// types: ready-made predicates and normalizers for strings, numbers,
// collections and identifiers.
//
// Every exported builder returns a refined.Validator closure; there is no
// hidden state, so builders are allocation-light and goroutine-safe. Hooks
// either reject a raw value with a descriptive *rules.Error or return the
// accepted (possibly normalized) value.
//
// # Architecture
//
// Each source file groups builders for one domain:
//
//   - string_rules.go:     length, word count, pattern, prefix, normalization
//   - numeric_rules.go:    sign, range and divisibility checks
//   - collection_rules.go: item counts, uniqueness, per-element hooks
//   - identifier_rules.go: UUID strings and NRIC identity codes
//
// Chain composes hooks left to right, threading each accepted value into the
// next hook so normalizations flow through.
//
// # Usage
//
//	ObjectID := refined.MustDefine("ObjectID", rules.Between(100000, 999999))
//
//	Code := refined.MustDefine("Code", rules.Chain(
//	    rules.Normalized(),
//	    rules.ExactLen(9),
//	    rules.NRIC(),
//	))
//
// # Error Handling
//
// Failures are *rules.Error values carrying the rule name and a message;
// they propagate unchanged through construction and mutation, so errors.As
// reaches them at the call site.
package rules
