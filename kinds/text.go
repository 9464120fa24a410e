package kinds

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/refined"
)

// Text is the operation surface for string refinements. Value-producing
// string operations come back as validated Text instances of the same
// refinement; predicates return plain booleans.
type Text struct {
	val *refined.Value[string]
}

// NewText constructs a validated Text from raw.
func NewText(t *refined.Type[string], raw string, extra ...any) (Text, error) {
	v, err := t.New(raw, extra...)
	if err != nil {
		return Text{}, err
	}
	return Text{val: v}, nil
}

// TextFrom wraps an already-constructed instance.
func TextFrom(v *refined.Value[string]) Text {
	return Text{val: v}
}

// Value returns the underlying instance.
func (s Text) Value() *refined.Value[string] { return s.val }

// Raw returns the wrapped string.
func (s Text) Raw() string { return s.val.Raw() }

func (s Text) String() string { return s.val.Raw() }

func (s Text) rewrap(op func(string) string) (Text, error) {
	v, err := s.val.Map(op)
	if err != nil {
		return Text{}, err
	}
	return Text{val: v}, nil
}

// Replace substitutes the first n occurrences of old with new (all if n < 0)
// and re-wraps the result.
func (s Text) Replace(old, new string, n int) (Text, error) {
	return s.rewrap(func(cur string) string { return strings.Replace(cur, old, new, n) })
}

// Concat appends other and re-wraps the result.
func (s Text) Concat(other string) (Text, error) {
	return s.rewrap(func(cur string) string { return cur + other })
}

// Repeat repeats the value count times and re-wraps the result.
func (s Text) Repeat(count int) (Text, error) {
	return s.rewrap(func(cur string) string { return strings.Repeat(cur, count) })
}

// TrimSpace trims surrounding whitespace and re-wraps the result.
func (s Text) TrimSpace() (Text, error) {
	return s.rewrap(strings.TrimSpace)
}

// Upper uppercases the value and re-wraps the result.
func (s Text) Upper() (Text, error) {
	return s.rewrap(strings.ToUpper)
}

// Lower lowercases the value and re-wraps the result.
func (s Text) Lower() (Text, error) {
	return s.rewrap(strings.ToLower)
}

// Slice re-wraps the byte range [from, to).
func (s Text) Slice(from, to int) (Text, error) {
	cur := s.val.Raw()
	if from < 0 || to > len(cur) || from > to {
		return Text{}, fmt.Errorf("%w: [%d:%d] of length %d", ErrIndexOutOfRange, from, to, len(cur))
	}
	return s.rewrap(func(cur string) string { return cur[from:to] })
}

// Len returns the byte length.
func (s Text) Len() int { return len(s.val.Raw()) }

// Contains reports whether the value contains sub.
func (s Text) Contains(sub string) bool { return strings.Contains(s.val.Raw(), sub) }

// HasPrefix reports whether the value starts with prefix.
func (s Text) HasPrefix(prefix string) bool { return strings.HasPrefix(s.val.Raw(), prefix) }

// Equal reports whether the value equals other.
func (s Text) Equal(other string) bool { return s.val.Raw() == other }

// Less reports whether the value sorts before other.
func (s Text) Less(other string) bool { return s.val.Raw() < other }

// Split returns the raw substrings around sep. The result is not a supertype
// value, so it passes through unwrapped.
func (s Text) Split(sep string) []string { return strings.Split(s.val.Raw(), sep) }
