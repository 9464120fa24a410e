package kinds

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/refined"
)

// List is the operation surface for slice refinements. Mutating operations
// validate before committing; value-producing operations re-wrap; lookups
// return plain values. Every committed candidate is a fresh slice, so a
// rejected operation never disturbs the wrapped value's backing array.
type List[E any] struct {
	val *refined.Value[[]E]
}

// NewList constructs a validated List from raw.
func NewList[E any](t *refined.Type[[]E], raw []E, extra ...any) (List[E], error) {
	v, err := t.New(raw, extra...)
	if err != nil {
		return List[E]{}, err
	}
	return List[E]{val: v}, nil
}

// ListFrom wraps an already-constructed instance.
func ListFrom[E any](v *refined.Value[[]E]) List[E] {
	return List[E]{val: v}
}

// Value returns the underlying instance.
func (l List[E]) Value() *refined.Value[[]E] { return l.val }

// Raw returns the wrapped slice. The caller shares backing storage.
func (l List[E]) Raw() []E { return l.val.Raw() }

// Append commits the slice extended by elems, if the validator accepts it.
func (l List[E]) Append(elems ...E) error {
	return l.val.Mutate(func(cur []E) []E {
		return append(slices.Clone(cur), elems...)
	})
}

// Extend commits the slice extended by every element of other, if the
// validator accepts it.
func (l List[E]) Extend(other []E) error {
	return l.Append(other...)
}

// Set commits an element assignment at index i, if the validator accepts the
// resulting slice.
func (l List[E]) Set(i int, e E) error {
	if i < 0 || i >= len(l.val.Raw()) {
		return fmt.Errorf("%w: %d of length %d", ErrIndexOutOfRange, i, len(l.val.Raw()))
	}
	return l.val.Mutate(func(cur []E) []E {
		next := slices.Clone(cur)
		next[i] = e
		return next
	})
}

// Insert commits the slice with e inserted at index i.
func (l List[E]) Insert(i int, e E) error {
	if i < 0 || i > len(l.val.Raw()) {
		return fmt.Errorf("%w: %d of length %d", ErrIndexOutOfRange, i, len(l.val.Raw()))
	}
	return l.val.Mutate(func(cur []E) []E {
		return slices.Insert(slices.Clone(cur), i, e)
	})
}

// RemoveAt commits the slice with the element at index i removed.
func (l List[E]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.val.Raw()) {
		return fmt.Errorf("%w: %d of length %d", ErrIndexOutOfRange, i, len(l.val.Raw()))
	}
	return l.val.Mutate(func(cur []E) []E {
		return slices.Delete(slices.Clone(cur), i, i+1)
	})
}

// Concat re-wraps the concatenation with other as a new instance.
func (l List[E]) Concat(other []E) (List[E], error) {
	v, err := l.val.Map(func(cur []E) []E {
		return append(slices.Clone(cur), other...)
	})
	if err != nil {
		return List[E]{}, err
	}
	return List[E]{val: v}, nil
}

// SliceRange re-wraps the element range [from, to) as a new instance.
func (l List[E]) SliceRange(from, to int) (List[E], error) {
	cur := l.val.Raw()
	if from < 0 || to > len(cur) || from > to {
		return List[E]{}, fmt.Errorf("%w: [%d:%d] of length %d", ErrIndexOutOfRange, from, to, len(cur))
	}
	v, err := l.val.Map(func(cur []E) []E {
		return slices.Clone(cur[from:to])
	})
	if err != nil {
		return List[E]{}, err
	}
	return List[E]{val: v}, nil
}

// At returns the element at index i.
func (l List[E]) At(i int) (E, error) {
	cur := l.val.Raw()
	if i < 0 || i >= len(cur) {
		var zero E
		return zero, fmt.Errorf("%w: %d of length %d", ErrIndexOutOfRange, i, len(cur))
	}
	return cur[i], nil
}

// Len returns the element count.
func (l List[E]) Len() int { return len(l.val.Raw()) }

// ListContains reports whether l contains e. Comparisons return plain
// booleans.
func ListContains[E comparable](l List[E], e E) bool {
	return slices.Contains(l.val.Raw(), e)
}
