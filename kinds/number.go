package kinds

import (
	"github.com/dmitrymomot/refined"
	"github.com/dmitrymomot/refined/rules"
)

// Number is the operation surface for numeric refinements. Arithmetic comes
// back as validated Number instances of the same refinement; comparisons
// return plain values.
type Number[T rules.Numeric] struct {
	val *refined.Value[T]
}

// NewNumber constructs a validated Number from raw.
func NewNumber[T rules.Numeric](t *refined.Type[T], raw T, extra ...any) (Number[T], error) {
	v, err := t.New(raw, extra...)
	if err != nil {
		return Number[T]{}, err
	}
	return Number[T]{val: v}, nil
}

// NumberFrom wraps an already-constructed instance.
func NumberFrom[T rules.Numeric](v *refined.Value[T]) Number[T] {
	return Number[T]{val: v}
}

// Value returns the underlying instance.
func (n Number[T]) Value() *refined.Value[T] { return n.val }

// Raw returns the wrapped number.
func (n Number[T]) Raw() T { return n.val.Raw() }

func (n Number[T]) rewrap(op func(T) T) (Number[T], error) {
	v, err := n.val.Map(op)
	if err != nil {
		return Number[T]{}, err
	}
	return Number[T]{val: v}, nil
}

// Add re-wraps the sum.
func (n Number[T]) Add(delta T) (Number[T], error) {
	return n.rewrap(func(cur T) T { return cur + delta })
}

// Sub re-wraps the difference.
func (n Number[T]) Sub(delta T) (Number[T], error) {
	return n.rewrap(func(cur T) T { return cur - delta })
}

// Mul re-wraps the product.
func (n Number[T]) Mul(factor T) (Number[T], error) {
	return n.rewrap(func(cur T) T { return cur * factor })
}

// Div re-wraps the quotient. A zero divisor fails before the operation runs.
func (n Number[T]) Div(divisor T) (Number[T], error) {
	if divisor == 0 {
		return Number[T]{}, ErrDivisionByZero
	}
	return n.rewrap(func(cur T) T { return cur / divisor })
}

// Neg re-wraps the negation.
func (n Number[T]) Neg() (Number[T], error) {
	return n.rewrap(func(cur T) T { return -cur })
}

// Equal reports whether the value equals other.
func (n Number[T]) Equal(other T) bool { return n.val.Raw() == other }

// Less reports whether the value is below other.
func (n Number[T]) Less(other T) bool { return n.val.Raw() < other }

// Cmp returns -1, 0 or 1 comparing the value against other.
func (n Number[T]) Cmp(other T) int {
	switch cur := n.val.Raw(); {
	case cur < other:
		return -1
	case cur > other:
		return 1
	default:
		return 0
	}
}
