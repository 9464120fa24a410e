package rules

import "github.com/dmitrymomot/refined"

// Positive rejects values that are not strictly greater than zero.
func Positive[T Numeric]() refined.Validator[T] {
	return func(raw T, _ ...any) (T, error) {
		if raw <= 0 {
			return raw, fail("positive", "value must be positive, it is %v", raw)
		}
		return raw, nil
	}
}

// NonNegative rejects values below zero.
func NonNegative[T Numeric]() refined.Validator[T] {
	return func(raw T, _ ...any) (T, error) {
		if raw < 0 {
			return raw, fail("non_negative", "value must not be negative, it is %v", raw)
		}
		return raw, nil
	}
}

// Between rejects values outside the inclusive [min, max] range.
func Between[T Numeric](min, max T) refined.Validator[T] {
	return func(raw T, _ ...any) (T, error) {
		if raw < min || raw > max {
			return raw, fail("between", "value must be in [%v, %v], it is %v", min, max, raw)
		}
		return raw, nil
	}
}

// Max rejects values above max.
func Max[T Numeric](max T) refined.Validator[T] {
	return func(raw T, _ ...any) (T, error) {
		if raw > max {
			return raw, fail("max", "value must be at most %v, it is %v", max, raw)
		}
		return raw, nil
	}
}

// Min rejects values below min.
func Min[T Numeric](min T) refined.Validator[T] {
	return func(raw T, _ ...any) (T, error) {
		if raw < min {
			return raw, fail("min", "value must be at least %v, it is %v", min, raw)
		}
		return raw, nil
	}
}

// MultipleOf rejects values not evenly divisible by divisor. A zero divisor
// rejects everything.
func MultipleOf[T Integer](divisor T) refined.Validator[T] {
	return func(raw T, _ ...any) (T, error) {
		if divisor == 0 {
			return raw, fail("multiple_of", "divisor must not be zero")
		}
		if raw%divisor != 0 {
			return raw, fail("multiple_of", "value must be a multiple of %v, it is %v", divisor, raw)
		}
		return raw, nil
	}
}
