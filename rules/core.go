package rules

import "github.com/dmitrymomot/refined"

// Numeric is the constraint shared by the numeric rule builders.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the constraint for rules that only make sense on whole numbers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Chain composes validator hooks left to right. Each hook receives the value
// accepted by the previous one, so normalizing hooks feed their output into
// later predicates. The first rejection stops the chain.
func Chain[T any](hooks ...refined.Validator[T]) refined.Validator[T] {
	return func(raw T, extra ...any) (T, error) {
		accepted := raw
		for _, hook := range hooks {
			var err error
			accepted, err = hook(accepted, extra...)
			if err != nil {
				return raw, err
			}
		}
		return accepted, nil
	}
}
