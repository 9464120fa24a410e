package rules

import "github.com/dmitrymomot/refined"

// MaxItems rejects slices with more than max elements.
func MaxItems[E any](max int) refined.Validator[[]E] {
	return func(raw []E, _ ...any) ([]E, error) {
		if len(raw) > max {
			return raw, fail("max_items", "must have at most %d items, it has %d", max, len(raw))
		}
		return raw, nil
	}
}

// MinItems rejects slices with fewer than min elements.
func MinItems[E any](min int) refined.Validator[[]E] {
	return func(raw []E, _ ...any) ([]E, error) {
		if len(raw) < min {
			return raw, fail("min_items", "must have at least %d items, it has %d", min, len(raw))
		}
		return raw, nil
	}
}

// ExactItems rejects slices whose length differs from exact.
func ExactItems[E any](exact int) refined.Validator[[]E] {
	return func(raw []E, _ ...any) ([]E, error) {
		if len(raw) != exact {
			return raw, fail("exact_items", "must have exactly %d items, it has %d", exact, len(raw))
		}
		return raw, nil
	}
}

// Unique rejects slices containing duplicate elements.
func Unique[E comparable]() refined.Validator[[]E] {
	return func(raw []E, _ ...any) ([]E, error) {
		seen := make(map[E]struct{}, len(raw))
		for _, e := range raw {
			if _, dup := seen[e]; dup {
				return raw, fail("unique", "duplicate item %v", e)
			}
			seen[e] = struct{}{}
		}
		return raw, nil
	}
}

// Each applies an element hook to every item, rebuilding the slice from the
// accepted elements so per-element normalization flows through.
func Each[E any](hook refined.Validator[E]) refined.Validator[[]E] {
	return func(raw []E, extra ...any) ([]E, error) {
		accepted := make([]E, len(raw))
		for i, e := range raw {
			ok, err := hook(e, extra...)
			if err != nil {
				return raw, err
			}
			accepted[i] = ok
		}
		return accepted, nil
	}
}
