package kinds

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/refined"
)

// Dict is the operation surface for map refinements. Mutating operations
// validate a fresh copy before committing; lookups return plain values.
type Dict[K comparable, V any] struct {
	val *refined.Value[map[K]V]
}

// NewDict constructs a validated Dict from raw.
func NewDict[K comparable, V any](t *refined.Type[map[K]V], raw map[K]V, extra ...any) (Dict[K, V], error) {
	v, err := t.New(raw, extra...)
	if err != nil {
		return Dict[K, V]{}, err
	}
	return Dict[K, V]{val: v}, nil
}

// DictFrom wraps an already-constructed instance.
func DictFrom[K comparable, V any](v *refined.Value[map[K]V]) Dict[K, V] {
	return Dict[K, V]{val: v}
}

// Value returns the underlying instance.
func (d Dict[K, V]) Value() *refined.Value[map[K]V] { return d.val }

// Raw returns the wrapped map. The caller shares backing storage.
func (d Dict[K, V]) Raw() map[K]V { return d.val.Raw() }

// Set commits the map with key assigned to value, if the validator accepts it.
func (d Dict[K, V]) Set(key K, value V) error {
	return d.val.Mutate(func(cur map[K]V) map[K]V {
		next := maps.Clone(cur)
		if next == nil {
			next = make(map[K]V, 1)
		}
		next[key] = value
		return next
	})
}

// Delete commits the map with key removed. Deleting an absent key fails
// without touching the instance.
func (d Dict[K, V]) Delete(key K) error {
	if _, ok := d.val.Raw()[key]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return d.val.Mutate(func(cur map[K]V) map[K]V {
		next := maps.Clone(cur)
		delete(next, key)
		return next
	})
}

// Get returns the value stored under key.
func (d Dict[K, V]) Get(key K) (V, bool) {
	v, ok := d.val.Raw()[key]
	return v, ok
}

// Has reports whether key is present.
func (d Dict[K, V]) Has(key K) bool {
	_, ok := d.val.Raw()[key]
	return ok
}

// Len returns the entry count.
func (d Dict[K, V]) Len() int { return len(d.val.Raw()) }

// Keys returns the keys in unspecified order.
func (d Dict[K, V]) Keys() []K {
	return slices.Collect(maps.Keys(d.val.Raw()))
}
