package refined

import (
	"container/list"
	"sync"
)

type registryEntry[K comparable, V any] struct {
	key   K
	value V
}

// registry is a bounded, mutex-guarded LRU store backing the process-wide
// conduit, derived-type and family-member caches. It replaces the
// garbage-collection-driven lifetime a weak-reference cache would give:
// entries live until evicted by capacity pressure or an explicit Clear.
type registry[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	mu       sync.Mutex
}

func newRegistry[K comparable, V any](capacity int) *registry[K, V] {
	if capacity <= 0 {
		panic("refined: registry capacity must be positive")
	}
	return &registry[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// get retrieves a cached entry and marks it as recently used.
func (r *registry[K, V]) get(key K) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if elem, ok := r.items[key]; ok {
		r.order.MoveToFront(elem)
		return elem.Value.(*registryEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// put stores an entry, evicting the least recently used one at capacity.
// An existing key keeps its cached value untouched so callers observe a
// single synthesized object per key regardless of construction races.
func (r *registry[K, V]) put(key K, value V) V {
	r.mu.Lock()
	defer r.mu.Unlock()

	if elem, ok := r.items[key]; ok {
		r.order.MoveToFront(elem)
		return elem.Value.(*registryEntry[K, V]).value
	}

	elem := r.order.PushFront(&registryEntry[K, V]{key: key, value: value})
	r.items[key] = elem

	if r.order.Len() > r.capacity {
		oldest := r.order.Back()
		if oldest != nil {
			r.order.Remove(oldest)
			delete(r.items, oldest.Value.(*registryEntry[K, V]).key)
		}
	}

	return value
}

func (r *registry[K, V]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

func (r *registry[K, V]) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[K]*list.Element)
	r.order.Init()
}
