package cache

import (
	"sync"
)

// Cache is a concurrency safe map. When maxEntries is positive the oldest
// inserted key is evicted to make room for a new one.
type Cache[K comparable, V any] struct {
	entries    map[K]V
	order      []K
	maxEntries int
	mu         sync.RWMutex
}

func New[K comparable, V any]() *Cache[K, V] {
	return NewBounded[K, V](0)
}

// NewBounded returns a cache holding at most maxEntries values, zero or less is unbounded
func NewBounded[K comparable, V any](maxEntries int) *Cache[K, V] {
	c := &Cache[K, V]{
		mu:         sync.RWMutex{},
		entries:    make(map[K]V),
		maxEntries: maxEntries,
	}
	return c
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// set must be called with the write lock held
func (c *Cache[K, V]) set(key K, value V) {
	if _, ok := c.entries[key]; !ok {
		if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = value
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// GetOrSet returns the cached value for key, computing and storing it with fn on a miss.
// fn runs under the write lock so concurrent misses for a key call it once.
func (c *Cache[K, V]) GetOrSet(key K, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v
	}

	v := fn()
	c.set(key, v)
	return v
}

func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns the keys in insertion order
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]K, len(c.order))
	copy(keys, c.order)
	return keys
}

// evictOldest must be called with the write lock held
func (c *Cache[K, V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}
