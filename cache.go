/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

import (
	"fmt"
)

// LRUCache represents an in-memory cache with LRU eviction policy and Prometheus metrics.
//
// The cache is not safe for concurrent use.
// Every successful lookup, including Get and Contains, promotes the found entry
// to the most recently used position, so even read-only access from multiple
// goroutines is a data race. Callers that share a cache between goroutines
// must serialize all calls themselves, for example with a mutex.
type LRUCache[K comparable, V any] struct {
	maxEntries int

	lruList lruList[K, V] // most recently used first
	index   keyIndex[K, V]

	metricsCollector MetricsCollector
}

// Options represents options for the cache.
type Options[K comparable] struct {
	// Hash replaces the built-in map hashing of keys.
	// Keys that are equal must produce the same hash.
	Hash HashFunc[K]

	// Equal replaces the == comparison of keys.
	// It requires Hash to be set since the built-in map
	// cannot look keys up with a custom equality.
	Equal EqualFunc[K]

	// InitialCapacity preallocates internal storage for the given number of entries.
	// Zero or negative values mean no preallocation.
	InitialCapacity int
}

// New creates a new LRUCache with the provided maximum number of entries and metrics collector.
func New[K comparable, V any](maxEntries int, metricsCollector MetricsCollector) (*LRUCache[K, V], error) {
	return NewWithOpts[K, V](maxEntries, metricsCollector, Options[K]{})
}

// NewWithOpts creates a new LRUCache with the provided maximum number of entries, metrics collector, and options.
// Metrics collector is used to collect statistics about cache usage.
// It can be nil, in this case, metrics will be disabled.
//
// maxEntries may be zero. Such a cache stores nothing: every insertion is
// immediately evicted (and counted as an eviction), every lookup misses.
func NewWithOpts[K comparable, V any](maxEntries int, metricsCollector MetricsCollector, opts Options[K]) (*LRUCache[K, V], error) {
	if maxEntries < 0 {
		return nil, fmt.Errorf("maxEntries must not be negative")
	}
	if opts.Equal != nil && opts.Hash == nil {
		return nil, fmt.Errorf("equal function requires a hash function")
	}
	if metricsCollector == nil {
		metricsCollector = disabledMetrics{}
	}

	initialCapacity := opts.InitialCapacity
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	var index keyIndex[K, V]
	if opts.Hash != nil {
		index = newHashIndex[K, V](opts.Hash, opts.Equal, initialCapacity)
	} else {
		index = newMapIndex[K, V](initialCapacity)
	}

	c := &LRUCache[K, V]{
		maxEntries:       maxEntries,
		index:            index,
		metricsCollector: metricsCollector,
	}
	c.lruList.init()
	c.metricsCollector.SetMaxEntries(maxEntries)
	c.metricsCollector.SetAmount(0)
	return c, nil
}

// Get returns a value from the cache by the provided key
// and marks the entry as most recently used.
func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	entry := c.get(key)
	if entry == nil {
		return value, false
	}
	return entry.value, true
}

// GetRef returns a pointer to the value stored under the provided key
// and marks the entry as most recently used.
// The pointer stays valid until the entry is removed or evicted,
// promotions of the entry do not invalidate it.
// Writes through the pointer are visible to subsequent reads.
func (c *LRUCache[K, V]) GetRef(key K) (value *V, ok bool) {
	entry := c.get(key)
	if entry == nil {
		return nil, false
	}
	return &entry.value, true
}

// Peek returns a value from the cache by the provided key without changing
// the recency order and without counting a hit or a miss.
func (c *LRUCache[K, V]) Peek(key K) (value V, ok bool) {
	entry := c.index.get(key)
	if entry == nil {
		return value, false
	}
	return entry.value, true
}

// Contains reports whether the provided key is present in the cache.
// A successful check marks the entry as most recently used, exactly like Get.
// Use Peek to check for presence without disturbing the recency order.
func (c *LRUCache[K, V]) Contains(key K) bool {
	return c.get(key) != nil
}

// Insert adds a value to the cache only if the key is not present yet
// and reports whether the new entry was created.
// If the key is already present, both the cached value and its position
// in the recency order are left untouched.
// If the cache is full, the oldest entry will be removed.
func (c *LRUCache[K, V]) Insert(key K, value V) bool {
	if c.index.get(key) != nil {
		return false
	}
	c.addNew(key, value)
	return true
}

// Set adds a value to the cache or overwrites the existing one
// and reports whether the new entry was created.
// Unlike Insert, overwriting marks the entry as most recently used.
// If the cache is full, the oldest entry will be removed.
func (c *LRUCache[K, V]) Set(key K, value V) bool {
	if entry := c.index.get(key); entry != nil {
		entry.value = value
		c.lruList.moveToFront(entry)
		return false
	}
	c.addNew(key, value)
	return true
}

// Update applies fn to the value stored under the provided key
// and reports whether the key was found.
// A found entry is marked as most recently used before fn runs.
func (c *LRUCache[K, V]) Update(key K, fn func(value *V)) bool {
	entry := c.get(key)
	if entry == nil {
		return false
	}
	fn(&entry.value)
	return true
}

// GetOrAdd returns a value from the cache by the provided key.
// If the key does not exist, it adds a new value to the cache.
func (c *LRUCache[K, V]) GetOrAdd(key K, valueProvider func() V) (value V, exists bool) {
	if entry := c.get(key); entry != nil {
		return entry.value, true
	}
	value = valueProvider()
	c.addNew(key, value)
	return value, false
}

// Remove removes a value from the cache by the provided key.
func (c *LRUCache[K, V]) Remove(key K) bool {
	entry := c.index.get(key)
	if entry == nil {
		return false
	}
	c.lruList.remove(entry)
	c.index.remove(entry)
	c.metricsCollector.SetAmount(c.index.len())
	return true
}

// ForEach calls fn for each cache entry, going from the most to the least
// recently used one. The value may be modified through the pointer.
// fn must not add, remove, or look up entries, since even lookups reorder
// the list being iterated.
func (c *LRUCache[K, V]) ForEach(fn func(key K, value *V)) {
	for e := c.lruList.front(); e != nil; e = c.lruList.next(e) {
		fn(e.key, &e.value)
	}
}

// Keys returns all cached keys, the most recently used first.
func (c *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, c.index.len())
	for e := c.lruList.front(); e != nil; e = c.lruList.next(e) {
		keys = append(keys, e.key)
	}
	return keys
}

// Purge clears the cache.
// Keep in mind that this method does not reset the cache size
// and does not reset Prometheus metrics except for the total number of entries.
// All removed entries will not be counted as evictions.
func (c *LRUCache[K, V]) Purge() {
	c.metricsCollector.SetAmount(0)
	c.index.clear()
	c.lruList.init()
}

// Resize changes the cache size and returns the number of evicted entries.
// When the new size is smaller than the current number of entries, the least
// recently used entries are evicted. Negative sizes are treated as zero.
func (c *LRUCache[K, V]) Resize(size int) (evicted int) {
	if size < 0 {
		size = 0
	}
	c.maxEntries = size
	c.metricsCollector.SetMaxEntries(size)

	evicted = c.index.len() - size
	if evicted <= 0 {
		return 0
	}
	for i := 0; i < evicted; i++ {
		_ = c.removeOldest()
	}
	c.metricsCollector.SetAmount(c.index.len())
	c.metricsCollector.AddEvictions(evicted)
	return evicted
}

// Len returns the number of items in the cache.
func (c *LRUCache[K, V]) Len() int {
	return c.index.len()
}

// Cap returns the maximum number of entries the cache may hold.
func (c *LRUCache[K, V]) Cap() int {
	return c.maxEntries
}

func (c *LRUCache[K, V]) get(key K) *cacheEntry[K, V] {
	entry := c.index.get(key)
	if entry == nil {
		c.metricsCollector.IncMisses()
		return nil
	}
	c.lruList.moveToFront(entry)
	c.metricsCollector.IncHits()
	return entry
}

func (c *LRUCache[K, V]) addNew(key K, value V) {
	entry := &cacheEntry[K, V]{key: key, value: value}
	c.lruList.pushFront(entry)
	c.index.add(entry)
	if c.index.len() <= c.maxEntries {
		c.metricsCollector.SetAmount(c.index.len())
		return
	}
	if evictedEntry := c.removeOldest(); evictedEntry != nil {
		c.metricsCollector.AddEvictions(1)
	}
}

func (c *LRUCache[K, V]) removeOldest() *cacheEntry[K, V] {
	entry := c.lruList.back()
	if entry == nil {
		return nil
	}
	c.lruList.remove(entry)
	c.index.remove(entry)
	return entry
}
