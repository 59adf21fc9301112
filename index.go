/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

// keyIndex maps keys to their recency list entries.
// mapIndex serves caches whose keys are hashed by the built-in map,
// hashIndex serves caches constructed with a custom hash or equality function.
type keyIndex[K comparable, V any] interface {
	// get returns the entry stored under the key or nil.
	get(key K) *cacheEntry[K, V]

	// add stores the entry under its key. The key must not be indexed yet.
	add(e *cacheEntry[K, V])

	// remove drops the entry from the index. The entry must be indexed.
	remove(e *cacheEntry[K, V])

	// len returns the number of indexed entries.
	len() int

	// clear drops all entries.
	clear()
}

// mapIndex indexes entries with an ordinary Go map.
type mapIndex[K comparable, V any] struct {
	entries map[K]*cacheEntry[K, V]
}

func newMapIndex[K comparable, V any](initialCapacity int) *mapIndex[K, V] {
	return &mapIndex[K, V]{entries: make(map[K]*cacheEntry[K, V], initialCapacity)}
}

func (idx *mapIndex[K, V]) get(key K) *cacheEntry[K, V] {
	return idx.entries[key]
}

func (idx *mapIndex[K, V]) add(e *cacheEntry[K, V]) {
	idx.entries[e.key] = e
}

func (idx *mapIndex[K, V]) remove(e *cacheEntry[K, V]) {
	delete(idx.entries, e.key)
}

func (idx *mapIndex[K, V]) len() int {
	return len(idx.entries)
}

func (idx *mapIndex[K, V]) clear() {
	idx.entries = make(map[K]*cacheEntry[K, V])
}

// hashIndex indexes entries by a user-provided hash function and resolves
// collisions with the equality function. Entries that hash to the same
// value share a bucket which is scanned linearly.
type hashIndex[K comparable, V any] struct {
	hash    HashFunc[K]
	equal   EqualFunc[K]
	buckets map[uint64][]*cacheEntry[K, V]
	size    int
}

func newHashIndex[K comparable, V any](hash HashFunc[K], equal EqualFunc[K], initialCapacity int) *hashIndex[K, V] {
	if equal == nil {
		equal = func(a, b K) bool { return a == b }
	}
	return &hashIndex[K, V]{
		hash:    hash,
		equal:   equal,
		buckets: make(map[uint64][]*cacheEntry[K, V], initialCapacity),
	}
}

func (idx *hashIndex[K, V]) get(key K) *cacheEntry[K, V] {
	for _, e := range idx.buckets[idx.hash(key)] {
		if idx.equal(e.key, key) {
			return e
		}
	}
	return nil
}

func (idx *hashIndex[K, V]) add(e *cacheEntry[K, V]) {
	h := idx.hash(e.key)
	idx.buckets[h] = append(idx.buckets[h], e)
	idx.size++
}

func (idx *hashIndex[K, V]) remove(e *cacheEntry[K, V]) {
	h := idx.hash(e.key)
	bucket := idx.buckets[h]
	for i, candidate := range bucket {
		if candidate != e {
			continue
		}
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket[last] = nil
		if last == 0 {
			delete(idx.buckets, h)
		} else {
			idx.buckets[h] = bucket[:last]
		}
		idx.size--
		return
	}
}

func (idx *hashIndex[K, V]) len() int {
	return idx.size
}

func (idx *hashIndex[K, V]) clear() {
	idx.buckets = make(map[uint64][]*cacheEntry[K, V])
	idx.size = 0
}
