/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

// cacheEntry is a node of the recency list and the unit of storage for a
// single key/value pair. A *cacheEntry stays valid for as long as the entry
// remains in the cache, promotions relink it but never copy it.
type cacheEntry[K comparable, V any] struct {
	prev, next *cacheEntry[K, V]
	key        K
	value      V
}

// lruList is an intrusive doubly-linked list of cache entries ordered from
// the most to the least recently used. It is implemented as a ring with a
// sentinel root: root.next is the front, root.prev is the back.
// The zero value must be initialized with init before use.
type lruList[K comparable, V any] struct {
	root cacheEntry[K, V]
	size int
}

// init makes the list empty.
func (l *lruList[K, V]) init() {
	l.root.prev = &l.root
	l.root.next = &l.root
	l.size = 0
}

// pushFront links a detached entry at the front of the list.
func (l *lruList[K, V]) pushFront(e *cacheEntry[K, V]) {
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
	l.size++
}

// moveToFront promotes an entry that is already on the list.
func (l *lruList[K, V]) moveToFront(e *cacheEntry[K, V]) {
	if l.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
}

// remove unlinks an entry from the list. The entry's links are cleared so
// that it does not keep its former neighbors reachable.
func (l *lruList[K, V]) remove(e *cacheEntry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	l.size--
}

// front returns the most recently used entry or nil if the list is empty.
func (l *lruList[K, V]) front() *cacheEntry[K, V] {
	if l.root.next == &l.root {
		return nil
	}
	return l.root.next
}

// back returns the least recently used entry or nil if the list is empty.
func (l *lruList[K, V]) back() *cacheEntry[K, V] {
	if l.root.prev == &l.root {
		return nil
	}
	return l.root.prev
}

// next returns the entry that follows e or nil if e is the last one.
func (l *lruList[K, V]) next(e *cacheEntry[K, V]) *cacheEntry[K, V] {
	if e.next == &l.root {
		return nil
	}
	return e.next
}

// len returns the number of entries on the list.
func (l *lruList[K, V]) len() int {
	return l.size
}
