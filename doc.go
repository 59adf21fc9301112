/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

// Package lrucache provides an in-memory cache with LRU eviction policy,
// pluggable key hashing, and Prometheus metrics.
// The cache is single-threaded: even lookups reorder entries,
// so concurrent callers must serialize access themselves.
package lrucache
