/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

import "github.com/cespare/xxhash/v2"

// HashFunc computes a 64-bit hash of a key.
// Keys that are equal, either with == or with the paired EqualFunc,
// must produce the same hash.
type HashFunc[K any] func(key K) uint64

// EqualFunc reports whether two keys should be treated as the same key.
type EqualFunc[K any] func(a, b K) bool

// HashString hashes a string with xxHash.
// It is a convenient building block for custom HashFunc implementations.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes hashes a byte slice with xxHash.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
