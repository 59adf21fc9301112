/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package lrucache

import (
	"fmt"
	"log"
	"strings"
)

func Example() {
	type User struct {
		ID   int
		Name string
	}

	// Make and register Prometheus metrics collector.
	metricsCollector := NewPrometheusMetrics()
	metricsCollector.MustRegister()
	defer metricsCollector.Unregister()

	// Make LRU cache for storing maximum 1000 entries.
	cache, err := New[string, User](1000, metricsCollector)
	if err != nil {
		log.Fatal(err)
	}

	// Add entries to the cache.
	cache.Set("user:1", User{1, "John"})
	cache.Set("user:2", User{2, "Bob"})

	// Get entries from the cache.
	if user, found := cache.Get("user:1"); found {
		fmt.Printf("%d, %s\n", user.ID, user.Name)
	}
	if _, found := cache.Get("user:3"); !found {
		fmt.Println("user:3 is not found")
	}

	// Output:
	// 1, John
	// user:3 is not found
}

func Example_customHash() {
	// Keys are compared case-insensitively,
	// so the hash must not depend on the case either.
	cache, err := NewWithOpts[string, int](100, nil, Options[string]{
		Hash:  func(s string) uint64 { return HashString(strings.ToLower(s)) },
		Equal: strings.EqualFold,
	})
	if err != nil {
		log.Fatal(err)
	}

	cache.Set("Alpha", 1)
	if v, found := cache.Get("ALPHA"); found {
		fmt.Println(v)
	}

	// Output:
	// 1
}

func ExampleLRUCache_ForEach() {
	cache, err := New[string, int](100, nil)
	if err != nil {
		log.Fatal(err)
	}

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	// Entries are visited from the most to the least recently used one.
	cache.ForEach(func(key string, value *int) {
		fmt.Printf("%s=%d\n", key, *value)
	})

	// Output:
	// c=3
	// b=2
	// a=1
}
