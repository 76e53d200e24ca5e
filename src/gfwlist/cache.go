// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import "sync"

// Cache defines an interface for memoizing host classifications.
// Implement this interface to share classifications between converters
// via the [WithCache] option.
type Cache interface {
	// Get retrieves a cached classification by key.
	// Returns the host and true if found, or a zero Host and false otherwise.
	Get(key string) (Host, bool)

	// Set stores a classification in the cache.
	Set(key string, val Host)

	// Flush removes all entries from the cache.
	Flush()
}

// memoryCache is the default in-memory cache implementation.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]Host
}

// newMemoryCache creates a new empty in-memory cache.
func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string]Host),
	}
}

// Get retrieves a cached classification by key.
func (c *memoryCache) Get(key string) (Host, bool) {
	c.mu.RLock()
	host, ok := c.entries[key]
	c.mu.RUnlock()
	return host, ok
}

// Set stores a classification in the cache.
func (c *memoryCache) Set(key string, val Host) {
	c.mu.Lock()
	c.entries[key] = val
	c.mu.Unlock()
}

// Flush removes all entries from the cache.
func (c *memoryCache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]Host)
	c.mu.Unlock()
}

// cachedClassifier consults a [Cache] before delegating to the wrapped
// [Classifier]. Failed classifications are not cached.
type cachedClassifier struct {
	next  Classifier
	cache Cache
}

// Classify implements [Classifier].
func (c *cachedClassifier) Classify(rawURL string) (Host, error) {
	if host, ok := c.cache.Get(rawURL); ok {
		return host, nil
	}

	host, err := c.next.Classify(rawURL)
	if err != nil {
		return Host{}, err
	}

	c.cache.Set(rawURL, host)
	return host, nil
}
