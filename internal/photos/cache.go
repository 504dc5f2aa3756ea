package photos

import (
	"strings"
	"sync"
	"time"
)

// candidateCache keeps merged candidate sets per city for a short while,
// mirroring the cache lifetime advertised to UI callers. Entries expire; the
// process keeps no durable state.
type candidateCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result  *Result
	expires time.Time
}

func newCandidateCache(ttl time.Duration) *candidateCache {
	return &candidateCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *candidateCache) get(city string) (*Result, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey(city)]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		delete(c.entries, cacheKey(city))
		return nil, false
	}
	return entry.result, true
}

func (c *candidateCache) set(city string, result *Result) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(city)] = cacheEntry{
		result:  result,
		expires: time.Now().Add(c.ttl),
	}
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
