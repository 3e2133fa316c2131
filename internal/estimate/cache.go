package estimate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
)

// Cache memoizes estimates for the lifetime of the process. Logging the same
// meal twice in a session should not cost two API calls.
type Cache struct {
	mu      sync.RWMutex
	results map[string]Result
}

func NewCache() *Cache {
	return &Cache{results: make(map[string]Result)}
}

func (c *Cache) Get(key string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.results[key]
	return r, ok
}

func (c *Cache) Put(key string, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[key] = r
}

// cacheKey normalizes the request so trivially different phrasings of the
// same input ("Two Eggs " vs "two eggs") share an entry. Weight matters for
// exercise burn, so it is part of the key.
func cacheKey(text string, weightLbs float64) string {
	norm := strings.ToLower(strings.Join(strings.Fields(text), " "))
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%.1f", norm, weightLbs)))
	return hex.EncodeToString(sum[:])
}
