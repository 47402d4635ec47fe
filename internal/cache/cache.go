// Package cache holds query results keyed by resource-and-filter tuples.
// Callers own the invalidation policy; the cache only stores, expires and
// drops entries on request.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store defines the cache operations the query layer depends on.
type Store interface {
	// Get retrieves a value from the cache
	Get(key string) (any, bool)

	// Set stores a value in the cache
	Set(key string, data any)

	// Delete removes a key from the cache
	Delete(key string)

	// DeletePrefix removes every key starting with prefix and returns the count
	DeletePrefix(prefix string) int

	// Clear empties the cache
	Clear()

	// Size returns the current number of items in the cache
	Size() int
}

// Key renders a resource-and-params tuple as "resource:p1:p2".
func Key(resource string, params ...any) string {
	if len(params) == 0 {
		return resource
	}
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, resource)
	for _, p := range params {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ":")
}

type entry struct {
	data      any
	expiresAt time.Time
}

// Memory is an in-process Store. A zero ttl keeps entries until they are
// invalidated.
type Memory struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
	now   func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:   ttl,
		items: make(map[string]entry),
		now:   time.Now,
	}
}

// Get retrieves a value, dropping it if it has expired.
func (c *Memory) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return e.data, true
}

// Set stores a value. Entries that have expired are swept on every write,
// so keys that are never read again do not pile up.
func (c *Memory) Set(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanExpired()
	e := entry{data: data}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}
	c.items[key] = e
}

// Delete removes a key.
func (c *Memory) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeletePrefix removes every key starting with prefix.
func (c *Memory) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Clear empties the cache.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry)
}

// Size returns the number of stored entries, expired or not.
func (c *Memory) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// cleanExpired removes expired entries. The caller holds c.mu.
func (c *Memory) cleanExpired() {
	now := c.now()
	for key, e := range c.items {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.items, key)
		}
	}
}

// Fetch returns the cached value for key, or calls load and caches its
// result. Errors are never cached.
func Fetch[T any](s Store, key string, load func() (T, error)) (T, error) {
	if v, ok := s.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	s.Set(key, v)
	return v, nil
}
