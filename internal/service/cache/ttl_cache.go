package cache

import (
	"sync"
	"time"
)

type entry struct {
	v   any
	ttl time.Duration
	exp time.Time
}

// EvictFunc is called with every entry that leaves the cache through expiry,
// Delete or Clear. It runs without the cache lock held.
type EvictFunc func(key string, v any)

// TTLCache is an in-memory map with sliding expiry: a successful Get pushes
// the deadline of an entry forward by its ttl.
type TTLCache struct {
	mu      sync.RWMutex
	m       map[string]entry
	onEvict EvictFunc
	now     func() time.Time
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithEvictFunc sets the eviction hook.
func WithEvictFunc(fn EvictFunc) Option {
	return func(c *TTLCache) { c.onEvict = fn }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) { c.now = now }
}

func NewTTLCache(opts ...Option) *TTLCache {
	c := &TTLCache{m: make(map[string]entry), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TTLCache) Get(key string) (any, bool) {
	now := c.now()
	c.mu.Lock()
	e, ok := c.m[key]
	if !ok {
		c.mu.Unlock()
		return nil, false
	}
	if !e.exp.IsZero() && now.After(e.exp) {
		delete(c.m, key)
		c.mu.Unlock()
		c.evict(key, e.v)
		return nil, false
	}
	if e.ttl > 0 {
		e.exp = now.Add(e.ttl)
		c.m[key] = e
	}
	c.mu.Unlock()
	return e.v, true
}

// Set stores v under key. A non-positive ttl never expires.
func (c *TTLCache) Set(key string, v any, ttl time.Duration) {
	var exp time.Time
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.m[key] = entry{v: v, ttl: ttl, exp: exp}
	c.mu.Unlock()
}

// Delete removes key and reports whether it was present.
func (c *TTLCache) Delete(key string) bool {
	c.mu.Lock()
	e, ok := c.m[key]
	delete(c.m, key)
	c.mu.Unlock()
	if ok {
		c.evict(key, e.v)
	}
	return ok
}

// Sweep removes every expired entry and returns how many were removed.
func (c *TTLCache) Sweep() int {
	now := c.now()
	expired := make(map[string]any)
	c.mu.Lock()
	for k, e := range c.m {
		if !e.exp.IsZero() && now.After(e.exp) {
			expired[k] = e.v
			delete(c.m, k)
		}
	}
	c.mu.Unlock()
	for k, v := range expired {
		c.evict(k, v)
	}
	return len(expired)
}

// Clear removes every entry.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	old := c.m
	c.m = make(map[string]entry)
	c.mu.Unlock()
	for k, e := range old {
		c.evict(k, e.v)
	}
}

func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

func (c *TTLCache) evict(key string, v any) {
	if c.onEvict != nil {
		c.onEvict(key, v)
	}
}
