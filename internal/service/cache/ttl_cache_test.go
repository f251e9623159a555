package cache

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(clock *fakeClock, evicted *[]string) *TTLCache {
	return NewTTLCache(
		WithClock(clock.Now),
		WithEvictFunc(func(key string, _ any) { *evicted = append(*evicted, key) }),
	)
}

func TestTTLCacheSlidingExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	var evicted []string
	c := newTestCache(clock, &evicted)

	c.Set("a", 1, time.Minute)
	clock.Advance(50 * time.Second)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	clock.Advance(50 * time.Second)
	_, ok = c.Get("a")
	assert.True(t, ok, "the previous Get extended the deadline")

	clock.Advance(61 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"a"}, evicted)
}

func TestTTLCacheSweep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	var evicted []string
	c := newTestCache(clock, &evicted)

	c.Set("short", 1, time.Second)
	c.Set("long", 2, time.Hour)
	c.Set("forever", 3, 0)

	clock.Advance(time.Minute)
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"short"}, evicted)
}

func TestTTLCacheDeleteAndClear(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	var evicted []string
	c := newTestCache(clock, &evicted)

	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	c.Set("c", 3, 0)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))

	c.Clear()
	assert.Zero(t, c.Len())
	sort.Strings(evicted)
	assert.Equal(t, []string{"a", "b", "c"}, evicted)
}
