package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterBurstAndRefill(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := New(2, 0.5)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("v1"))
	assert.True(t, l.Allow("v1"))
	assert.False(t, l.Allow("v1"))
	assert.True(t, l.Allow("v2"), "keys have independent buckets")

	now = now.Add(2 * time.Second)
	assert.True(t, l.Allow("v1"))
	assert.False(t, l.Allow("v1"))
}

func TestLimiterForget(t *testing.T) {
	l := New(1, 0)
	assert.True(t, l.Allow("v1"))
	assert.False(t, l.Allow("v1"))

	l.Forget("v1")
	assert.True(t, l.Allow("v1"))
}
