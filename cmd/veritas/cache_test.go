package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	cache.Set("k", "v")

	value, found := cache.Get("k")
	require.True(t, found)
	assert.Equal(t, "v", value)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheExpiration(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	cache.SetWithTTL("k", "v", -time.Second)

	_, found := cache.Get("k")
	assert.False(t, found)
}

func TestCacheSweepRemovesExpired(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	cache.SetWithTTL("stale", 1, -time.Second)
	cache.Set("fresh", 2)

	removed := cache.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, cache.Len())
	_, found := cache.Get("fresh")
	assert.True(t, found)
}

func TestCacheEvictsOldestAtCapacity(t *testing.T) {
	cache := NewCache(time.Minute, 3)

	for i := 0; i < 4; i++ {
		cache.SetWithTTL(fmt.Sprintf("k%d", i), i, time.Minute+time.Duration(i)*time.Millisecond)
		time.Sleep(2 * time.Millisecond)
	}

	assert.Equal(t, 3, cache.Len())
	_, found := cache.Get("k0")
	assert.False(t, found)
	_, found = cache.Get("k3")
	assert.True(t, found)
}

func TestCacheHitRate(t *testing.T) {
	cache := NewCache(time.Minute, 10)
	assert.Equal(t, 0.0, cache.HitRate())

	cache.Set("k", "v")
	cache.Get("k")
	cache.Get("missing")

	assert.Equal(t, 50.0, cache.HitRate())
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	cache.Set("k", "v")
	cache.Delete("k")

	_, found := cache.Get("k")
	assert.False(t, found)
}
