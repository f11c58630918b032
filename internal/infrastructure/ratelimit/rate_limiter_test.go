package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterStoreBurstPerKey(t *testing.T) {
	store := NewLimiterStore(1, 2, time.Hour)
	defer store.Stop()

	assert.True(t, store.Allow("10.0.0.1"))
	assert.True(t, store.Allow("10.0.0.1"))
	assert.False(t, store.Allow("10.0.0.1"))

	assert.True(t, store.Allow("10.0.0.2"))
	assert.Equal(t, 2, store.Len())
}

func TestLimiterStoreSweepsIdleKeys(t *testing.T) {
	store := NewLimiterStore(60, 1, time.Hour)
	defer store.Stop()

	store.Allow("10.0.0.1")
	store.sweep(time.Now())
	assert.Equal(t, 1, store.Len())

	store.sweep(time.Now().Add(11 * time.Minute))
	assert.Equal(t, 0, store.Len())

	store.Stop()
}
