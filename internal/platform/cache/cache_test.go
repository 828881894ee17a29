package cache_test

import (
	"testing"
	"time"

	"github.com/SscSPs/shop_management_app/internal/platform/cache"
	"github.com/stretchr/testify/assert"
)

func TestInMemory_SetGetDelete(t *testing.T) {
	c := cache.New[int](time.Minute)
	defer c.Close()

	c.Set("ledger:1:0", 150)
	v, ok := c.Get("ledger:1:0")
	assert.True(t, ok)
	assert.Equal(t, 150, v)

	c.Delete("ledger:1:0")
	_, ok = c.Get("ledger:1:0")
	assert.False(t, ok)
}

func TestInMemory_Miss(t *testing.T) {
	c := cache.New[string](time.Minute)
	defer c.Close()

	v, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestInMemory_ExpiryAndSweep(t *testing.T) {
	c := cache.New[string](30 * time.Millisecond)
	defer c.Close()

	c.Set("k", "v")
	time.Sleep(50 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestInMemory_CloseTwice(t *testing.T) {
	c := cache.New[string](time.Minute)
	assert.NotPanics(t, func() {
		c.Close()
		c.Close()
	})
}
