package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := NewCacheWithOptions(time.Minute, 0, 10)

	c.Set("key", "value")

	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := NewCacheWithOptions(time.Minute, 0, 10)

	c.SetWithExpiration("short", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("short")
	assert.False(t, found)
}

func TestDeleteAndFlush(t *testing.T) {
	c := NewCacheWithOptions(time.Minute, 0, 10)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")

	_, found := c.Get("a")
	assert.False(t, found)
	assert.Equal(t, 1, c.Count())

	c.Flush()
	assert.Equal(t, 0, c.Count())
}

func TestMaxItemsEviction(t *testing.T) {
	c := NewCacheWithOptions(time.Minute, 0, 2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	assert.Equal(t, 2, c.Count())
	_, found := c.Get("c")
	assert.True(t, found)
}
