package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCacheWithSize(2)

	c.Set("a", nil, 1, 1)
	c.Set("b", nil, 2, 2)

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", nil, 3, 3)

	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")

	a, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(1), a.W)
	assert.Equal(t, 2, c.Len())
}

func TestTextureCacheUpdateKeepsSize(t *testing.T) {
	c := NewTextureCacheWithSize(2)

	c.Set("a", nil, 1, 1)
	c.Set("a", nil, 5, 6)

	assert.Equal(t, 1, c.Len())
	a, _ := c.Get("a")
	assert.Equal(t, int32(6), a.H)

	c.Destroy()
	assert.Equal(t, 0, c.Len())
}
