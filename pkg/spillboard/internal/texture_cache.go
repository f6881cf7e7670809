package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// CachedTexture is a texture with its natural size.
type CachedTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache holds rendered text and loaded images, evicting the least
// recently used entry once full.
type TextureCache struct {
	textures map[string]CachedTexture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]CachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) (CachedTexture, bool) {
	if entry, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return entry, true
	}
	return CachedTexture{}, false
}

func (c *TextureCache) Set(key string, texture *sdl.Texture, w, h int32) CachedTexture {
	entry := CachedTexture{Texture: texture, W: w, H: h}

	if old, exists := c.textures[key]; exists {
		if old.Texture != texture {
			destroyTexture(old.Texture)
		}
		c.textures[key] = entry
		c.moveToEnd(key)
		return entry
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = entry
	c.order = append(c.order, key)
	return entry
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, exists := c.textures[oldest]; exists {
		destroyTexture(entry.Texture)
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, entry := range c.textures {
		destroyTexture(entry.Texture)
	}
	c.textures = make(map[string]CachedTexture)
	c.order = c.order[:0]
}

func destroyTexture(t *sdl.Texture) {
	if t != nil {
		t.Destroy()
	}
}
