package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultIconCacheSize = 16

// iconCache holds rasterized icon textures shared by all windows.
var iconCache = NewTextureCache(defaultIconCacheSize)

// TextureCache is a small LRU cache of textures. Evicted textures are
// destroyed, so cached textures must only be used within the frame they
// were fetched.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // insertion order, oldest first
	maxSize  int
}

// NewTextureCache creates a cache that holds at most maxSize textures.
func NewTextureCache(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the cached texture for a key, or nil. A hit marks the entry
// most recently used.
func (c *TextureCache) Get(key string) *sdl.Texture {
	texture, ok := c.textures[key]
	if !ok {
		return nil
	}
	c.touch(key)
	return texture
}

// Set stores a texture, evicting the least recently used entry at capacity.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if _, ok := c.textures[key]; ok {
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) touch(key string) {
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

	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
