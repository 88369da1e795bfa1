package icons

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

// TextureCache is an LRU cache for tinted icon textures. The same glyph is
// typically requested with a handful of (size, tint) combinations per
// theme; caching avoids re-rasterizing the SVG every frame.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks use order for LRU eviction
	maxSize  int
}

// NewTextureCache creates a cache with the default capacity.
func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

// NewTextureCacheWithSize creates a cache holding at most maxSize textures.
func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// CacheKey builds the cache key for a named glyph at a size and tint.
func CacheKey(name string, w, h int, tint sdl.Color) string {
	return fmt.Sprintf("%s|%dx%d|%02x%02x%02x%02x", name, w, h, tint.R, tint.G, tint.B, tint.A)
}

// Get returns the cached texture for key, or nil.
func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

// Set stores a texture, evicting (and destroying) the least recently used
// entry if the cache is full.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// GetOrRender returns the texture for a named glyph, rasterizing and
// uploading it on a cache miss.
func (c *TextureCache) GetOrRender(r *sdl.Renderer, name string, svg []byte, w, h int, tint sdl.Color) (*sdl.Texture, error) {
	key := CacheKey(name, w, h, tint)
	if tex := c.Get(key); tex != nil {
		return tex, nil
	}

	surface, err := Rasterize(svg, w, h, tint)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	tex, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icons: upload %s: %w", name, err)
	}
	c.Set(key, tex)
	return tex, nil
}

// Purge destroys every cached texture. Call when the renderer is about to
// be destroyed.
func (c *TextureCache) Purge() {
	for key, tex := range c.textures {
		tex.Destroy()
		delete(c.textures, key)
	}
	c.order = c.order[:0]
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
	if tex, ok := c.textures[oldest]; ok {
		tex.Destroy()
		delete(c.textures, oldest)
	}
}
