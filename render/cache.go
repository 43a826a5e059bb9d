package render

import (
	"image"

	"github.com/zhimiaox/msxfont"
)

// Cache keeps rendered glyph images until they are invalidated. The owner
// must call Invalidate for every glyph it changes; a session does this
// through its Watch hook.
type Cache struct {
	scale  int
	glyphs map[int]*image.Paletted
}

func NewCache(scale int) *Cache {
	return &Cache{
		scale:  scale,
		glyphs: make(map[int]*image.Paletted),
	}
}

// Get returns the cached image of glyph, rendering it from f on a miss.
func (c *Cache) Get(f *msxfont.Font, glyph int) (*image.Paletted, error) {
	if img, ok := c.glyphs[glyph]; ok {
		return img, nil
	}
	img, err := GlyphImage(f, glyph, c.scale)
	if err != nil {
		return nil, err
	}
	c.glyphs[glyph] = img
	return img, nil
}

// Invalidate drops glyph from the cache. A negative glyph drops everything.
func (c *Cache) Invalidate(glyph int) {
	if glyph < 0 {
		clear(c.glyphs)
		return
	}
	delete(c.glyphs, glyph)
}

// Len returns the number of cached glyphs.
func (c *Cache) Len() int {
	return len(c.glyphs)
}
