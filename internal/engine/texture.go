package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Texture is a text image. Width and Height are its size in world units;
// each frame is a grid of runes sampled onto the cells it covers.
// A space is transparent.
type Texture struct {
	Key    string
	Width  float64 // Frame width in world units
	Height float64 // Frame height in world units
	Color  core.Color
	Frames [][][]rune // [frame][row][col]
}

// FrameCount returns the number of frames in the texture.
func (t *Texture) FrameCount() int {
	return len(t.Frames)
}

// Texel returns the rune at normalized coordinates u, v in [0, 1) of frame.
func (t *Texture) Texel(frame int, u, v float64) rune {
	if frame < 0 || frame >= len(t.Frames) {
		return ' '
	}
	rows := t.Frames[frame]
	if len(rows) == 0 {
		return ' '
	}
	r := int(v * float64(len(rows)))
	r = core.Clamp(r, 0, len(rows)-1)
	row := rows[r]
	if len(row) == 0 {
		return ' '
	}
	c := int(u * float64(len(row)))
	c = core.Clamp(c, 0, len(row)-1)
	return row[c]
}

// FrameSize is the size of one spritesheet frame in world units.
type FrameSize struct {
	Width  float64
	Height float64
}

// AssetSource resolves asset paths into textures.
type AssetSource interface {
	Image(key, path string) (*Texture, error)
	Spritesheet(key, path string, frame FrameSize) (*Texture, error)
}

// TextureCache holds loaded textures by key for the whole game.
type TextureCache struct {
	textures map[string]*Texture
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*Texture)}
}

// Add stores t under its key, replacing any existing texture.
func (c *TextureCache) Add(t *Texture) {
	c.textures[t.Key] = t
}

// Get returns the texture for key.
func (c *TextureCache) Get(key string) (*Texture, bool) {
	t, ok := c.textures[key]
	return t, ok
}

// Exists reports whether key has been loaded.
func (c *TextureCache) Exists(key string) bool {
	_, ok := c.textures[key]
	return ok
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}

// Loader queues asset loads for a scene's Preload hook.
// The queue is flushed before Create runs; the first failure aborts the scene start.
type Loader struct {
	source   AssetSource
	textures *TextureCache
	queue    []func() (*Texture, error)
}

// Image queues a single-frame texture.
func (l *Loader) Image(key, path string) {
	l.queue = append(l.queue, func() (*Texture, error) {
		return l.source.Image(key, path)
	})
}

// Spritesheet queues a texture split into frames of the given size.
func (l *Loader) Spritesheet(key, path string, frame FrameSize) {
	l.queue = append(l.queue, func() (*Texture, error) {
		return l.source.Spritesheet(key, path, frame)
	})
}

func (l *Loader) flush() error {
	queue := l.queue
	l.queue = nil
	for _, load := range queue {
		if l.source == nil {
			return fmt.Errorf("engine: no asset source configured")
		}
		t, err := load()
		if err != nil {
			return fmt.Errorf("engine: load asset: %w", err)
		}
		l.textures.Add(t)
	}
	return nil
}
