package engine

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// mirrored maps glyphs to their horizontal mirror image for flipped textures.
var mirrored = map[rune]rune{
	'<': '>', '>': '<',
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'▌': '▐', '▐': '▌',
	'◀': '▶', '▶': '◀',
	'▘': '▝', '▝': '▘',
	'▖': '▗', '▗': '▖',
}

type renderer struct {
	screen *core.Screen
	vp     Viewport
}

// drawTexture samples a texture frame onto every cell whose center lies in rect.
func (r *renderer) drawTexture(tex *Texture, frame int, rect core.RectF, flipX bool, color core.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	vp := r.vp

	c0 := core.Max(int(math.Floor(rect.X/vp.UnitsPerCol)), 0)
	c1 := core.Min(int(math.Ceil(rect.Right()/vp.UnitsPerCol)), vp.Cols)
	r0 := core.Max(int(math.Floor(rect.Y/vp.UnitsPerRow)), 0)
	r1 := core.Min(int(math.Ceil(rect.Bottom()/vp.UnitsPerRow)), vp.Rows)

	for row := r0; row < r1; row++ {
		wy := (float64(row) + 0.5) * vp.UnitsPerRow
		if wy < rect.Y || wy >= rect.Bottom() {
			continue
		}
		v := (wy - rect.Y) / rect.H

		for col := c0; col < c1; col++ {
			wx := (float64(col) + 0.5) * vp.UnitsPerCol
			if wx < rect.X || wx >= rect.Right() {
				continue
			}
			u := (wx - rect.X) / rect.W
			if flipX {
				u = 1 - u
			}

			ch := tex.Texel(frame, u, v)
			if ch == ' ' {
				continue
			}
			if flipX {
				if m, ok := mirrored[ch]; ok {
					ch = m
				}
			}
			r.screen.SetColor(col+vp.OffsetX, row+vp.OffsetY, ch, color)
		}
	}
}

// drawText writes text whose top-left corner is at world (x, y), clipped to the playfield.
func (r *renderer) drawText(x, y float64, text string, color core.Color) {
	vp := r.vp
	col := int(math.Round(x / vp.UnitsPerCol))
	row := int(math.Round(y / vp.UnitsPerRow))
	if row < 0 || row >= vp.Rows {
		return
	}

	runes := []rune(text)
	lo := core.Clamp(-col, 0, len(runes))
	hi := core.Clamp(vp.Cols-col, lo, len(runes))
	r.screen.DrawTextColor(col+lo+vp.OffsetX, row+vp.OffsetY, string(runes[lo:hi]), color)
}
