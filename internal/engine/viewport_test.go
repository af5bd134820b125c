package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportFitsTallWorld(t *testing.T) {
	vp := NewViewport(400, 600, 80, 24)

	assert.Equal(t, 32, vp.Cols)
	assert.Equal(t, 24, vp.Rows)
	assert.Equal(t, 24, vp.OffsetX)
	assert.Equal(t, 0, vp.OffsetY)
	assert.InDelta(t, 12.5, vp.UnitsPerCol, 1e-9)
	assert.InDelta(t, 25, vp.UnitsPerRow, 1e-9)
}

func TestViewportFitsWideScreen(t *testing.T) {
	vp := NewViewport(400, 600, 200, 50)

	assert.InDelta(t, 6, vp.UnitsPerCol, 1e-9)
	assert.Equal(t, 67, vp.Cols)
	assert.Equal(t, 50, vp.Rows)
	assert.Equal(t, 66, vp.OffsetX)
}

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(400, 600, 80, 24)

	col, row := vp.ToCell(0, 0)
	assert.Equal(t, 24, col)
	assert.Equal(t, 0, row)

	col, row = vp.ToCell(399.9, 599.9)
	assert.Equal(t, 55, col)
	assert.Equal(t, 23, row)

	x, y := vp.ToWorld(24, 0)
	assert.InDelta(t, 6.25, x, 1e-9)
	assert.InDelta(t, 12.5, y, 1e-9)

	assert.True(t, vp.InPlayfield(24, 0))
	assert.False(t, vp.InPlayfield(23, 0))
	assert.False(t, vp.InPlayfield(56, 0))
}

func TestViewportTinyScreen(t *testing.T) {
	vp := NewViewport(400, 600, 0, 0)
	assert.Equal(t, 1, vp.Cols)
	assert.Equal(t, 1, vp.Rows)
}
