package engine

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// CellAspect is the height-to-width ratio of a terminal cell.
const CellAspect = 2.0

// Viewport maps world units onto terminal cells. The playfield keeps the
// world's proportions and is centered on the screen.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int // Playfield size in cells
	OffsetX        int // Column of the playfield's left edge
	OffsetY        int // Row of the playfield's top edge
	UnitsPerCol    float64
	UnitsPerRow    float64
}

// NewViewport fits a worldW x worldH world into a screenW x screenH terminal.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	screenW = core.Max(screenW, 1)
	screenH = core.Max(screenH, 1)

	upc := math.Max(worldW/float64(screenW), worldH/(CellAspect*float64(screenH)))
	upr := upc * CellAspect

	cols := core.Clamp(int(math.Round(worldW/upc)), 1, screenW)
	rows := core.Clamp(int(math.Round(worldH/upr)), 1, screenH)

	return Viewport{
		WorldW:      worldW,
		WorldH:      worldH,
		Cols:        cols,
		Rows:        rows,
		OffsetX:     (screenW - cols) / 2,
		OffsetY:     (screenH - rows) / 2,
		UnitsPerCol: upc,
		UnitsPerRow: upr,
	}
}

// ToCell returns the screen cell containing world point (x, y).
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x/v.UnitsPerCol)) + v.OffsetX
	row = int(math.Floor(y/v.UnitsPerRow)) + v.OffsetY
	return col, row
}

// ToWorld returns the world coordinates of the center of a screen cell.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	x = (float64(col-v.OffsetX) + 0.5) * v.UnitsPerCol
	y = (float64(row-v.OffsetY) + 0.5) * v.UnitsPerRow
	return x, y
}

// Playfield returns the screen rectangle the world is drawn into.
func (v Viewport) Playfield() core.Rect {
	return core.NewRect(v.OffsetX, v.OffsetY, v.Cols, v.Rows)
}

// InPlayfield reports whether a screen cell shows part of the world.
func (v Viewport) InPlayfield(col, row int) bool {
	return v.Playfield().Contains(col, row)
}
