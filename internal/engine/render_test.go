package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderImageAndText(t *testing.T) {
	scene := &testScene{
		key: "draw",
		preload: func(sys *Systems) {
			sys.Load.Image("block", "block.txt")
		},
		create: func(sys *Systems) {
			sys.Add.Image(0, 0, "block").SetOrigin(0, 0)
			sys.Add.Text(200, 300, "Hi", core.ColorYellow).SetOrigin(0.5, 0.5)
		},
	}
	g, err := newTestGame(scene)
	require.NoError(t, err)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for col := 24; col <= 26; col++ {
		for row := 0; row <= 1; row++ {
			cell := screen.GetCell(col, row)
			assert.Equal(t, '#', cell.Rune, "cell %d,%d", col, row)
			assert.Equal(t, core.ColorGreen, cell.Color)
		}
	}
	assert.Equal(t, ' ', screen.Get(27, 0))
	assert.Equal(t, ' ', screen.Get(23, 0), "outside the playfield")

	assert.Equal(t, 'H', screen.Get(39, 12))
	assert.Equal(t, 'i', screen.Get(40, 12))
	assert.Equal(t, core.ColorYellow, screen.GetCell(39, 12).Color)
}

func TestRenderTextClippedToPlayfield(t *testing.T) {
	scene := &testScene{
		key: "clip",
		create: func(sys *Systems) {
			sys.Add.Text(375, 0, "Hello", core.ColorCyan).SetOrigin(0, 0)
			sys.Add.Text(-25, 25, "Hello", core.ColorCyan).SetOrigin(0, 0)
		},
	}
	g, err := newTestGame(scene)
	require.NoError(t, err)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The playfield spans screen columns 24..55.
	assert.Equal(t, "He", string([]rune(screen.Row(0))[54:56]))
	assert.Equal(t, ' ', screen.Get(56, 0), "right of the playfield")
	assert.Equal(t, core.ColorCyan, screen.GetCell(55, 0).Color)

	assert.Equal(t, "llo", string([]rune(screen.Row(1))[24:27]))
	assert.Equal(t, ' ', screen.Get(23, 1), "left of the playfield")
}

func TestRenderFlipAndTint(t *testing.T) {
	assets := defaultAssets()
	assets["arrow.txt"] = &Texture{Width: 40, Height: 25, Color: core.ColorWhite, Frames: [][][]rune{{[]rune("<a")}}}

	var img *Image
	scene := &testScene{
		key: "flip",
		preload: func(sys *Systems) {
			sys.Load.Image("arrow", "arrow.txt")
		},
		create: func(sys *Systems) {
			img = sys.Add.Image(0, 0, "arrow").SetOrigin(0, 0).SetFlipX(true).SetTint(core.ColorRed)
		},
	}
	g, err := New(Config{Width: 400, Height: 600, Scenes: []Scene{scene}, Assets: assets})
	require.NoError(t, err)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Equal(t, 'a', screen.Get(24, 0))
	assert.Equal(t, '>', screen.Get(26, 0), "flipped glyphs are mirrored")
	assert.Equal(t, core.ColorRed, screen.GetCell(24, 0).Color)

	img.ClearTint().SetVisible(false)
	g.Render(screen)
	assert.Equal(t, ' ', screen.Get(24, 0))
}

func TestRenderMissingTexturePlaceholder(t *testing.T) {
	scene := &testScene{
		key: "missing",
		create: func(sys *Systems) {
			sys.Add.Image(0, 0, "nothing").SetOrigin(0, 0)
		},
	}
	g, err := newTestGame(scene)
	require.NoError(t, err)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Equal(t, '?', screen.Get(24, 0))
}
