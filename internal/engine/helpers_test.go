package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// testScene wires hooks from closures.
type testScene struct {
	key     string
	preload func(sys *Systems)
	create  func(sys *Systems)
	update  func(sys *Systems, dt time.Duration)
	updates int
}

func (s *testScene) Key() string { return s.key }

func (s *testScene) Preload(sys *Systems) {
	if s.preload != nil {
		s.preload(sys)
	}
}

func (s *testScene) Create(sys *Systems) {
	if s.create != nil {
		s.create(sys)
	}
}

func (s *testScene) Update(sys *Systems, dt time.Duration) {
	s.updates++
	if s.update != nil {
		s.update(sys, dt)
	}
}

// testAssets serves textures by path.
type testAssets map[string]*Texture

func (a testAssets) Image(key, path string) (*Texture, error) {
	t, ok := a[path]
	if !ok {
		return nil, fmt.Errorf("missing %s", path)
	}
	c := *t
	c.Key = key
	return &c, nil
}

func (a testAssets) Spritesheet(key, path string, _ FrameSize) (*Texture, error) {
	return a.Image(key, path)
}

// solid builds a texture of frames filled with ch.
func solid(w, h float64, frames int, ch rune) *Texture {
	t := &Texture{Width: w, Height: h, Color: core.ColorGreen}
	for i := 0; i < frames; i++ {
		t.Frames = append(t.Frames, [][]rune{{ch, ch}, {ch, ch}})
	}
	return t
}

func defaultAssets() testAssets {
	return testAssets{
		"block.txt": solid(40, 40, 1, '#'),
		"sheet.txt": solid(16, 16, 16, '@'),
	}
}

func newTestGame(scenes ...Scene) (*Game, error) {
	return New(Config{
		Width:    400,
		Height:   600,
		TickRate: 60,
		Seed:     1,
		Scenes:   scenes,
		Assets:   defaultAssets(),
	})
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}
