package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Texture keys and their asset paths.
const (
	SkyTexture   = "sky"
	PipeTexture  = "pipe"
	PauseTexture = "pause"
	BackTexture  = "back"
	BirdTexture  = "bird"
)

const (
	menuColor  = core.ColorBrightWhite  // #fff
	hoverColor = core.ColorBrightYellow // #ff0
	hudColor   = core.ColorDefault      // #000
)

// baseScene holds what every scene shares: the config, the sky background,
// an optional back button and a centered text menu.
type baseScene struct {
	key       string
	cfg       config.FlappyConfig
	canGoBack bool
}

func (b *baseScene) Key() string { return b.key }

func (b *baseScene) Update(*engine.Systems, time.Duration) {}

// center returns the middle of the world.
func (b *baseScene) center(sys *engine.Systems) (x, y float64) {
	world := core.NewRectF(0, 0, sys.Width(), sys.Height())
	return world.CenterX(), world.CenterY()
}

// createBase draws the background and, for scenes that can go back, the back button.
func (b *baseScene) createBase(sys *engine.Systems) {
	sys.Add.Image(0, 0, SkyTexture).SetOrigin(0, 0)

	if !b.canGoBack {
		return
	}
	back := sys.Add.Image(sys.Width()-10, sys.Height()-10, BackTexture).
		SetInteractive().
		SetScale(2).
		SetOrigin(1, 1)
	goBack := func() { sys.Scenes.Start(MenuSceneKey) }
	back.On(engine.EventPointerUp, func(engine.Pointer) { goBack() })
	sys.Input.OnKey(core.KeyEsc, goBack)
	sys.Input.OnKey(core.KeyB, goBack)
}

// MenuItem is one entry of a text menu.
type MenuItem struct {
	Text  string
	Scene string // Scene to start, if any
}

// menu is a vertical list of interactive texts. The focused entry is
// highlighted; pointer hover and the arrow keys both move the focus.
type menu struct {
	items    []MenuItem
	texts    []*engine.Text
	focus    int
	activate func(MenuItem)
}

// createMenu lays items out below the world center, one line height apart,
// and wires pointer and keyboard navigation. activate runs on click or Enter.
func (b *baseScene) createMenu(sys *engine.Systems, items []MenuItem, activate func(MenuItem)) *menu {
	m := &menu{items: items, activate: activate}
	cx, cy := b.center(sys)

	offset := 0.0
	for i, item := range items {
		text := sys.Add.Text(cx, cy+offset, item.Text, menuColor).
			SetOrigin(0.5, 1).
			SetInteractive()
		offset += b.cfg.Menu.LineHeight

		text.On(engine.EventPointerOver, func(engine.Pointer) { m.setFocus(i) })
		text.On(engine.EventPointerOut, func(engine.Pointer) {
			if m.focus == i {
				m.setFocus(-1)
			}
		})
		text.On(engine.EventPointerUp, func(engine.Pointer) { m.activate(item) })

		m.texts = append(m.texts, text)
	}

	sys.Input.OnKey(core.KeyUp, func() { m.move(-1) })
	sys.Input.OnKey(core.KeyDown, func() { m.move(1) })
	sys.Input.OnKey(core.KeyEnter, m.activateFocused)

	m.setFocus(0)
	return m
}

// setFocus highlights entry i; -1 clears the highlight.
func (m *menu) setFocus(i int) {
	m.focus = i
	for j, t := range m.texts {
		if j == i {
			t.SetColor(hoverColor)
		} else {
			t.SetColor(menuColor)
		}
	}
}

func (m *menu) move(delta int) {
	n := len(m.texts)
	if n == 0 {
		return
	}
	if m.focus < 0 {
		m.setFocus(0)
		return
	}
	m.setFocus((m.focus + delta + n) % n)
}

func (m *menu) activateFocused() {
	if m.focus >= 0 && m.focus < len(m.items) {
		m.activate(m.items[m.focus])
	}
}
