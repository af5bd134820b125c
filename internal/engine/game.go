package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Config describes a game to boot.
type Config struct {
	Width, Height float64 // World size in world units
	TickRate      int     // Fixed updates per second; 0 means 60
	Seed          int64
	Scenes        []Scene // The first scene starts automatically
	Assets        AssetSource
	Storage       Storage     // nil means in-memory
	Logger        *log.Logger // nil discards logs
}

// Game runs scenes on a fixed timestep. It is not safe for concurrent use;
// the host drives Step and Render from one goroutine.
type Game struct {
	width, height float64
	tickRate      int
	dt            time.Duration

	rng      *rand.Rand
	assets   AssetSource
	storage  Storage
	textures *TextureCache
	anims    *AnimationManager
	events   *Emitter
	logger   *log.Logger
	scenes   *Manager
	viewport Viewport

	nextID    ObjectID
	tick      uint64
	destroyed bool
}

// New creates a game, registers its scenes and starts the first one.
func New(cfg Config) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("engine: invalid world size %gx%g", cfg.Width, cfg.Height)
	}
	if len(cfg.Scenes) == 0 {
		return nil, errors.New("engine: no scenes")
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	storage := cfg.Storage
	if storage == nil {
		storage = NewMemoryStorage()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		width:    cfg.Width,
		height:   cfg.Height,
		tickRate: tickRate,
		dt:       time.Second / time.Duration(tickRate),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		assets:   cfg.Assets,
		storage:  storage,
		textures: NewTextureCache(),
		events:   NewEmitter(),
		logger:   logger,
	}
	g.anims = newAnimationManager(g.textures)
	g.scenes = newManager(g)
	g.viewport = NewViewport(g.width, g.height, core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH)

	for _, s := range cfg.Scenes {
		if err := g.scenes.add(s); err != nil {
			return nil, err
		}
	}

	g.scenes.enqueue(opStart, cfg.Scenes[0].Key())
	if err := g.scenes.process(); err != nil {
		return nil, err
	}
	return g, nil
}

// Step advances the game by one tick: input events are delivered to running
// scenes top-down, then every running scene updates.
func (g *Game) Step(frame core.InputFrame) error {
	if g.destroyed {
		return nil
	}
	if err := g.scenes.process(); err != nil {
		return err
	}

	for _, ev := range frame.Events {
		g.dispatch(ev)
		if err := g.scenes.process(); err != nil {
			return err
		}
		if g.destroyed {
			return nil
		}
	}

	for _, sys := range g.scenes.order {
		if sys.status == StatusRunning {
			sys.step(g.dt)
		}
	}
	g.tick++
	return nil
}

func (g *Game) dispatch(ev core.InputEvent) {
	running := make([]*Systems, 0, len(g.scenes.order))
	for _, sys := range g.scenes.order {
		if sys.status == StatusRunning {
			running = append(running, sys)
		}
	}

	for i := len(running) - 1; i >= 0; i-- {
		sys := running[i]
		alive := func() bool { return sys.status == StatusRunning && !g.destroyed }
		if !alive() {
			continue
		}
		if sys.Input.dispatch(ev, g.viewport, alive) {
			return
		}
	}
}

// Render draws running and paused scenes into screen in scene order.
func (g *Game) Render(screen *core.Screen) {
	g.Resize(screen.Width(), screen.Height())
	screen.Clear()

	r := &renderer{screen: screen, vp: g.viewport}
	for _, sys := range g.scenes.order {
		if sys.status != StatusRunning && sys.status != StatusPaused {
			continue
		}
		for _, obj := range sys.display.All() {
			if obj.Visible() {
				obj.draw(r)
			}
		}
	}
}

// Resize updates the viewport used to map pointer cells into the world.
func (g *Game) Resize(screenW, screenH int) {
	g.viewport = NewViewport(g.width, g.height, screenW, screenH)
}

// Viewport returns the current world-to-screen mapping.
func (g *Game) Viewport() Viewport { return g.viewport }

// Destroy ends the game; the host should exit.
func (g *Game) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	g.logger.Debug("game destroyed", "tick", g.tick)
	g.events.Emit(EventDestroy, nil)
}

// Destroyed reports whether Destroy was called.
func (g *Game) Destroyed() bool { return g.destroyed }

// Events returns the game-wide event bus.
func (g *Game) Events() *Emitter { return g.events }

// Tick returns the number of completed steps.
func (g *Game) Tick() uint64 { return g.tick }

// TickDuration returns the fixed timestep.
func (g *Game) TickDuration() time.Duration { return g.dt }

// TickRate returns the number of steps per simulated second.
func (g *Game) TickRate() int { return g.tickRate }

func (g *Game) Width() float64  { return g.width }
func (g *Game) Height() float64 { return g.height }

// Storage returns the game's key-value store.
func (g *Game) Storage() Storage { return g.storage }

// Status returns the lifecycle state of the scene with key.
func (g *Game) Status(key string) (Status, bool) {
	sys, ok := g.scenes.byKey[key]
	if !ok {
		return StatusPending, false
	}
	return sys.status, true
}

// Systems returns the systems of the scene with key.
func (g *Game) Systems(key string) (*Systems, bool) {
	sys, ok := g.scenes.byKey[key]
	return sys, ok
}

// SceneKeys returns every scene key in registration order.
func (g *Game) SceneKeys() []string {
	keys := make([]string, len(g.scenes.order))
	for i, sys := range g.scenes.order {
		keys[i] = sys.Key
	}
	return keys
}

// ActiveScenes returns the keys of running scenes in registration order.
func (g *Game) ActiveScenes() []string {
	var keys []string
	for _, sys := range g.scenes.order {
		if sys.status == StatusRunning {
			keys = append(keys, sys.Key)
		}
	}
	return keys
}

// State summarizes the game for the host. Scenes implementing
// StateReporter contribute their run state.
func (g *Game) State() core.GameState {
	state := core.GameState{Quit: g.destroyed}
	for _, sys := range g.scenes.order {
		if sys.status != StatusRunning && sys.status != StatusPaused {
			continue
		}
		if sys.status == StatusRunning {
			state.Scene = sys.Key
		}
		if r, ok := sys.scene.(StateReporter); ok {
			r.ReportState(&state)
		}
	}
	return state
}

func (g *Game) nextObjectID() ObjectID {
	g.nextID++
	return g.nextID
}

// missingTexture is drawn for keys that were never loaded.
var missingTexture = &Texture{
	Key:    "__missing",
	Width:  32,
	Height: 32,
	Color:  core.ColorMagenta,
	Frames: [][][]rune{{[]rune("?")}},
}

func (g *Game) texture(key string) *Texture {
	if t, ok := g.textures.Get(key); ok {
		return t
	}
	g.logger.Warn("texture not loaded", "key", key)
	return missingTexture
}

// EventDestroy is emitted on the game bus when the game is destroyed.
const EventDestroy = "destroy"
