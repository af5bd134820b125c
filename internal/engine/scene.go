package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Scene is one screen of a game. Scenes keep their own fields; everything
// they create through Systems is discarded when they shut down.
type Scene interface {
	Key() string
	Create(sys *Systems)
	Update(sys *Systems, dt time.Duration)
}

// Preloader is implemented by scenes that load assets before Create.
type Preloader interface {
	Preload(sys *Systems)
}

// StateReporter is implemented by scenes that expose run state to the host.
type StateReporter interface {
	ReportState(state *core.GameState)
}

// Status is the lifecycle state of a scene.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusPaused
	StatusShutdown
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Scene lifecycle events emitted on Systems.Events.
const (
	EventCreate   = "create"
	EventPause    = "pause"
	EventResume   = "resume"
	EventShutdown = "shutdown"
)

// Systems is the per-scene view of the game handed to scene hooks.
type Systems struct {
	Key      string
	Add      *Factory
	Physics  *World
	Time     *Clock
	Input    *InputPlugin
	Events   *Emitter // Survives restarts
	Scenes   *ScenePlugin
	Load     *Loader
	Anims    *AnimationManager
	Textures *TextureCache
	Storage  Storage
	Rand     *rand.Rand
	Log      *log.Logger

	game    *Game
	scene   Scene
	display *DisplayList
	status  Status
}

func newSystems(g *Game, scene Scene) *Systems {
	display := &DisplayList{}
	add := &Factory{game: g, display: display}
	sys := &Systems{
		Key:      scene.Key(),
		Add:      add,
		Physics:  newWorld(add, g.width, g.height),
		Time:     NewClock(),
		Input:    newInputPlugin(display),
		Events:   NewEmitter(),
		Load:     &Loader{source: g.assets, textures: g.textures},
		Anims:    g.anims,
		Textures: g.textures,
		Storage:  g.storage,
		Rand:     g.rng,
		Log:      g.logger.WithPrefix(scene.Key()),
		game:     g,
		scene:    scene,
		display:  display,
	}
	sys.Scenes = &ScenePlugin{sys: sys, manager: g.scenes}
	return sys
}

// Game returns the game the scene belongs to.
func (s *Systems) Game() *Game { return s.game }

// Status returns the scene's lifecycle state.
func (s *Systems) Status() Status { return s.status }

// Scene returns the scene these systems drive.
func (s *Systems) Scene() Scene { return s.scene }

// Display returns the scene's display list.
func (s *Systems) Display() *DisplayList { return s.display }

// Width returns the world width.
func (s *Systems) Width() float64 { return s.game.width }

// Height returns the world height.
func (s *Systems) Height() float64 { return s.game.height }

func (s *Systems) reset() {
	s.display.clear()
	s.Physics.reset()
	s.Time.RemoveAll()
	s.Input.reset()
	s.Load.queue = nil
}

func (s *Systems) step(dt time.Duration) {
	s.Time.Update(dt)
	s.Physics.Step(dt.Seconds())
	for _, obj := range s.display.All() {
		obj.preUpdate(dt)
	}
	s.scene.Update(s, dt)
}

// Factory creates display objects in a scene.
type Factory struct {
	game    *Game
	display *DisplayList
}

// Image adds a static image. Unknown keys draw a placeholder texture.
func (f *Factory) Image(x, y float64, key string) *Image {
	img := newImage(f.game.nextObjectID(), x, y, f.game.texture(key))
	f.display.Add(img)
	return img
}

// Sprite adds a sprite without physics.
func (f *Factory) Sprite(x, y float64, key string) *Sprite {
	s := newSprite(f.game.nextObjectID(), x, y, f.game.texture(key), f.game.anims)
	f.display.Add(s)
	return s
}

// Text adds a single line of text with its origin at the top-left.
func (f *Factory) Text(x, y float64, text string, color core.Color) *Text {
	t := newText(f.game.nextObjectID(), x, y, text, color)
	f.display.Add(t)
	return t
}

type opKind int

const (
	opStart opKind = iota
	opStop
	opPause
	opResume
)

func (k opKind) String() string {
	switch k {
	case opStart:
		return "start"
	case opStop:
		return "stop"
	case opPause:
		return "pause"
	case opResume:
		return "resume"
	default:
		return "unknown"
	}
}

type sceneOp struct {
	kind opKind
	key  string
}

// maxQueuePasses bounds scene operations triggered by other operations in one flush.
const maxQueuePasses = 64

// Manager owns the scenes in their registration order. Later scenes are
// drawn on top and receive input first. Operations are queued and applied
// between input events and before updates.
type Manager struct {
	game  *Game
	order []*Systems
	byKey map[string]*Systems
	queue []sceneOp
}

func newManager(g *Game) *Manager {
	return &Manager{game: g, byKey: make(map[string]*Systems)}
}

func (m *Manager) add(scene Scene) error {
	key := scene.Key()
	if key == "" {
		return fmt.Errorf("engine: scene with empty key")
	}
	if _, dup := m.byKey[key]; dup {
		return fmt.Errorf("engine: duplicate scene %q", key)
	}
	sys := newSystems(m.game, scene)
	m.order = append(m.order, sys)
	m.byKey[key] = sys
	return nil
}

func (m *Manager) enqueue(kind opKind, key string) {
	m.queue = append(m.queue, sceneOp{kind: kind, key: key})
}

// process applies queued operations, including ones queued by Create hooks.
func (m *Manager) process() error {
	for pass := 0; len(m.queue) > 0; pass++ {
		if pass >= maxQueuePasses {
			m.queue = nil
			return fmt.Errorf("engine: scene operations did not settle after %d passes", maxQueuePasses)
		}
		ops := m.queue
		m.queue = nil
		for _, op := range ops {
			if err := m.apply(op); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Manager) apply(op sceneOp) error {
	sys, ok := m.byKey[op.key]
	if !ok {
		m.game.logger.Warn("unknown scene", "op", op.kind, "scene", op.key)
		return nil
	}
	m.game.logger.Debug("scene op", "op", op.kind, "scene", op.key, "from", sys.status)

	switch op.kind {
	case opStart:
		return m.start(sys)
	case opStop:
		m.shutdown(sys)
	case opPause:
		if sys.status == StatusRunning {
			sys.status = StatusPaused
			sys.Events.Emit(EventPause, nil)
		}
	case opResume:
		if sys.status == StatusPaused {
			sys.status = StatusRunning
			sys.Events.Emit(EventResume, nil)
		}
	}
	return nil
}

func (m *Manager) start(sys *Systems) error {
	m.shutdown(sys)
	sys.status = StatusRunning

	if p, ok := sys.scene.(Preloader); ok {
		p.Preload(sys)
	}
	if err := sys.Load.flush(); err != nil {
		sys.status = StatusShutdown
		return fmt.Errorf("engine: start scene %q: %w", sys.Key, err)
	}

	sys.scene.Create(sys)
	sys.Events.Emit(EventCreate, nil)
	return nil
}

func (m *Manager) shutdown(sys *Systems) {
	if sys.status != StatusRunning && sys.status != StatusPaused {
		return
	}
	sys.status = StatusShutdown
	sys.Events.Emit(EventShutdown, nil)
	sys.reset()
}

// ScenePlugin lets a scene control itself and other scenes.
// An empty key refers to the calling scene.
type ScenePlugin struct {
	sys     *Systems
	manager *Manager
}

func (p *ScenePlugin) resolve(key string) string {
	if key == "" {
		return p.sys.Key
	}
	return key
}

// Start shuts the calling scene down and starts key. Starting the calling
// scene restarts it.
func (p *ScenePlugin) Start(key string) {
	key = p.resolve(key)
	if key != p.sys.Key {
		p.manager.enqueue(opStop, p.sys.Key)
	}
	p.manager.enqueue(opStart, key)
}

// Launch starts key alongside the calling scene.
func (p *ScenePlugin) Launch(key string) {
	p.manager.enqueue(opStart, p.resolve(key))
}

func (p *ScenePlugin) Pause(key string) {
	p.manager.enqueue(opPause, p.resolve(key))
}

// Resume restarts updates of a paused scene and emits "resume" on its events.
func (p *ScenePlugin) Resume(key string) {
	p.manager.enqueue(opResume, p.resolve(key))
}

func (p *ScenePlugin) Stop(key string) {
	p.manager.enqueue(opStop, p.resolve(key))
}

// Restart shuts the calling scene down and creates it again.
func (p *ScenePlugin) Restart() {
	p.manager.enqueue(opStart, p.sys.Key)
}

// Status returns the state of key.
func (p *ScenePlugin) Status(key string) Status {
	if sys, ok := p.manager.byKey[p.resolve(key)]; ok {
		return sys.status
	}
	return StatusPending
}
