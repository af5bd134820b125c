package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestNewValidates(t *testing.T) {
	_, err := New(Config{Width: 0, Height: 600, Scenes: []Scene{&testScene{key: "a"}}})
	assert.Error(t, err)

	_, err = New(Config{Width: 400, Height: 600})
	assert.Error(t, err)

	_, err = New(Config{Width: 400, Height: 600, Scenes: []Scene{&testScene{key: "a"}, &testScene{key: "a"}}})
	assert.ErrorContains(t, err, "duplicate scene")
}

func TestNewFailsOnMissingAsset(t *testing.T) {
	scene := &testScene{key: "boot", preload: func(sys *Systems) {
		sys.Load.Image("ghost", "ghost.txt")
	}}
	_, err := newTestGame(scene)
	assert.ErrorContains(t, err, "ghost.txt")
}

func TestFirstSceneStartsAndChainsToNext(t *testing.T) {
	created := map[string]int{}
	boot := &testScene{key: "boot",
		preload: func(sys *Systems) { sys.Load.Image("block", "block.txt") },
		create: func(sys *Systems) {
			created["boot"]++
			sys.Scenes.Start("menu")
		},
	}
	menu := &testScene{key: "menu", create: func(sys *Systems) {
		created["menu"]++
		assert.True(t, sys.Textures.Exists("block"), "textures are shared between scenes")
	}}

	g, err := newTestGame(boot, menu)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"boot": 1, "menu": 1}, created)
	assert.Equal(t, []string{"menu"}, g.ActiveScenes())
	status, _ := g.Status("boot")
	assert.Equal(t, StatusShutdown, status)

	require.NoError(t, g.Step(emptyFrame()))
	assert.Equal(t, 0, boot.updates)
	assert.Equal(t, 1, menu.updates)
}

func TestPausedSceneIsDrawnButNotUpdated(t *testing.T) {
	var playSys *Systems
	play := &testScene{key: "play",
		preload: func(sys *Systems) { sys.Load.Image("block", "block.txt") },
		create: func(sys *Systems) {
			playSys = sys
			sys.Add.Image(0, 0, "block").SetOrigin(0, 0)
		},
	}
	overlay := &testScene{key: "overlay"}

	g, err := newTestGame(play, overlay)
	require.NoError(t, err)

	resumed := 0
	playSys.Events.On(EventResume, func(any) { resumed++ })

	playSys.Scenes.Pause("")
	playSys.Scenes.Launch("overlay")
	require.NoError(t, g.Step(emptyFrame()))
	require.NoError(t, g.Step(emptyFrame()))

	assert.Equal(t, 0, play.updates)
	assert.Equal(t, 2, overlay.updates)
	assert.Equal(t, StatusPaused, playSys.Status())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Equal(t, '#', screen.Get(24, 0), "paused scenes stay visible")

	osys, _ := g.Systems("overlay")
	osys.Scenes.Stop("")
	osys.Scenes.Resume("play")
	require.NoError(t, g.Step(emptyFrame()))

	assert.Equal(t, 1, resumed)
	assert.Equal(t, 1, play.updates)
	assert.Equal(t, []string{"play"}, g.ActiveScenes())
}

func TestRestartKeepsSceneEvents(t *testing.T) {
	var sys0 *Systems
	creates := 0
	scene := &testScene{key: "play",
		preload: func(sys *Systems) { sys.Load.Image("block", "block.txt") },
		create: func(sys *Systems) {
			sys0 = sys
			creates++
			sys.Add.Image(0, 0, "block")
			sys.Time.DelayedCall(time.Hour, func() {})
			sys.Input.OnKey(core.KeySpace, func() {})
		},
	}
	g, err := newTestGame(scene)
	require.NoError(t, err)

	shutdowns := 0
	sys0.Events.On(EventShutdown, func(any) { shutdowns++ })
	sys0.Time.DelayedCall(time.Hour, func() {})

	sys0.Scenes.Restart()
	require.NoError(t, g.Step(emptyFrame()))

	assert.Equal(t, 2, creates)
	assert.Equal(t, 1, shutdowns)
	assert.Equal(t, 1, sys0.Events.ListenerCount(EventShutdown), "scene events survive restarts")
	assert.Equal(t, 1, sys0.Display().Len())
	assert.Equal(t, 1, sys0.Time.Len())
}

func TestPointerStopsAtTopSceneObject(t *testing.T) {
	var log []string
	lower := &testScene{key: "lower", create: func(sys *Systems) {
		sys.Input.On(EventPointerDown, func(Pointer) { log = append(log, "lower") })
		sys.Scenes.Launch("upper")
	}}
	upper := &testScene{key: "upper",
		preload: func(sys *Systems) { sys.Load.Image("block", "block.txt") },
		create: func(sys *Systems) {
			btn := sys.Add.Image(0, 0, "block").SetOrigin(0, 0).SetInteractive()
			btn.On(EventPointerDown, func(p Pointer) {
				log = append(log, "button")
				assert.InDelta(t, 6.25, p.X, 1e-9)
			})
			sys.Input.On(EventPointerDown, func(Pointer) { log = append(log, "upper") })
		},
	}
	g, err := newTestGame(lower, upper)
	require.NoError(t, err)

	frame := core.NewInputFrame()
	frame.Push(core.Pointer(core.EventPointerDown, 24, 0))
	require.NoError(t, g.Step(frame))
	assert.Equal(t, []string{"button", "upper"}, log)

	log = nil
	frame.Clear()
	frame.Push(core.Pointer(core.EventPointerDown, 40, 20))
	require.NoError(t, g.Step(frame))
	assert.Equal(t, []string{"upper", "lower"}, log, "misses fall through to lower scenes")
}

func TestHoverEvents(t *testing.T) {
	var btn *Image
	var seq []string
	scene := &testScene{key: "menu",
		preload: func(sys *Systems) { sys.Load.Image("block", "block.txt") },
		create: func(sys *Systems) {
			btn = sys.Add.Image(0, 0, "block").SetOrigin(0, 0).SetInteractive()
			btn.On(EventPointerOver, func(Pointer) { seq = append(seq, "over") })
			btn.On(EventPointerOut, func(Pointer) { seq = append(seq, "out") })
		},
	}
	g, err := newTestGame(scene)
	require.NoError(t, err)
	sys, _ := g.Systems("menu")

	frame := core.NewInputFrame()
	frame.Push(core.Pointer(core.EventPointerMove, 24, 0))
	frame.Push(core.Pointer(core.EventPointerMove, 25, 1))
	require.NoError(t, g.Step(frame))
	assert.True(t, sys.Input.IsHovered(btn.ID()))

	frame.Clear()
	frame.Push(core.Pointer(core.EventPointerMove, 40, 20))
	require.NoError(t, g.Step(frame))

	assert.Equal(t, []string{"over", "out"}, seq)
	assert.False(t, sys.Input.IsHovered(btn.ID()))
}

func TestKeysReachRunningScenesOnly(t *testing.T) {
	var got []string
	a := &testScene{key: "a", create: func(sys *Systems) {
		sys.Input.OnKey(core.KeySpace, func() { got = append(got, "a") })
		sys.Scenes.Launch("b")
	}}
	b := &testScene{key: "b", create: func(sys *Systems) {
		sys.Input.OnAnyKey(func(k core.Key) { got = append(got, "b:"+string(k)) })
	}}
	g, err := newTestGame(a, b)
	require.NoError(t, err)

	frame := core.NewInputFrame()
	frame.PressKey(core.KeySpace)
	require.NoError(t, g.Step(frame))
	assert.Equal(t, []string{"b:SPACE", "a"}, got)

	got = nil
	asys, _ := g.Systems("a")
	asys.Scenes.Pause("")
	require.NoError(t, g.Step(frame))
	assert.Equal(t, []string{"b:SPACE"}, got)
}

func TestDestroyStopsStepping(t *testing.T) {
	scene := &testScene{key: "menu", create: func(sys *Systems) {
		sys.Input.OnKey(core.KeyEnter, func() { sys.Game().Destroy() })
	}}
	g, err := newTestGame(scene)
	require.NoError(t, err)

	destroyed := 0
	g.Events().On(EventDestroy, func(any) { destroyed++ })

	frame := core.NewInputFrame()
	frame.PressKey(core.KeyEnter)
	require.NoError(t, g.Step(frame))

	assert.True(t, g.Destroyed())
	assert.True(t, g.State().Quit)
	assert.Equal(t, 1, destroyed)

	updates := scene.updates
	require.NoError(t, g.Step(emptyFrame()))
	assert.Equal(t, updates, scene.updates)
}

func TestClockStopsWhileScenePaused(t *testing.T) {
	fired := 0
	var sys0 *Systems
	scene := &testScene{key: "play", create: func(sys *Systems) {
		sys0 = sys
		sys.Time.DelayedCall(100*time.Millisecond, func() { fired++ })
	}}
	g, err := newTestGame(scene)
	require.NoError(t, err)

	sys0.Scenes.Pause("")
	for i := 0; i < 30; i++ {
		require.NoError(t, g.Step(emptyFrame()))
	}
	assert.Equal(t, 0, fired)

	sys0.Scenes.Resume("")
	for i := 0; i < 7; i++ {
		require.NoError(t, g.Step(emptyFrame()))
	}
	assert.Equal(t, 1, fired)
}

func TestBetweenInclusiveAndDeterministic(t *testing.T) {
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := Between(r1, 3, 5)
		assert.Equal(t, v, Between(r2, 3, 5))
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	assert.Equal(t, 7, Between(r1, 7, 7))
	v := Between(r1, 9, 2)
	assert.True(t, v >= 2 && v <= 9)
}

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage()
	_, ok, err := s.GetItem("bestScore")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem("bestScore", "7"))
	v, ok, err := s.GetItem("bestScore")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", v)
}
