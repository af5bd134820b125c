package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// PauseScene is drawn over the paused PlayScene with Continue and Exit.
type PauseScene struct {
	baseScene
	menu *menu
}

func NewPauseScene(cfg config.FlappyConfig) *PauseScene {
	return &PauseScene{baseScene: baseScene{key: PauseSceneKey, cfg: cfg}}
}

var pauseMenu = []MenuItem{
	{Text: "Continue", Scene: PlaySceneKey},
	{Text: "Exit", Scene: MenuSceneKey},
}

func (s *PauseScene) Create(sys *engine.Systems) {
	s.createBase(sys)
	s.menu = s.createMenu(sys, pauseMenu, func(item MenuItem) {
		if item.Text == "Continue" {
			s.resume(sys)
			return
		}
		sys.Scenes.Stop(PlaySceneKey)
		sys.Scenes.Start(item.Scene)
	})

	sys.Input.OnKey(core.KeyEsc, func() { s.resume(sys) })
	sys.Input.OnKey(core.KeyP, func() { s.resume(sys) })
}

func (s *PauseScene) resume(sys *engine.Systems) {
	sys.Scenes.Stop("")
	sys.Scenes.Resume(PlaySceneKey)
}

func init() {
	registry.Register(registry.SceneInfo{Key: PauseSceneKey, Order: 40, Title: "Pause overlay"},
		func(o registry.Options) engine.Scene { return NewPauseScene(o.Config) })
}
