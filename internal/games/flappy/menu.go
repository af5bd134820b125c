package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// MenuScene is the main menu: Play, Score and Exit.
type MenuScene struct {
	baseScene
	menu *menu
}

func NewMenuScene(cfg config.FlappyConfig) *MenuScene {
	return &MenuScene{baseScene: baseScene{key: MenuSceneKey, cfg: cfg}}
}

var mainMenu = []MenuItem{
	{Text: "Play", Scene: PlaySceneKey},
	{Text: "Score", Scene: ScoreSceneKey},
	{Text: "Exit"},
}

func (s *MenuScene) Create(sys *engine.Systems) {
	s.createBase(sys)
	s.menu = s.createMenu(sys, mainMenu, func(item MenuItem) {
		if item.Scene != "" {
			sys.Scenes.Start(item.Scene)
		}
		if item.Text == "Exit" {
			sys.Game().Destroy()
		}
	})
}

func init() {
	registry.Register(registry.SceneInfo{Key: MenuSceneKey, Order: 10, Title: "Main menu"},
		func(o registry.Options) engine.Scene { return NewMenuScene(o.Config) })
}
