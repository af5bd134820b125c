package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Asset paths inside the asset library.
const (
	skyPath   = "sky.txt"
	pipePath  = "pipe.txt"
	pausePath = "pause.txt"
	backPath  = "back.txt"
	birdPath  = "birdSprite.txt"
)

// birdFrame is the size of one bird spritesheet frame.
var birdFrame = engine.FrameSize{Width: 16, Height: 16}

// PreloadScene loads every texture, then hands over to the menu.
type PreloadScene struct {
	baseScene
}

func NewPreloadScene(cfg config.FlappyConfig) *PreloadScene {
	return &PreloadScene{baseScene{key: PreloadSceneKey, cfg: cfg}}
}

func (s *PreloadScene) Preload(sys *engine.Systems) {
	sys.Load.Image(SkyTexture, skyPath)
	sys.Load.Image(PipeTexture, pipePath)
	sys.Load.Image(PauseTexture, pausePath)
	sys.Load.Image(BackTexture, backPath)
	sys.Load.Spritesheet(BirdTexture, birdPath, birdFrame)
}

func (s *PreloadScene) Create(sys *engine.Systems) {
	sys.Log.Debug("assets loaded", "textures", sys.Textures.Len())
	sys.Scenes.Start(MenuSceneKey)
}

func init() {
	registry.Register(registry.SceneInfo{Key: PreloadSceneKey, Order: 0, Title: "Load textures"},
		func(o registry.Options) engine.Scene { return NewPreloadScene(o.Config) })
}
