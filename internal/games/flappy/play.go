package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// PlayScene is one run: the bird, the pipes, the score and the pause flow.
// Run state is reset in Create, so a restart starts a fresh run.
type PlayScene struct {
	baseScene
	difficulty *config.DifficultyManager

	bird          *engine.Sprite
	pipes         *engine.Group
	pauseButton   *engine.Image
	scoreText     *engine.Text
	bestScoreText *engine.Text
	countdownText *engine.Text
	countdownTime *engine.TimerEvent

	score     int
	countdown int
	isPaused  bool
	isOver    bool

	resumeListener engine.ListenerID
}

func NewPlayScene(cfg config.FlappyConfig) *PlayScene {
	return &PlayScene{
		baseScene:  baseScene{key: PlaySceneKey, cfg: cfg},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func (s *PlayScene) Create(sys *engine.Systems) {
	s.score = 0
	s.isPaused = false
	s.isOver = false
	s.countdownText = nil
	s.countdownTime = nil
	s.difficulty.Reset()

	s.createBase(sys)
	s.createBird(sys)
	s.createPipes(sys)
	s.createColliders(sys)
	s.createScore(sys)
	s.createPause(sys)
	s.handleInputs(sys)
	s.listenToEvents(sys)
	s.createAnimations(sys)
}

func (s *PlayScene) Update(sys *engine.Systems, _ time.Duration) {
	s.checkGameStatus(sys)
	s.recyclePipes(sys)
}

// ReportState exposes the run to the host.
func (s *PlayScene) ReportState(state *core.GameState) {
	state.Score = s.score
	state.GameOver = s.isOver
	state.Paused = s.isPaused
}

// Score returns the current run's score.
func (s *PlayScene) Score() int { return s.score }

// Tier returns the name of the current difficulty tier.
func (s *PlayScene) Tier() string { return s.difficulty.Current().Name }

func (s *PlayScene) createBird(sys *engine.Systems) {
	cfg := s.cfg.Bird
	s.bird = sys.Physics.AddSprite(sys.Width()*cfg.StartX, sys.Height()*cfg.StartY, BirdTexture)
	s.bird.SetFlipX(true).SetScale(cfg.Scale).SetOrigin(0, 0)

	frame := s.bird.Texture()
	body := s.bird.Body()
	body.SetSize(frame.Width, frame.Height-cfg.BodyInset, true)
	body.GravityY = cfg.Gravity
	body.CollideWorldBounds = true
}

func (s *PlayScene) createPipes(sys *engine.Systems) {
	s.pipes = sys.Physics.AddGroup()

	for i := 0; i < s.cfg.Pipes.Pairs; i++ {
		upper := s.pipes.Create(0, 0, PipeTexture)
		upper.Body().Immovable = true
		upper.SetOrigin(0, 1)

		lower := s.pipes.Create(0, 0, PipeTexture)
		lower.Body().Immovable = true
		lower.SetOrigin(0, 0)

		s.placePipe(sys, upper, lower)
	}

	s.pipes.SetVelocityX(s.cfg.Pipes.Velocity)
}

func (s *PlayScene) createColliders(sys *engine.Systems) {
	sys.Physics.AddCollider(s.bird, s.pipes, func(_, _ *engine.Sprite) {
		s.gameOver(sys)
	})
}

func (s *PlayScene) createScore(sys *engine.Systems) {
	best, err := LoadBest(sys.Storage)
	if err != nil {
		sys.Log.Warn("best score unavailable", "err", err)
	}
	s.scoreText = sys.Add.Text(16, 16, fmt.Sprintf("Score: %d", 0), hudColor)
	s.bestScoreText = sys.Add.Text(16, 52, fmt.Sprintf("Best score: %d", best), hudColor)
}

func (s *PlayScene) createPause(sys *engine.Systems) {
	s.pauseButton = sys.Add.Image(sys.Width()-10, sys.Height()-10, PauseTexture).
		SetInteractive().
		SetScale(3).
		SetOrigin(1, 1)

	s.pauseButton.On(engine.EventPointerDown, func(engine.Pointer) { s.pause(sys) })
}

func (s *PlayScene) handleInputs(sys *engine.Systems) {
	sys.Input.On(engine.EventPointerDown, func(engine.Pointer) { s.flap() })
	sys.Input.OnKey(core.KeySpace, s.flap)
	sys.Input.OnKey(core.KeyUp, s.flap)
	sys.Input.OnKey(core.KeyP, func() { s.pause(sys) })
	sys.Input.OnKey(core.KeyEsc, func() { s.pause(sys) })
}

// listenToEvents subscribes to "resume" once; scene events outlive restarts.
func (s *PlayScene) listenToEvents(sys *engine.Systems) {
	if s.resumeListener != 0 {
		return
	}
	s.resumeListener = sys.Events.On(engine.EventResume, func(any) {
		s.startCountdown(sys)
	})
}

func (s *PlayScene) createAnimations(sys *engine.Systems) {
	a := s.cfg.Bird.Animation
	frames, err := sys.Anims.GenerateFrameNumbers(BirdTexture, a.StartFrame, a.EndFrame)
	if err != nil {
		sys.Log.Error("bird animation", "err", err)
		return
	}
	if _, err := sys.Anims.Create(engine.Animation{
		Key:       a.Key,
		Frames:    frames,
		FrameRate: a.FrameRate,
		Repeat:    a.Repeat,
	}); err != nil {
		sys.Log.Error("bird animation", "err", err)
		return
	}
	if err := s.bird.Play(a.Key); err != nil {
		sys.Log.Error("bird animation", "err", err)
	}
}

func (s *PlayScene) flap() {
	if s.isPaused {
		return
	}
	s.bird.Body().VelocityY = -s.cfg.Bird.FlapVelocity
}

func (s *PlayScene) pause(sys *engine.Systems) {
	if s.isOver {
		return
	}
	s.isPaused = true
	sys.Physics.Pause()
	sys.Scenes.Pause("")
	sys.Scenes.Launch(PauseSceneKey)
}

// startCountdown delays play after a resume: "Fly in: N" ticks down and
// physics resumes when it reaches zero.
func (s *PlayScene) startCountdown(sys *engine.Systems) {
	if s.countdownTime != nil {
		s.countdownTime.Remove()
	}

	s.countdown = s.cfg.Timing.ResumeCountdown
	label := fmt.Sprintf("Fly in: %d", s.countdown)
	if s.countdownText == nil {
		cx, cy := s.center(sys)
		s.countdownText = sys.Add.Text(cx, cy, label, hudColor).SetOrigin(0.5, 0.5)
	} else {
		s.countdownText.SetText(label)
	}

	s.countdownTime = sys.Time.AddEvent(engine.TimerConfig{
		Delay:    time.Duration(s.cfg.Timing.CountdownStepMs) * time.Millisecond,
		Loop:     true,
		Callback: func() { s.countDown(sys) },
	})
}

func (s *PlayScene) countDown(sys *engine.Systems) {
	s.countdown--
	s.countdownText.SetText(fmt.Sprintf("Fly in: %d", s.countdown))
	if s.countdown > 0 {
		return
	}

	s.isPaused = false
	s.countdownText.SetText("")
	sys.Physics.Resume()
	s.countdownTime.Remove()
	s.countdownTime = nil
}

func (s *PlayScene) checkGameStatus(sys *engine.Systems) {
	b := s.bird.WorldBounds()
	if b.Bottom() >= sys.Height() || s.bird.Y <= 0 {
		s.gameOver(sys)
	}
}

// recyclePipes moves the first pair that has left the screen to the right
// of the rightmost pipe. Each recycled pair scores a point.
func (s *PlayScene) recyclePipes(sys *engine.Systems) {
	var gone []*engine.Sprite
	for _, pipe := range s.pipes.Children() {
		if pipe.WorldBounds().Right() > 0 {
			continue
		}
		gone = append(gone, pipe)
		if len(gone) == 2 {
			s.placePipe(sys, gone[0], gone[1])
			s.increaseScore()
			s.saveBestScore(sys)
			s.increaseDifficulty(sys)
		}
	}
}

func (s *PlayScene) placePipe(sys *engine.Systems, upper, lower *engine.Sprite) {
	p := PlacePair(sys.Rand, RightmostX(s.pipes.Children()), s.difficulty.Current(),
		int(sys.Height()), s.cfg.Pipes.EdgeMargin)

	upper.X, upper.Y = p.X, p.GapTop
	lower.X, lower.Y = p.X, p.LowerY()
}

func (s *PlayScene) increaseScore() {
	s.score++
	s.scoreText.SetText(fmt.Sprintf("Score: %d", s.score))
}

func (s *PlayScene) saveBestScore(sys *engine.Systems) int {
	best, err := SaveBest(sys.Storage, s.score)
	if err != nil {
		sys.Log.Error("save best score", "err", err)
	}
	return best
}

func (s *PlayScene) increaseDifficulty(sys *engine.Systems) {
	if s.difficulty.Advance(s.score) {
		sys.Log.Info("difficulty increased", "tier", s.difficulty.Current().Name, "score", s.score)
	}
}

// gameOver freezes the run, tints the bird and restarts the scene after a
// delay. Later calls within the same run are ignored.
func (s *PlayScene) gameOver(sys *engine.Systems) {
	if s.isOver {
		return
	}
	s.isOver = true

	sys.Physics.Pause()
	s.bird.SetTint(s.cfg.Bird.DeathTint)
	best := s.saveBestScore(sys)

	sys.Log.Info("game over", "score", s.score, "best", best, "tier", s.Tier())
	sys.Game().Events().Emit(EventGameOver, RunResult{Score: s.score, Best: best, Tier: s.Tier()})

	sys.Time.DelayedCall(time.Duration(s.cfg.Timing.RestartDelayMs)*time.Millisecond, func() {
		sys.Scenes.Restart()
	})
}

func init() {
	registry.Register(registry.SceneInfo{Key: PlaySceneKey, Order: 30, Title: "Gameplay"},
		func(o registry.Options) engine.Scene { return NewPlayScene(o.Config) })
}
