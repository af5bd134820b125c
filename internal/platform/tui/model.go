package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// RunRecorder keeps the history of finished runs.
type RunRecorder interface {
	// SaveScore records a run and returns its run id.
	SaveScore(gameID string, score int, tier string) (string, error)
}

// GameOptions is everything needed to build a game for one terminal.
type GameOptions struct {
	Config  config.FlappyConfig
	Assets  engine.AssetSource
	Storage engine.Storage
	Logger  *log.Logger
}

// NewGame builds a game sized for rt. A zero seed picks one from the clock.
func NewGame(opts GameOptions, rt core.RuntimeConfig) (*engine.Game, error) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := flappy.New(flappy.Options{
		Config:   opts.Config,
		TickRate: rt.TickRate,
		Seed:     seed,
		Assets:   opts.Assets,
		Storage:  opts.Storage,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	game.Resize(rt.ScreenW, rt.ScreenH)
	return game, nil
}

// session tracks the runs finished in one terminal. It is shared by every
// copy of the Model.
type session struct {
	recorder  RunRecorder
	logger    *log.Logger
	runs      int
	last      flappy.RunResult
	lastRunID string
}

func (s *session) record(res flappy.RunResult) {
	s.runs++
	s.last = res
	s.lastRunID = ""

	// Runs that never passed a pipe are not worth a history row.
	if s.recorder == nil || res.Score == 0 {
		s.logger.Info("run finished", "score", res.Score, "best", res.Best, "tier", res.Tier)
		return
	}
	id, err := s.recorder.SaveScore(flappy.ID, res.Score, res.Tier)
	if err != nil {
		s.logger.Warn("could not save run", "error", err)
		return
	}
	s.lastRunID = id
	s.logger.Info("run finished", "score", res.Score, "best", res.Best, "tier", res.Tier, "run", id)
}

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game       *engine.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	session    *session
	logger     *log.Logger
	quitting   bool
	err        error
}

// NewModel creates a model around game. Finished runs go to recorder, which may be nil.
func NewModel(game *engine.Game, recorder RunRecorder, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.TickRate()
	}

	s := &session{recorder: recorder, logger: logger}
	game.Events().On(flappy.EventGameOver, func(data any) {
		if res, ok := data.(flappy.RunResult); ok {
			s.record(res)
		}
	})

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		session:    s,
		logger:     logger,
	}
	m.resize()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := PointerEvent(msg); ok {
			m.inputFrame.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case "ctrl+s":
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	if k := m.keys.GameKey(msg); k != core.KeyNone {
		m.inputFrame.PressKey(k)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	err := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		m.err = fmt.Errorf("tui: step: %w", err)
		m.logger.Error("game step failed", "error", err)
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.Destroyed() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// resize fits the game screen above the help footer.
func (m *Model) resize() {
	h := m.config.ScreenH - lipgloss.Height(m.help.View(m.keys))
	if h < 1 {
		h = 1
	}
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// saveScreenshot writes the current screen as plain text under ~/.flappy/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.txt", flappy.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderWithFooter(m.screen, m.help.View(m.keys))
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error { return m.err }

// Runs returns the number of runs finished in this session.
func (m Model) Runs() int { return m.session.runs }

// LastRun returns the most recent run and its history id ("" when not recorded).
func (m Model) LastRun() (flappy.RunResult, string) { return m.session.last, m.session.lastRunID }

// Game returns the hosted game.
func (m Model) Game() *engine.Game { return m.game }

// Screen returns the game screen buffer.
func (m Model) Screen() *core.Screen { return m.screen }

// Run builds a game and runs it in the current terminal until the player quits.
func Run(opts GameOptions, recorder RunRecorder, cfg core.RuntimeConfig) error {
	game, err := NewGame(opts, cfg)
	if err != nil {
		return err
	}
	model := NewModel(game, recorder, cfg, opts.Logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
