package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at its menu.

Controls:
  Space/Up/W   - Flap (menus: Up/Down/Enter)
  Mouse        - Click to flap, click menu entries and buttons
  P/Esc        - Pause (Esc/P in the pause menu resumes)
  Esc/B        - Back to the menu from the score screen
  Ctrl+S       - Save a text screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start on the easy tier and progress
  normal - Start on the normal tier and progress
  hard   - Start on the hard tier
  fixed  - No progression, stays on the config's initial tier

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	opts, err := loadGameOptions(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var recorder tui.RunRecorder
	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Storage = store
		recorder = store
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: could not open scores database; see the log for details")
		opts.Storage = engine.NewMemoryStorage()
	}

	logger.Info("game starting", "width", width, "height", height, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(opts, recorder, cfg); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game exited")
	return nil
}
