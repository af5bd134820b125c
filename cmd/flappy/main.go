// flappy is a Flappy Bird-style arcade game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play the game
//	flappy scores            - Show recorded runs and the best score
//	flappy serve             - Start SSH server for remote play
//	flappy scenes            - List the game's scenes
//	flappy config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Starting difficulty: easy, normal, hard, fixed
//	--assets <dir>        - Load textures from a directory instead of the built-in set
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Fly a bird through an endless stream of pipes, right in your terminal.
The gaps shrink and the pipes bunch up as your score grows.

Available commands:
  play     - Play the game (default)
  scores   - View recorded runs and the best score
  serve    - Start SSH server for remote play
  scenes   - List the game's scenes
  config   - Print the effective game config

Examples:
  flappy
  flappy play --difficulty hard
  flappy scores -i
  flappy serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagAssets, "assets", "", "Directory with textures and manifest.yaml (default: built-in)")
	pf.StringVar(&flagLogPath, "log", "~/.flappy/flappy.log", "Log file for the terminal game")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// newFileLogger opens the --log file for appending. The terminal belongs to
// the renderer while a game runs. An empty path discards logs.
func newFileLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		logger, err := newLogger(io.Discard, "flappy")
		return logger, io.NopCloser(nil), err
	}
	path, err := expandHome(flagLogPath)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "flappy")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// loadConfig reads the game config named by --config and applies --difficulty.
func loadConfig() (config.FlappyConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	cfg, source, err := config.LoadFlappyWithSource(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, "", fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

// loadGameOptions gathers config and assets for building games.
func loadGameOptions(logger *log.Logger) (tui.GameOptions, error) {
	cfg, source, err := loadConfig()
	if err != nil {
		return tui.GameOptions{}, err
	}
	lib, err := assets.Open(flagAssets)
	if err != nil {
		return tui.GameOptions{}, err
	}
	logger.Debug("game options loaded", "config", source, "assets", len(lib.Paths()), "difficulty", cfg.Difficulty.Initial)
	return tui.GameOptions{Config: cfg, Assets: lib, Logger: logger}, nil
}

// openStore opens the --db database. A failure is logged and nil returned;
// the game then keeps its best score in memory.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "error", err)
		return nil
	}
	return store
}
