package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The engine uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the host-visible summary of a running game.
type GameState struct {
	Scene    string // Key of the top running scene
	Score    int    // Current score of the active run
	GameOver bool   // Whether the active run has ended
	Paused   bool   // Whether the active run is paused
	Quit     bool   // Whether the game asked the host to exit
}
