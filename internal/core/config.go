package core

// RuntimeConfig contains configuration passed to the game at initialization.
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

// GameState is what the platform needs to know about a running game.
type GameState struct {
	MaxTile  int  // Highest tile on the board
	Moves    int  // Moves that changed the board
	Won      bool // Target tile reached
	GameOver bool // Game has ended, by win or by running out of moves
	Paused   bool // Simulation is halted (pause, small window)
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // A move changed the board this tick
}
