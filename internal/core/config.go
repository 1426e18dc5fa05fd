package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool   // Whether the game has ended
	Status   string // One-line human readable status
}

// StepResult is returned by Game.Step() after each input is applied.
type StepResult struct {
	State GameState
	// Changed is false when the input was ignored or rejected.
	Changed bool
}
