package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The arena size comes from the render surface; the seed drives spawning and
// panic rerolls.
type RuntimeConfig struct {
	ArenaW   int   // Arena width in pixels
	ArenaH   int   // Arena height in pixels
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the session.
type GameState struct {
	Score    int  // Demons currently inside the safe zone
	Counter  int  // Ticks remaining before the round ends
	GameOver bool // Whether the countdown has expired
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
