package constants

import "time"

// Game Loop Timing Constants
const (
	// InitialTickInterval is the snake movement interval at the start of a run
	InitialTickInterval = 150 * time.Millisecond

	// MinTickInterval is the floor below which speed-ups stop
	MinTickInterval = 60 * time.Millisecond

	// TickIntervalStep is subtracted from the interval on every speed-up
	TickIntervalStep = 12 * time.Millisecond

	// SpeedUpScoreMultiple triggers a speed-up whenever the score lands on a multiple of it
	SpeedUpScoreMultiple = 5
)

// Snake and Board Constants
const (
	// InitialSnakeLength is the spawn length, laid out left of the head
	InitialSnakeLength = 3

	// MaxSpawnAttempts bounds rejection sampling before falling back to a free-cell scan
	MaxSpawnAttempts = 256

	// LeaderboardSize is the number of scores kept across sessions
	LeaderboardSize = 5
)

// Persistence Keys
const (
	BestScoreKey   = "snakeBest"
	LeaderboardKey = "snakeLeaderboard"
)
