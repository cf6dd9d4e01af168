package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// StepResult is the geometry produced by one successful tick
type StepResult struct {
	Snake Snake
	Dir   core.Direction
	Ate   bool
}

// ResolveDirection adopts pending unless it would reverse the snake onto itself
func ResolveDirection(current, pending core.Direction) core.Direction {
	if pending.IsReverseOf(current) {
		return current
	}
	return pending
}

// Advance moves the snake one cell. The input snake is not modified.
// Returns ErrWallCollision or ErrSelfCollision when the move ends the run
func Advance(b Board, snake Snake, current, pending core.Direction, fruit core.Cell) (StepResult, error) {
	dir := ResolveDirection(current, pending)
	head := snake.Head().Add(dir)

	if !b.Contains(head) {
		return StepResult{Dir: dir}, ErrWallCollision
	}
	// Tail still occupies its cell at this point
	if snake.Contains(head) {
		return StepResult{Dir: dir}, ErrSelfCollision
	}

	next := make(Snake, 0, len(snake)+1)
	next = append(next, head)
	next = append(next, snake...)

	ate := head == fruit
	if !ate {
		next = next[:len(next)-1]
	}

	return StepResult{Snake: next, Dir: dir, Ate: ate}, nil
}

// NextInterval returns the tick interval after the score changed to score.
// The second value reports whether the interval changed
func NextInterval(score int, current time.Duration) (time.Duration, bool) {
	if score <= 0 || score%constants.SpeedUpScoreMultiple != 0 {
		return current, false
	}
	if current <= constants.MinTickInterval {
		return current, false
	}
	return max(constants.MinTickInterval, current-constants.TickIntervalStep), true
}
