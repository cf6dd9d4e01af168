package engine

import "errors"

// Run-ending conditions. All three lead to the same game-over view
var (
	ErrWallCollision = errors.New("wall collision")
	ErrSelfCollision = errors.New("self collision")
	ErrBoardFull     = errors.New("no free cell for fruit")
)

// IsRunOver reports whether err is one of the run-ending conditions
func IsRunOver(err error) bool {
	return errors.Is(err, ErrWallCollision) ||
		errors.Is(err, ErrSelfCollision) ||
		errors.Is(err, ErrBoardFull)
}

// ErrBoardTooSmall is returned by Start when the board cannot hold a fresh snake
var ErrBoardTooSmall = errors.New("board too small")
