package engine

import (
	"sort"

	"github.com/lixenwraith/vi-snake/constants"
)

// GameState holds score, records and run flags
// Best and Leaderboard live for the process; the run fields are reset on every start
type GameState struct {
	// ===== Run State =====
	// Reset by ResetRun at the start of every run

	Score   int
	Running bool
	Paused  bool

	// ===== Records =====
	// Loaded at startup, written on each game-over

	Best        int
	Leaderboard []int

	// ===== Preferences =====

	SoundOn bool
}

// NewGameState creates a state with the given persisted records
func NewGameState(best int, leaderboard []int) *GameState {
	return &GameState{
		Best:        max(0, best),
		Leaderboard: InsertScores(nil, leaderboard, constants.LeaderboardSize),
		SoundOn:     true,
	}
}

// ResetRun discards the previous run and marks a new one running
func (s *GameState) ResetRun() {
	s.Score = 0
	s.Running = true
	s.Paused = false
}

// AddPoints credits eaten fruit; negative values are ignored so the score never drops
func (s *GameState) AddPoints(points int) {
	if points > 0 {
		s.Score += points
	}
}

// RecordResult folds the finished score into best and leaderboard.
// Returns whether best improved and the 1-based leaderboard rank of the
// score, 0 when it did not make the board
func (s *GameState) RecordResult(score int) (bestImproved bool, rank int) {
	if score > s.Best {
		s.Best = score
		bestImproved = true
	}

	// Equal scores already on the board stay ahead of the new one
	pos := 0
	for _, v := range s.Leaderboard {
		if v >= score {
			pos++
		}
	}
	if pos < constants.LeaderboardSize {
		rank = pos + 1
	}

	s.Leaderboard = InsertScore(s.Leaderboard, score, constants.LeaderboardSize)
	return bestImproved, rank
}

// InsertScore appends score, sorts descending keeping insertion order among
// equal scores, and truncates to limit. The input slice is not modified
func InsertScore(board []int, score, limit int) []int {
	return InsertScores(board, []int{score}, limit)
}

// InsertScores is InsertScore for several scores at once, inserted in order
func InsertScores(board []int, scores []int, limit int) []int {
	out := make([]int, 0, len(board)+len(scores))
	out = append(out, board...)
	for _, sc := range scores {
		if sc >= 0 {
			out = append(out, sc)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i] > out[j]
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
