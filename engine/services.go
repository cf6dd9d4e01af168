package engine

import (
	"github.com/lixenwraith/vi-snake/core"
)

// ScoreStore persists the best score and leaderboard.
// Implementations swallow their own failures: reads fall back to defaults and
// writes are dropped
type ScoreStore interface {
	LoadBest() int
	SaveBest(best int)
	LoadLeaderboard() []int
	SaveLeaderboard(scores []int)
}

// SoundPlayer plays fire-and-forget audio cues. A muted player drops every cue
type SoundPlayer interface {
	Play(sound core.SoundType)
	SetMuted(muted bool)
}

// Presenter switches the visible view
type Presenter interface {
	Show(view core.View)
	GameOver(result RunResult)
}

// RunResult is handed to the presenter when a run ends
type RunResult struct {
	Score       int
	Best        int
	NewBest     bool
	Rank        int // 1-based leaderboard position, 0 if unranked
	Leaderboard []int
	Cause       error
}

type nopSounds struct{}

func (nopSounds) Play(core.SoundType) {}
func (nopSounds) SetMuted(bool)       {}

type nopPresenter struct{}

func (nopPresenter) Show(core.View)     {}
func (nopPresenter) GameOver(RunResult) {}

type nopStore struct{}

func (nopStore) LoadBest() int          { return 0 }
func (nopStore) SaveBest(int)           {}
func (nopStore) LoadLeaderboard() []int { return nil }
func (nopStore) SaveLeaderboard([]int)  {}
