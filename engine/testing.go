package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// RecordingSounds collects played cues; nothing is recorded while muted
type RecordingSounds struct {
	Played []core.SoundType
	Muted  bool
}

func (r *RecordingSounds) Play(sound core.SoundType) {
	if r.Muted {
		return
	}
	r.Played = append(r.Played, sound)
}

func (r *RecordingSounds) SetMuted(muted bool) {
	r.Muted = muted
}

// Count returns how many times sound was played
func (r *RecordingSounds) Count(sound core.SoundType) int {
	n := 0
	for _, s := range r.Played {
		if s == sound {
			n++
		}
	}
	return n
}

// RecordingPresenter collects view switches and game-over results
type RecordingPresenter struct {
	Views   []core.View
	Results []RunResult
}

func (r *RecordingPresenter) Show(view core.View) {
	r.Views = append(r.Views, view)
}

func (r *RecordingPresenter) GameOver(result RunResult) {
	r.Views = append(r.Views, core.ViewGameOver)
	r.Results = append(r.Results, result)
}

// Current returns the last view shown, ViewTitle if none
func (r *RecordingPresenter) Current() core.View {
	if len(r.Views) == 0 {
		return core.ViewTitle
	}
	return r.Views[len(r.Views)-1]
}

// MemoryScores is an in-memory ScoreStore that counts writes
type MemoryScores struct {
	Best        int
	Leaderboard []int
	BestWrites  int
	BoardWrites int
}

func (m *MemoryScores) LoadBest() int { return m.Best }

func (m *MemoryScores) SaveBest(best int) {
	m.Best = best
	m.BestWrites++
}

func (m *MemoryScores) LoadLeaderboard() []int {
	return append([]int(nil), m.Leaderboard...)
}

func (m *MemoryScores) SaveLeaderboard(scores []int) {
	m.Leaderboard = append([]int(nil), scores...)
	m.BoardWrites++
}

// TestHarness bundles a GameContext with recording collaborators
type TestHarness struct {
	Ctx       *GameContext
	Clock     *MockTimeProvider
	Scheduler *ManualScheduler
	Sounds    *RecordingSounds
	Presenter *RecordingPresenter
	Store     *MemoryScores
}

// NewTestHarness creates a deterministic GameContext seeded with seed
func NewTestHarness(seed int64, store *MemoryScores) *TestHarness {
	if store == nil {
		store = &MemoryScores{}
	}
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	h := &TestHarness{
		Clock:     clock,
		Scheduler: NewManualScheduler(clock),
		Sounds:    &RecordingSounds{},
		Presenter: &RecordingPresenter{},
		Store:     store,
	}
	h.Ctx = NewGameContext(Deps{
		Store:     h.Store,
		Sounds:    h.Sounds,
		Presenter: h.Presenter,
		Scheduler: h.Scheduler,
		Spawner:   NewSpawner(rand.New(rand.NewSource(seed))),
		Time:      clock,
	})
	return h
}

// Step fires one scheduler tick and runs it, as the main loop would
func (h *TestHarness) Step() error {
	if !h.Scheduler.Fire() {
		return h.Ctx.Tick()
	}
	<-h.Scheduler.Ticks()
	return h.Ctx.Tick()
}
