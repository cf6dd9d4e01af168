package engine

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
)

// Deps are the collaborators a GameContext drives. Nil fields get defaults:
// no-op store, sounds and presenter, a wall-clock scheduler and time source,
// and a time-seeded spawner
type Deps struct {
	Store     ScoreStore
	Sounds    SoundPlayer
	Presenter Presenter
	Scheduler Scheduler
	Spawner   *Spawner
	Time      TimeProvider
	Status    *status.Registry

	// Interval is the tick period a run starts at; zero uses InitialTickInterval
	Interval time.Duration
}

// GameContext is the session passed to tick, input and render.
// Every field is touched only from the main loop goroutine
type GameContext struct {
	// ===== Immutable After Init =====

	store     ScoreStore
	sounds    SoundPlayer
	presenter Presenter
	scheduler Scheduler
	spawner   *Spawner
	clock     TimeProvider
	Status    *status.Registry

	startInterval time.Duration

	// ===== Main-Loop Exclusive =====

	State    *GameState
	Board    Board
	Snake    Snake
	Dir      core.Direction // Effective direction of the last tick
	Pending  core.Direction // Direction the next tick will try to apply
	Fruit    Fruit
	Interval time.Duration
	Pops     []Pop

	// LastCause is the condition that ended the most recent run
	LastCause error

	// Cached metric pointers
	statTicks    *atomic.Int64
	statFruit    *atomic.Int64
	statInterval *atomic.Int64
	statRuns     *atomic.Int64
	statPaused   *atomic.Bool
}

// NewGameContext wires collaborators and loads persisted records
func NewGameContext(d Deps) *GameContext {
	if d.Store == nil {
		d.Store = nopStore{}
	}
	if d.Sounds == nil {
		d.Sounds = nopSounds{}
	}
	if d.Presenter == nil {
		d.Presenter = nopPresenter{}
	}
	if d.Scheduler == nil {
		d.Scheduler = NewClockScheduler()
	}
	if d.Spawner == nil {
		d.Spawner = NewSpawner(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	if d.Time == nil {
		d.Time = NewMonotonicTimeProvider()
	}
	if d.Status == nil {
		d.Status = status.NewRegistry()
	}
	if d.Interval <= 0 {
		d.Interval = constants.InitialTickInterval
	}

	ctx := &GameContext{
		store:     d.Store,
		sounds:    d.Sounds,
		presenter: d.Presenter,
		scheduler: d.Scheduler,
		spawner:   d.Spawner,
		clock:     d.Time,
		Status:    d.Status,
		State:     NewGameState(d.Store.LoadBest(), d.Store.LoadLeaderboard()),
		Interval:  d.Interval,

		startInterval: d.Interval,

		statTicks:    d.Status.Ints.Get(status.KeyTicks),
		statFruit:    d.Status.Ints.Get(status.KeyFruitEaten),
		statInterval: d.Status.Ints.Get(status.KeyIntervalMs),
		statRuns:     d.Status.Ints.Get(status.KeyRuns),
		statPaused:   d.Status.Bools.Get(status.KeyPaused),
	}
	ctx.sounds.SetMuted(!ctx.State.SoundOn)

	return ctx
}

// Scheduler returns the tick source the main loop selects on
func (ctx *GameContext) Scheduler() Scheduler {
	return ctx.scheduler
}

// Now returns the context's wall-clock time
func (ctx *GameContext) Now() time.Time {
	return ctx.clock.Now()
}

// Start begins a fresh run on board b and enters the game view
func (ctx *GameContext) Start(b Board) error {
	if b.Cols < constants.MinBoardCells || b.Rows < constants.MinBoardCells {
		return fmt.Errorf("start %dx%d: %w", b.Cols, b.Rows, ErrBoardTooSmall)
	}

	ctx.presenter.Show(core.ViewGame)

	ctx.Board = b
	ctx.Dir = core.DirRight
	ctx.Pending = core.DirRight
	ctx.Snake = NewSnake(core.Cell{X: b.Cols / 2, Y: b.Rows / 2}, ctx.Dir, constants.InitialSnakeLength)
	ctx.Interval = ctx.startInterval
	ctx.Pops = nil
	ctx.LastCause = nil
	ctx.State.ResetRun()

	fruit, err := ctx.spawner.Spawn(ctx.Board, ctx.Snake)
	if err != nil {
		ctx.State.Running = false
		return fmt.Errorf("start: %w", err)
	}
	ctx.Fruit = fruit

	ctx.scheduler.Start(ctx.Interval)

	ctx.statRuns.Add(1)
	ctx.statInterval.Store(ctx.Interval.Milliseconds())
	ctx.statPaused.Store(false)
	return nil
}

// Tick advances the run by one step. A no-op while paused or not running.
// Run-ending errors are returned after the game-over flow has completed
func (ctx *GameContext) Tick() error {
	if !ctx.State.Running || ctx.State.Paused {
		return nil
	}
	ctx.statTicks.Add(1)

	now := ctx.clock.Now()
	ctx.prunePops(now)

	res, err := Advance(ctx.Board, ctx.Snake, ctx.Dir, ctx.Pending, ctx.Fruit.Cell)
	if err != nil {
		ctx.endRun(err)
		return err
	}

	ctx.Snake = res.Snake
	ctx.Dir = res.Dir
	ctx.Pending = res.Dir

	if !res.Ate {
		return nil
	}

	eaten := ctx.Fruit
	ctx.State.AddPoints(eaten.Kind.Points)
	ctx.statFruit.Add(1)
	ctx.play(core.SoundEat)
	ctx.Pops = append(ctx.Pops, Pop{
		Cell:   eaten.Cell,
		Glyph:  eaten.Kind.Glyph,
		Points: eaten.Kind.Points,
		At:     now,
	})

	fruit, err := ctx.spawner.Spawn(ctx.Board, ctx.Snake)
	if err != nil {
		ctx.endRun(err)
		return err
	}
	ctx.Fruit = fruit

	if next, changed := NextInterval(ctx.State.Score, ctx.Interval); changed {
		ctx.Interval = next
		ctx.scheduler.Reset(next)
		ctx.statInterval.Store(next.Milliseconds())
	}
	return nil
}

// Steer buffers d for the next tick. A direction reversing the current one is
// ignored. Returns whether the pending direction changed
func (ctx *GameContext) Steer(d core.Direction) bool {
	if !ctx.State.Running {
		return false
	}
	if d.IsReverseOf(ctx.Dir) || d == ctx.Pending {
		return false
	}

	ctx.Pending = d
	if d != ctx.Dir {
		ctx.play(core.SoundMove)
	}
	return true
}

// TogglePause suspends or resumes ticking without touching run state.
// Returns the new paused flag
func (ctx *GameContext) TogglePause() bool {
	if !ctx.State.Running {
		return false
	}
	ctx.State.Paused = !ctx.State.Paused
	ctx.statPaused.Store(ctx.State.Paused)
	return ctx.State.Paused
}

// Abort discards the run without recording a score and returns to the title view
func (ctx *GameContext) Abort() {
	ctx.scheduler.Stop()
	ctx.State.Running = false
	ctx.State.Paused = false
	ctx.statPaused.Store(false)
	ctx.presenter.Show(core.ViewTitle)
}

// ToggleSound flips the sound preference, mutes or unmutes the player to
// match, and returns the new value
func (ctx *GameContext) ToggleSound() bool {
	ctx.State.SoundOn = !ctx.State.SoundOn
	ctx.sounds.SetMuted(!ctx.State.SoundOn)
	return ctx.State.SoundOn
}

// ActivePops returns pops still visible at now
func (ctx *GameContext) ActivePops(now time.Time) []Pop {
	active := make([]Pop, 0, len(ctx.Pops))
	for _, p := range ctx.Pops {
		if now.Sub(p.At) < constants.ScorePopDuration {
			active = append(active, p)
		}
	}
	return active
}

func (ctx *GameContext) prunePops(now time.Time) {
	if len(ctx.Pops) == 0 {
		return
	}
	ctx.Pops = ctx.ActivePops(now)
}

// endRun stops ticking, records the score and hands off to the game-over view
func (ctx *GameContext) endRun(cause error) {
	ctx.scheduler.Stop()
	ctx.State.Running = false
	ctx.State.Paused = false
	ctx.LastCause = cause
	ctx.play(core.SoundDie)

	score := ctx.State.Score
	improved, rank := ctx.State.RecordResult(score)
	if improved {
		ctx.store.SaveBest(ctx.State.Best)
	}
	board := make([]int, len(ctx.State.Leaderboard))
	copy(board, ctx.State.Leaderboard)
	ctx.store.SaveLeaderboard(board)

	log.Printf("run over: score=%d best=%d rank=%d cause=%v", score, ctx.State.Best, rank, cause)

	ctx.presenter.GameOver(RunResult{
		Score:       score,
		Best:        ctx.State.Best,
		NewBest:     improved,
		Rank:        rank,
		Leaderboard: board,
		Cause:       cause,
	})
}

func (ctx *GameContext) play(sound core.SoundType) {
	ctx.sounds.Play(sound)
}
