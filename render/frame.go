package render

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Frame is an immutable snapshot of everything the renderer draws
type Frame struct {
	View core.View

	Board engine.Board
	Snake engine.Snake
	Dir   core.Direction
	Fruit engine.Fruit
	Pops  []engine.Pop

	Score   int
	Best    int
	Paused  bool
	SoundOn bool

	Leaderboard []int
	Result      *engine.RunResult // Set on the game-over view

	Now   time.Time
	Debug string // Metrics line, empty when debug is off
}

// FrameFromContext snapshots ctx for view. The snake, pops and leaderboard are copied
func FrameFromContext(ctx *engine.GameContext, view core.View, result *engine.RunResult) Frame {
	now := ctx.Now()
	f := Frame{
		View:        view,
		Board:       ctx.Board,
		Snake:       append(engine.Snake(nil), ctx.Snake...),
		Dir:         ctx.Dir,
		Fruit:       ctx.Fruit,
		Pops:        ctx.ActivePops(now),
		Score:       ctx.State.Score,
		Best:        ctx.State.Best,
		Paused:      ctx.State.Paused,
		SoundOn:     ctx.State.SoundOn,
		Leaderboard: append([]int(nil), ctx.State.Leaderboard...),
		Now:         now,
	}
	if result != nil {
		r := *result
		f.Result = &r
	}
	return f
}
