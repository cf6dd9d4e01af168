package engine

import (
	"math/rand"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Spawner places fruit on free cells using an injectable random source
type Spawner struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{
		rng:         rng,
		maxAttempts: constants.MaxSpawnAttempts,
	}
}

// Spawn picks a fruit cell uniformly among cells not covered by the snake.
// Rejection sampling runs for a bounded number of attempts, after which the
// free cells are enumerated. Returns ErrBoardFull when the snake covers the board
func (sp *Spawner) Spawn(b Board, snake Snake) (Fruit, error) {
	cell, ok := sp.sample(b, snake)
	if !ok {
		free := freeCells(b, snake)
		if len(free) == 0 {
			return Fruit{}, ErrBoardFull
		}
		cell = free[sp.rng.Intn(len(free))]
	}

	kind := FruitKinds[sp.rng.Intn(len(FruitKinds))]
	return Fruit{Cell: cell, Kind: kind}, nil
}

func (sp *Spawner) sample(b Board, snake Snake) (core.Cell, bool) {
	if b.Cols <= 0 || b.Rows <= 0 {
		return core.Cell{}, false
	}
	for range sp.maxAttempts {
		c := core.Cell{X: sp.rng.Intn(b.Cols), Y: sp.rng.Intn(b.Rows)}
		if !snake.Contains(c) {
			return c, true
		}
	}
	return core.Cell{}, false
}

func freeCells(b Board, snake Snake) []core.Cell {
	taken := make(map[core.Cell]struct{}, len(snake))
	for _, seg := range snake {
		taken[seg] = struct{}{}
	}

	free := make([]core.Cell, 0, max(0, b.Area()-len(taken)))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			c := core.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
