package engine

import "github.com/lixenwraith/vi-snake/core"

// Board is the playfield size in cells
type Board struct {
	Cols, Rows int
}

// Contains reports whether c lies on the board
func (b Board) Contains(c core.Cell) bool {
	return c.In(b.Cols, b.Rows)
}

// Area returns the number of cells on the board
func (b Board) Area() int {
	return b.Cols * b.Rows
}

// Snake is an ordered run of cells, head first
type Snake []core.Cell

// NewSnake lays out a snake of the given length ending at head, trailing against dir
func NewSnake(head core.Cell, dir core.Direction, length int) Snake {
	s := make(Snake, length)
	back := dir.Reverse()
	c := head
	for i := range s {
		s[i] = c
		c = c.Add(back)
	}
	return s
}

// Head returns the first cell
func (s Snake) Head() core.Cell {
	return s[0]
}

// Contains reports whether any segment occupies c
func (s Snake) Contains(c core.Cell) bool {
	for _, seg := range s {
		if seg == c {
			return true
		}
	}
	return false
}
