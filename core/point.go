package core

// Cell is an integer grid coordinate
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// In reports whether the cell lies within [0, cols) x [0, rows)
func (c Cell) In(cols, rows int) bool {
	return c.X >= 0 && c.X < cols && c.Y >= 0 && c.Y < rows
}

// Direction is a unit step on the grid
type Direction struct {
	X, Y int
}

var (
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverseOf reports whether d points exactly opposite to other
func (d Direction) IsReverseOf(other Direction) bool {
	return d == other.Reverse()
}
