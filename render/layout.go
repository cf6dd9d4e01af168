package render

import (
	"math"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// FitBoard sizes a square board for a viewW x viewH terminal.
// The edge is the smaller of 90% of the view width, 72% of the view height and
// the unit cap, snapped down to whole cells
func FitBoard(viewW, viewH int) engine.Board {
	wUnits := float64(viewW) * constants.CellUnits / constants.CellColumns
	hUnits := float64(viewH) * constants.CellUnits

	size := math.Min(wUnits*constants.BoardWidthRatio, hUnits*constants.BoardHeightRatio)
	size = math.Min(size, constants.BoardCapUnits)

	n := int(size) / constants.CellUnits
	if n < 0 {
		n = 0
	}
	return engine.Board{Cols: n, Rows: n}
}

// Layout places a board on the screen
type Layout struct {
	Board   engine.Board
	OriginX int // screen column of cell (0,0)
	OriginY int // screen row of cell (0,0)
}

// NewLayout centers b in the view, leaving room for the border and HUD above it
func NewLayout(viewW, viewH int, b engine.Board) Layout {
	w := b.Cols * constants.CellColumns
	ox := (viewW - w) / 2
	oy := (viewH - b.Rows) / 2
	if ox < 1 {
		ox = 1
	}
	if oy < 2 {
		oy = 2
	}
	return Layout{Board: b, OriginX: ox, OriginY: oy}
}

// CellToScreen returns the screen position of the left column of c
func (l Layout) CellToScreen(c core.Cell) (x, y int) {
	return l.OriginX + c.X*constants.CellColumns, l.OriginY + c.Y
}

// Width is the board width in terminal columns
func (l Layout) Width() int {
	return l.Board.Cols * constants.CellColumns
}

// BounceOffset is the fruit bounce at wall-clock time now, in canvas units
func BounceOffset(ms int64) float64 {
	return math.Sin(float64(ms)/constants.FruitBouncePeriodMs) * constants.FruitBounceAmplitude
}
