package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// FruitKind describes how a fruit looks and what it is worth
type FruitKind struct {
	Name   string
	Glyph  rune
	Color  tcell.Color
	Points int
}

// FruitKinds is the table fruit are drawn from uniformly
var FruitKinds = []FruitKind{
	{Name: "apple", Glyph: '🍎', Color: tcell.NewRGBColor(0xe5, 0x39, 0x35), Points: 1},
	{Name: "orange", Glyph: '🍊', Color: tcell.NewRGBColor(0xff, 0x6f, 0x00), Points: 1},
	{Name: "lemon", Glyph: '🍋', Color: tcell.NewRGBColor(0xff, 0xd6, 0x00), Points: 2},
	{Name: "grape", Glyph: '🍇', Color: tcell.NewRGBColor(0x8e, 0x24, 0xaa), Points: 2},
	{Name: "blueberry", Glyph: '🫐', Color: tcell.NewRGBColor(0x15, 0x65, 0xc0), Points: 3},
}

// Fruit is a consumable cell
type Fruit struct {
	Cell core.Cell
	Kind FruitKind
}

// Pop is a transient "eaten" marker drawn above the board
type Pop struct {
	Cell   core.Cell
	Glyph  rune
	Points int
	At     time.Time
}
