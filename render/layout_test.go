package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

func TestFitBoard(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{80, 24, 17},   // height bound: 24*20*0.72 = 345.6
		{200, 100, 26}, // capped at 520 units
		{20, 40, 9},    // width bound: 20*10*0.9 = 180
		{0, 0, 0},
	}

	for _, tt := range tests {
		b := FitBoard(tt.w, tt.h)
		if b.Cols != tt.want || b.Rows != tt.want {
			t.Errorf("FitBoard(%d,%d) = %dx%d, want %dx%d", tt.w, tt.h, b.Cols, b.Rows, tt.want, tt.want)
		}
	}
}

func TestLayoutCentersBoard(t *testing.T) {
	b := engine.Board{Cols: 17, Rows: 17}
	l := NewLayout(80, 24, b)

	if l.OriginX != (80-34)/2 || l.OriginY != (24-17)/2 {
		t.Errorf("Unexpected origin (%d,%d)", l.OriginX, l.OriginY)
	}

	x, y := l.CellToScreen(core.Cell{X: 3, Y: 2})
	if x != l.OriginX+6 || y != l.OriginY+2 {
		t.Errorf("Expected two columns per cell, got (%d,%d)", x, y)
	}

	// Room for HUD and border is kept on tiny screens
	tight := NewLayout(10, 7, engine.Board{Cols: 5, Rows: 5})
	if tight.OriginY < 2 || tight.OriginX < 1 {
		t.Errorf("Expected origin clamped to leave border room, got (%d,%d)", tight.OriginX, tight.OriginY)
	}
}

func TestBounceOffset(t *testing.T) {
	for ms := int64(0); ms < 4000; ms += 37 {
		v := BounceOffset(ms)
		if math.Abs(v) > constants.FruitBounceAmplitude+1e-9 {
			t.Fatalf("Offset %f out of range at %dms", v, ms)
		}
	}
	if BounceOffset(0) != 0 {
		t.Error("Expected zero offset at t=0")
	}
	quarter := int64(math.Round(constants.FruitBouncePeriodMs * math.Pi / 2))
	if v := BounceOffset(quarter); math.Abs(v-constants.FruitBounceAmplitude) > 1e-3 {
		t.Errorf("Expected peak offset at a quarter period, got %f", v)
	}
}

func TestBodyColorDarkensTowardTail(t *testing.T) {
	n := 10
	if BodyColor(0, n) != RgbHead {
		t.Error("Expected the head color at index 0")
	}

	_, prevG, _ := BodyColor(1, n).RGB()
	for i := 2; i < n; i++ {
		_, g, _ := BodyColor(i, n).RGB()
		if g > prevG {
			t.Errorf("Green channel rose toward the tail at %d: %d > %d", i, g, prevG)
		}
		prevG = g
	}
}

func TestFruitGlowTracksBounce(t *testing.T) {
	fruit := engine.FruitKinds[0].Color
	low := FruitGlow(fruit, -constants.FruitBounceAmplitude, constants.FruitBounceAmplitude)
	high := FruitGlow(fruit, constants.FruitBounceAmplitude, constants.FruitBounceAmplitude)

	lr, _, _ := low.RGB()
	hr, _, _ := high.RGB()
	if hr <= lr {
		t.Errorf("Expected a stronger glow at the top of the bounce: %d vs %d", hr, lr)
	}
	if FruitGlow(fruit, 0, 0) != RgbBackground {
		t.Error("Zero amplitude should leave the background untouched")
	}
}

func TestLeaderboardRows(t *testing.T) {
	if rows := LeaderboardRows(nil); len(rows) != 1 || rows[0] != constants.NoScoresText {
		t.Errorf("Expected the empty message, got %v", rows)
	}
	rows := LeaderboardRows([]int{12, 3})
	if len(rows) != 2 || rows[0] != "#1    12 pts" || rows[1] != "#2     3 pts" {
		t.Errorf("Unexpected rows %q", rows)
	}
}

func TestEyeGlyphsFollowDirection(t *testing.T) {
	if e := EyeGlyphs(core.DirRight); e[1] == ' ' || e[0] != ' ' {
		t.Errorf("Facing right should put eyes in the right column, got %q", e)
	}
	if e := EyeGlyphs(core.DirLeft); e[0] == ' ' || e[1] != ' ' {
		t.Errorf("Facing left should put eyes in the left column, got %q", e)
	}
	if EyeGlyphs(core.DirUp) == EyeGlyphs(core.DirDown) {
		t.Error("Up and down should differ")
	}
}
