package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the runes of row y as a string
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

// findRow returns the first row containing s, or -1
func findRow(screen tcell.Screen, s string) int {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return y
		}
	}
	return -1
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func gameFrame() Frame {
	return Frame{
		View:    core.ViewGame,
		Board:   engine.Board{Cols: 17, Rows: 17},
		Snake:   engine.Snake{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Dir:     core.DirRight,
		Fruit:   engine.Fruit{Cell: core.Cell{X: 10, Y: 8}, Kind: engine.FruitKinds[0]},
		Score:   7,
		Best:    12,
		SoundOn: true,
		Now:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderGameDrawsBoard(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	f := gameFrame()
	NewTerminalRenderer(screen).RenderFrame(f)

	l := NewLayout(80, 24, f.Board)

	hx, hy := l.CellToScreen(f.Snake[0])
	if bg := background(screen, hx, hy); bg != RgbHead {
		t.Errorf("Expected head color at (%d,%d), got %v", hx, hy, bg)
	}
	if ch, _, _, _ := screen.GetContent(hx+1, hy); ch != ':' {
		t.Errorf("Expected eyes on the right column when facing right, got %q", ch)
	}

	bx, by := l.CellToScreen(f.Snake[1])
	if bg := background(screen, bx, by); bg != BodyColor(1, 3) {
		t.Errorf("Expected body gradient color, got %v", bg)
	}

	fx, fy := l.CellToScreen(f.Fruit.Cell)
	if ch, _, _, _ := screen.GetContent(fx, fy); ch != f.Fruit.Kind.Glyph {
		t.Errorf("Expected fruit glyph at (%d,%d), got %q", fx, fy, ch)
	}

	gx, gy := l.CellToScreen(core.Cell{X: 0, Y: 0})
	if ch, _, _, _ := screen.GetContent(gx, gy); ch != '·' {
		t.Errorf("Expected grid dot on an empty cell, got %q", ch)
	}

	if ch, _, _, _ := screen.GetContent(l.OriginX-1, l.OriginY-1); ch != '╭' {
		t.Errorf("Expected border corner, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(l.OriginX+l.Width(), l.OriginY+f.Board.Rows); ch != '╯' {
		t.Errorf("Expected bottom-right border corner, got %q", ch)
	}

	hud := rowText(screen, l.OriginY-2)
	if !strings.Contains(hud, "Score 7") || !strings.Contains(hud, "Best 12") {
		t.Errorf("Expected score and best in the HUD, got %q", hud)
	}
	if !strings.Contains(hud, "on") {
		t.Errorf("Expected sound indicator in the HUD, got %q", hud)
	}
}

func TestRenderPauseOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	f := gameFrame()

	NewTerminalRenderer(screen).RenderFrame(f)
	if findRow(screen, strings.TrimSpace(constants.PausedText)) != -1 {
		t.Error("Pause overlay drawn while running")
	}

	f.Paused = true
	NewTerminalRenderer(screen).RenderFrame(f)
	if findRow(screen, strings.TrimSpace(constants.PausedText)) == -1 {
		t.Error("Expected the pause overlay")
	}
}

func TestRenderScorePop(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	f := gameFrame()
	f.Pops = []engine.Pop{{Cell: core.Cell{X: 8, Y: 8}, Glyph: '🍋', Points: 2, At: f.Now.Add(-850 * time.Millisecond)}}

	NewTerminalRenderer(screen).RenderFrame(f)
	if findRow(screen, "+2") == -1 {
		t.Error("Expected a +2 label within its lifetime")
	}

	f.Now = f.Now.Add(time.Second)
	NewTerminalRenderer(screen).RenderFrame(f)
	if findRow(screen, "+2") != -1 {
		t.Error("Expected the label gone after its lifetime")
	}
}

func TestRenderMenus(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  []string
	}{
		{
			name:  "title",
			frame: Frame{View: core.ViewTitle, Best: 31},
			want:  []string{constants.TitleText, "Best 31", "[enter] play"},
		},
		{
			name:  "instructions",
			frame: Frame{View: core.ViewInstructions},
			want:  []string{"HOW TO PLAY", "steer", "[enter] start"},
		},
		{
			name:  "game over without scores",
			frame: Frame{View: core.ViewGameOver, Result: &engine.RunResult{}},
			want:  []string{"GAME OVER", "Score 0", constants.NoScoresText, "[r] restart"},
		},
		{
			name: "game over with leaderboard",
			frame: Frame{View: core.ViewGameOver, Result: &engine.RunResult{
				Score: 9, Best: 9, NewBest: true, Rank: 1, Leaderboard: []int{9, 4},
			}},
			want: []string{"Score 9   Best 9", "new best!", "#1", "#2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t, 80, 24)
			NewTerminalRenderer(screen).RenderFrame(tt.frame)
			for _, s := range tt.want {
				if findRow(screen, s) == -1 {
					t.Errorf("Expected %q on screen", s)
				}
			}
		})
	}
}

func TestRenderDebugLine(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	f := gameFrame()
	f.Debug = "engine.ticks=3"

	NewTerminalRenderer(screen).RenderFrame(f)
	if !strings.HasPrefix(rowText(screen, 23), "engine.ticks=3") {
		t.Errorf("Expected the debug line on the last row, got %q", rowText(screen, 23))
	}
}

func TestFrameFromContextCopies(t *testing.T) {
	h := engine.NewTestHarness(1, &engine.MemoryScores{Best: 5, Leaderboard: []int{5}})
	if err := h.Ctx.Start(engine.Board{Cols: 10, Rows: 10}); err != nil {
		t.Fatal(err)
	}

	f := FrameFromContext(h.Ctx, core.ViewGame, nil)
	if f.Best != 5 || len(f.Snake) != 3 || f.View != core.ViewGame {
		t.Fatalf("Unexpected frame %+v", f)
	}

	h.Ctx.Snake[0] = core.Cell{X: 0, Y: 0}
	h.Ctx.State.Leaderboard[0] = 99
	if f.Snake[0] == (core.Cell{X: 0, Y: 0}) || f.Leaderboard[0] == 99 {
		t.Error("Frame must not alias session state")
	}
}
