package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// TerminalRenderer draws frames onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws f for the current screen size and shows it
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.fill(0, 0, width, height, defaultStyle)

	switch f.View {
	case core.ViewTitle:
		r.drawTitle(f, width, height, defaultStyle)
	case core.ViewInstructions:
		r.drawInstructions(width, height, defaultStyle)
	case core.ViewGame:
		r.drawGame(f, width, height, defaultStyle)
	case core.ViewGameOver:
		r.drawGameOver(f, width, height, defaultStyle)
	}

	if f.Debug != "" {
		r.drawText(0, height-1, f.Debug, defaultStyle.Foreground(RgbTextDim))
	}

	r.screen.Show()
}

// drawGame draws the board, HUD and pause overlay
func (r *TerminalRenderer) drawGame(f Frame, width, height int, defaultStyle tcell.Style) {
	l := NewLayout(width, height, f.Board)

	r.drawGrid(l)
	r.drawFruit(l, f.Fruit, f.Now)
	r.drawSnake(l, f.Snake, f.Dir)
	r.drawBorder(l)
	r.drawPops(l, f.Pops, f.Now)
	r.drawHUD(l, f, defaultStyle)

	if f.Paused {
		r.drawPauseOverlay(l)
	}
}

func (r *TerminalRenderer) drawGrid(l Layout) {
	dotStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGridDot)
	for y := 0; y < l.Board.Rows; y++ {
		for x := 0; x < l.Board.Cols; x++ {
			sx, sy := l.CellToScreen(core.Cell{X: x, Y: y})
			r.screen.SetContent(sx, sy, '·', nil, dotStyle)
			r.screen.SetContent(sx+1, sy, ' ', nil, dotStyle)
		}
	}
}

// drawFruit draws the fruit glyph over a background glow that tracks the bounce
func (r *TerminalRenderer) drawFruit(l Layout, fruit engine.Fruit, now time.Time) {
	if !l.Board.Contains(fruit.Cell) {
		return
	}
	offset := BounceOffset(now.UnixMilli())
	glow := FruitGlow(fruit.Kind.Color, offset, constants.FruitBounceAmplitude)
	style := tcell.StyleDefault.Background(glow).Foreground(fruit.Kind.Color)

	sx, sy := l.CellToScreen(fruit.Cell)
	r.drawCellGlyph(sx, sy, fruit.Kind.Glyph, style)
}

// drawSnake draws tail to head so the head is always on top
func (r *TerminalRenderer) drawSnake(l Layout, snake engine.Snake, dir core.Direction) {
	n := len(snake)
	for i := n - 1; i >= 0; i-- {
		seg := snake[i]
		if !l.Board.Contains(seg) {
			continue
		}
		sx, sy := l.CellToScreen(seg)
		style := tcell.StyleDefault.Background(BodyColor(i, n))

		if i == 0 {
			eyes := EyeGlyphs(dir)
			eyeStyle := style.Foreground(RgbEye).Bold(true)
			r.screen.SetContent(sx, sy, eyes[0], nil, eyeStyle)
			r.screen.SetContent(sx+1, sy, eyes[1], nil, eyeStyle)
			continue
		}
		r.screen.SetContent(sx, sy, ' ', nil, style)
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
	}
}

// EyeGlyphs returns the two head columns; eyes sit on the side the head faces
func EyeGlyphs(dir core.Direction) [2]rune {
	switch dir {
	case core.DirRight:
		return [2]rune{' ', ':'}
	case core.DirLeft:
		return [2]rune{':', ' '}
	case core.DirUp:
		return [2]rune{'˙', '˙'}
	case core.DirDown:
		return [2]rune{'.', '.'}
	default:
		return [2]rune{' ', ' '}
	}
}

func (r *TerminalRenderer) drawBorder(l Layout) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBorder)
	left := l.OriginX - 1
	right := l.OriginX + l.Width()
	top := l.OriginY - 1
	bottom := l.OriginY + l.Board.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '╭', nil, style)
	r.screen.SetContent(right, top, '╮', nil, style)
	r.screen.SetContent(left, bottom, '╰', nil, style)
	r.screen.SetContent(right, bottom, '╯', nil, style)
}

// drawPops floats the eaten glyph and "+N" upward from the eaten cell
func (r *TerminalRenderer) drawPops(l Layout, pops []engine.Pop, now time.Time) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbScorePop).Bold(true)

	for _, p := range pops {
		age := now.Sub(p.At)
		if age < 0 || age >= constants.ScorePopDuration {
			continue
		}
		rise := int(age / (constants.ScorePopDuration / 3))
		sx, sy := l.CellToScreen(p.Cell)
		y := sy - 1 - rise
		if y < l.OriginY {
			continue
		}

		label := fmt.Sprintf("+%d", p.Points)
		if age < constants.FruitPopDuration {
			r.drawCellGlyph(sx, y, p.Glyph, style)
			r.drawText(sx+constants.CellColumns, y, label, style)
		} else {
			r.drawText(sx, y, label, style)
		}
	}
}

// drawHUD draws score, best, pause and sound state on the row above the border
func (r *TerminalRenderer) drawHUD(l Layout, f Frame, defaultStyle tcell.Style) {
	y := l.OriginY - 2
	left := l.OriginX - 1
	right := l.OriginX + l.Width() + 1

	score := fmt.Sprintf("Score %d", f.Score)
	best := fmt.Sprintf("Best %d", f.Best)
	r.drawText(left, y, score, defaultStyle.Bold(true))
	r.drawText(left+runewidth.StringWidth(score)+3, y, best, defaultStyle.Foreground(RgbTextDim))

	sound := constants.SoundOffIndicator
	if f.SoundOn {
		sound = constants.SoundOnIndicator
	}
	state := "❚❚"
	if f.Paused {
		state = "▶"
	}
	hud := state + "  " + sound
	r.drawText(right-runewidth.StringWidth(hud), y, hud, defaultStyle.Foreground(RgbAccent))
}

func (r *TerminalRenderer) drawPauseOverlay(l Layout) {
	style := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbText).Bold(true)
	hint := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbTextDim)

	cx := l.OriginX + l.Width()/2
	cy := l.OriginY + l.Board.Rows/2
	r.drawCentered(cx, cy, constants.PausedText, style)
	r.drawCentered(cx, cy+1, " space to resume ", hint)
}

// drawCellGlyph draws ch in a two-column cell; narrow glyphs are padded
func (r *TerminalRenderer) drawCellGlyph(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
	if runewidth.RuneWidth(ch) < constants.CellColumns {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes s starting at x, advancing by display width
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			w = 1
		}
		x += w
	}
	return x
}

// drawCentered writes s centered on column cx
func (r *TerminalRenderer) drawCentered(cx, y int, s string, style tcell.Style) {
	r.drawText(cx-runewidth.StringWidth(s)/2, y, s, style)
}

func (r *TerminalRenderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
