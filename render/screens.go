package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
)

// Menu key hints
const (
	titleHint        = "[enter] play   [i] how to play   [q] quit"
	instructionsHint = "[enter] start   [esc] back"
	gameOverHint     = "[r] restart   [m] menu   [q] quit"
)

var instructionLines = []string{
	"Arrows or h j k l   steer",
	"space               pause",
	"esc                 exit to menu",
	"ctrl+s              sound on/off",
	"",
	"Eat fruit to grow. Every 5 points the snake speeds up.",
	"Walls and your own tail end the run.",
}

func (r *TerminalRenderer) drawTitle(f Frame, width, height int, defaultStyle tcell.Style) {
	cx := width / 2
	y := height/2 - 3

	r.drawCentered(cx, y, "🐍", defaultStyle)
	r.drawCentered(cx, y+2, constants.TitleText, defaultStyle.Foreground(RgbAccent).Bold(true))
	r.drawCentered(cx, y+4, fmt.Sprintf("Best %d", f.Best), defaultStyle)
	r.drawCentered(cx, y+6, titleHint, defaultStyle.Foreground(RgbTextDim))
}

func (r *TerminalRenderer) drawInstructions(width, height int, defaultStyle tcell.Style) {
	cx := width / 2
	y := height/2 - (len(instructionLines)+4)/2

	r.drawCentered(cx, y, "HOW TO PLAY", defaultStyle.Foreground(RgbAccent).Bold(true))
	for i, line := range instructionLines {
		r.drawCentered(cx, y+2+i, line, defaultStyle)
	}
	r.drawCentered(cx, y+3+len(instructionLines), instructionsHint, defaultStyle.Foreground(RgbTextDim))
}

func (r *TerminalRenderer) drawGameOver(f Frame, width, height int, defaultStyle tcell.Style) {
	score, best, newBest := f.Score, f.Best, false
	board := f.Leaderboard
	if f.Result != nil {
		score, best, newBest = f.Result.Score, f.Result.Best, f.Result.NewBest
		board = f.Result.Leaderboard
	}

	cx := width / 2
	y := height/2 - (constants.LeaderboardSize+8)/2

	r.drawCentered(cx, y, "GAME OVER", defaultStyle.Foreground(RgbDanger).Bold(true))
	r.drawCentered(cx, y+2, fmt.Sprintf("Score %d   Best %d", score, best), defaultStyle.Bold(true))
	if newBest {
		r.drawCentered(cx, y+3, "new best!", defaultStyle.Foreground(RgbScorePop))
	}

	rows := LeaderboardRows(board)
	rowStyle := defaultStyle
	if len(board) == 0 {
		rowStyle = defaultStyle.Foreground(RgbTextDim)
	}
	for i, row := range rows {
		r.drawCentered(cx, y+5+i, row, rowStyle)
	}

	r.drawCentered(cx, y+6+constants.LeaderboardSize, gameOverHint, defaultStyle.Foreground(RgbTextDim))
}

// LeaderboardRows formats ranked "#N  score pts" lines, or the empty-board message
func LeaderboardRows(board []int) []string {
	if len(board) == 0 {
		return []string{constants.NoScoresText}
	}
	rows := make([]string, len(board))
	for i, s := range board {
		rows[i] = fmt.Sprintf("#%d  %4d pts", i+1, s)
	}
	return rows
}
