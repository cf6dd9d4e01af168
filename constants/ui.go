package constants

import "time"

// Board Layout Constants
// Units mirror a pixel canvas: one terminal row is CellUnits tall and one
// grid cell is CellColumns terminal columns wide
const (
	// CellUnits is the size of a single grid cell
	CellUnits = 20

	// BoardCapUnits caps the board edge regardless of view size
	BoardCapUnits = 520

	// BoardWidthRatio is the share of the view width the board may occupy
	BoardWidthRatio = 0.9

	// BoardHeightRatio is the share of the view height the board may occupy
	BoardHeightRatio = 0.72

	// CellColumns is the number of terminal columns drawn per grid cell
	CellColumns = 2

	// MinBoardCells is the smallest playable board edge
	MinBoardCells = 5
)

// Animation Timing Constants
const (
	// FruitBouncePeriodMs is the divisor applied to wall-clock milliseconds before sin()
	FruitBouncePeriodMs = 300.0

	// FruitBounceAmplitude is the peak bounce offset in canvas units
	FruitBounceAmplitude = 2.0

	// FruitPopDuration is how long the eaten glyph lingers above the board
	FruitPopDuration = 800 * time.Millisecond

	// ScorePopDuration is how long the "+N" label lingers
	ScorePopDuration = 900 * time.Millisecond
)

// UI Text
const (
	TitleText         = "V I - S N A K E"
	PausedText        = " PAUSED "
	NoScoresText      = "No scores yet"
	SoundOnIndicator  = "♪ on"
	SoundOffIndicator = "♪ off"
)
