package input

import (
	"github.com/lixenwraith/vi-snake/core"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentToggleSound // Ctrl+S
	IntentResize      // Terminal resize event

	// Menu navigation
	IntentInstructions // Enter/p on title, i
	IntentStart        // Enter on instructions
	IntentRestart      // r on game over
	IntentMenu         // m on game over, Esc outside the game

	// In-game
	IntentSteer // Arrows, h/j/k/l
	IntentPause // Space
	IntentAbort // Esc
)

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentToggleSound:
		return "toggle_sound"
	case IntentResize:
		return "resize"
	case IntentInstructions:
		return "instructions"
	case IntentStart:
		return "start"
	case IntentRestart:
		return "restart"
	case IntentMenu:
		return "menu"
	case IntentSteer:
		return "steer"
	case IntentPause:
		return "pause"
	case IntentAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Intent is the result of processing one input event
type Intent struct {
	Type      IntentType
	Direction core.Direction // IntentSteer only
	Width     int            // IntentResize only
	Height    int            // IntentResize only
}
