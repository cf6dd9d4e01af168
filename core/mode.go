package core

// View identifies which screen is presented; exactly one is visible at a time
type View uint8

const (
	ViewTitle View = iota
	ViewInstructions
	ViewGame
	ViewGameOver
)

func (v View) String() string {
	switch v {
	case ViewTitle:
		return "title"
	case ViewInstructions:
		return "instructions"
	case ViewGame:
		return "game"
	case ViewGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
