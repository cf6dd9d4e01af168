package core

// SoundType represents the audio cues the game requests
type SoundType int

const (
	SoundEat  SoundType = iota // Fruit eaten
	SoundDie                   // Run ended
	SoundMove                  // Direction change accepted
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundDie:
		return "die"
	case SoundMove:
		return "move"
	default:
		return "unknown"
	}
}
