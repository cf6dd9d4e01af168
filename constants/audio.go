package constants

import "time"

// Eat Sound Timing
const (
	EatNote1Freq     = 880.0
	EatNote1Duration = 100 * time.Millisecond
	EatNote1Volume   = 0.2
	EatNote2Freq     = 1100.0
	EatNote2Delay    = 60 * time.Millisecond
	EatNote2Duration = 80 * time.Millisecond
	EatNote2Volume   = 0.15
)

// Die Sound Timing
const (
	DieNote1Freq     = 200.0
	DieNote1Duration = 300 * time.Millisecond
	DieNote1Volume   = 0.3
	DieNote2Freq     = 140.0
	DieNote2Delay    = 200 * time.Millisecond
	DieNote2Duration = 400 * time.Millisecond
	DieNote2Volume   = 0.25
)

// Move Sound Timing
const (
	MoveFreq     = 220.0
	MoveDuration = 40 * time.Millisecond
	MoveVolume   = 0.04
)

// Tone shaping
const (
	// ToneFloorGain is the gain an exponential ramp decays to at the end of a tone
	ToneFloorGain = 0.001

	// ToneSweepRatio is the end frequency as a fraction of the start frequency
	ToneSweepRatio = 0.5
)

// Speaker
const (
	DefaultSampleRate = 44100
	SpeakerBuffer     = 100 * time.Millisecond
)
