package audio

import (
	"errors"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
