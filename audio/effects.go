package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// tone is an oscillator whose pitch and gain both fall exponentially over its
// lifetime: pitch to freq*ToneSweepRatio, gain from peak to ToneFloorGain
type tone struct {
	freq     float64
	peak     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone creates a swept, decaying tone of the given peak gain
func NewTone(freq float64, duration time.Duration, peak float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		peak:     peak,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		p := float64(o.position) / float64(o.duration)
		freq := o.freq * math.Pow(constants.ToneSweepRatio, p)
		gain := rampGain(o.peak, p)

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// rampGain interpolates exponentially from peak at p=0 to ToneFloorGain at p=1
func rampGain(peak, p float64) float64 {
	if peak <= constants.ToneFloorGain {
		return peak
	}
	return peak * math.Pow(constants.ToneFloorGain/peak, p)
}

// delayed prefixes s with d of silence
func delayed(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound is a bright two-note chirp, the second note 60ms behind the first
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewTone(constants.EatNote1Freq, constants.EatNote1Duration, constants.EatNote1Volume, WaveSine, rate)
	n2 := NewTone(constants.EatNote2Freq, constants.EatNote2Duration, constants.EatNote2Volume, WaveSine, rate)

	mixed := beep.Mix(n1, delayed(n2, constants.EatNote2Delay, rate))
	return newVolume(mixed, cfg.EffectVolumes[core.SoundEat]*cfg.MasterVolume)
}

// CreateDieSound is a falling sawtooth pair
func CreateDieSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewTone(constants.DieNote1Freq, constants.DieNote1Duration, constants.DieNote1Volume, WaveSaw, rate)
	n2 := NewTone(constants.DieNote2Freq, constants.DieNote2Duration, constants.DieNote2Volume, WaveSaw, rate)

	mixed := beep.Mix(n1, delayed(n2, constants.DieNote2Delay, rate))
	return newVolume(mixed, cfg.EffectVolumes[core.SoundDie]*cfg.MasterVolume)
}

// CreateMoveSound is a short quiet tick
func CreateMoveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	t := NewTone(constants.MoveFreq, constants.MoveDuration, constants.MoveVolume, WaveSine, rate)
	return newVolume(t, cfg.EffectVolumes[core.SoundMove]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a cue, nil for unknown types
func GetSoundEffect(sound core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch sound {
	case core.SoundEat:
		return CreateEatSound(cfg)
	case core.SoundDie:
		return CreateDieSound(cfg)
	case core.SoundMove:
		return CreateMoveSound(cfg)
	default:
		return nil
	}
}
