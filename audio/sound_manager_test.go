package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/core"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for sound := core.SoundType(0); sound < core.SoundTypeCount; sound++ {
		sm.Play(sound)
	}
	sm.SetMuted(true)
	sm.Cleanup()
}

// TestSoundManagerDisabledConfig verifies a disabled config refuses to open the speaker
func TestSoundManagerDisabledConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Disabled manager must not report initialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI without audio devices; the game runs silently then
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}

	sm.Play(core.SoundMove)
	sm.Cleanup()
	if sm.IsInitialized() {
		t.Error("Expected uninitialized after cleanup")
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.muted {
		t.Error("Expected unmuted by default")
	}
	sm.SetMuted(true)
	if !sm.muted {
		t.Error("Expected muted after SetMuted(true)")
	}

	// A live speaker must not receive cues while muted
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()
	sm.Play(core.SoundEat)
	speaker.Lock()
	n := sm.mixer.Len()
	speaker.Unlock()
	if n != 0 {
		t.Errorf("Expected an empty mixer while muted, got %d streamers", n)
	}
}
