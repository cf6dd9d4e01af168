package audio

import (
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != constants.DefaultSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", constants.DefaultSampleRate, cfg.SampleRate)
	}
	for sound := core.SoundType(0); sound < core.SoundTypeCount; sound++ {
		if cfg.EffectVolumes[sound] != 1.0 {
			t.Errorf("Expected unit volume for %s, got %f", sound, cfg.EffectVolumes[sound])
		}
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("VI_SNAKE_AUDIO_ENABLED", "false")
	t.Setenv("VI_SNAKE_MASTER_VOLUME", "40")
	t.Setenv("VI_SNAKE_SFX_VOLUMES", `{"move":0,"die":2}`)
	t.Setenv("VI_SNAKE_SAMPLE_RATE", "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundMove] != 0 {
		t.Errorf("Expected move volume 0, got %f", cfg.EffectVolumes[core.SoundMove])
	}
	if cfg.EffectVolumes[core.SoundDie] != 1 {
		t.Errorf("Expected die volume clamped to 1, got %f", cfg.EffectVolumes[core.SoundDie])
	}
	if cfg.EffectVolumes[core.SoundEat] != 1 {
		t.Error("Unspecified cue volume should keep its default")
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigIgnoresInvalid(t *testing.T) {
	t.Setenv("VI_SNAKE_AUDIO_ENABLED", "maybe")
	t.Setenv("VI_SNAKE_MASTER_VOLUME", "250")
	t.Setenv("VI_SNAKE_SFX_VOLUMES", "not json")
	t.Setenv("VI_SNAKE_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()

	if !cfg.Enabled {
		t.Error("Invalid bool should keep the default")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != constants.DefaultSampleRate {
		t.Errorf("Invalid sample rate should keep the default, got %d", cfg.SampleRate)
	}
}
