package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the game loop
const (
	KeyTicks      = "engine.ticks"
	KeyIntervalMs = "engine.interval_ms"
	KeyFruitEaten = "game.fruit_eaten"
	KeyRuns       = "game.runs"
	KeyStoreFails = "store.failures"
	KeyPaused     = "game.paused"
	KeyAudioLive  = "audio.live"
)

// Registry is the central metrics facade
// Owners cache pointers during init; update paths write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Summary renders all metrics as a single "key=value" line for the debug HUD
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
