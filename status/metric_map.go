package status

import (
	"slices"
	"sync"
)

// MetricMap hands out one stable *T per name. The map itself is only touched
// on lookup; owners keep the pointer and update the value directly
type MetricMap[T any] struct {
	m sync.Map // string -> *T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, allocating a zero value on first use
func (mm *MetricMap[T]) Get(key string) *T {
	if v, ok := mm.m.Load(key); ok {
		return v.(*T)
	}
	v, _ := mm.m.LoadOrStore(key, new(T))
	return v.(*T)
}

// Keys lists registered names in ascending order
func (mm *MetricMap[T]) Keys() []string {
	var keys []string
	mm.m.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	return keys
}

// Range calls fn for each metric in Keys order
func (mm *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	for _, k := range mm.Keys() {
		fn(k, mm.Get(k))
	}
}
