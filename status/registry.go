// Package status publishes runtime counters from the engine to whoever wants to
// display them. Writers cache metric pointers once and update atomics directly
package status

import "sync/atomic"

// Well-known metric keys
const (
	KeyTicks        = "engine.ticks"
	KeyQueuePushed  = "engine.queue.pushed"
	KeyCascadeWoken = "engine.cascade.woken"
	KeyPropelSteps  = "engine.propel.steps"
	KeyPlayerMoves  = "player.moves"
	KeyPlayerDeaths = "player.deaths"
	KeyLevelLoads   = "level.loads"
	KeyLevelNumber  = "level.number"
	KeyLevelTitle   = "level.title"
	KeyPlayerDead   = "player.dead"
	KeyLevelDone    = "level.complete"
)

// Registry is the metrics facade
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot copies the integer counters
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}
