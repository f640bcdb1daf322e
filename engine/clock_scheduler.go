package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/status"
)

// intentBuffer holds intents typed ahead of the scheduler
const intentBuffer = 4

// ClockScheduler runs the session on a fixed tick
// Input is applied between ticks, so the world only ever changes on this goroutine
type ClockScheduler struct {
	session *Session
	clock   TimeProvider

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction
	mu               sync.Mutex

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	intents chan core.Direction
	frames  chan struct{}

	// Cached metric pointers
	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler ticking the session every tickInterval
func NewClockScheduler(session *Session, clock TimeProvider, tickInterval time.Duration, reg *status.Registry) *ClockScheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		session:      session,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		intents:      make(chan core.Direction, intentBuffer),
		frames:       make(chan struct{}, 1),
		statTicks:    reg.Ints.Get(status.KeyTicks),
	}
}

// Submit queues a player intent for the next tick, reports false when the buffer is full
func (cs *ClockScheduler) Submit(dir core.Direction) bool {
	select {
	case cs.intents <- dir:
		return true
	default:
		return false
	}
}

// Frames signals after every tick, coalescing signals the renderer has not consumed
func (cs *ClockScheduler) Frames() <-chan struct{} {
	return cs.frames
}

// TickCount returns the ticks run since Start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// IsRunning reports whether the loop is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// schedulerLoop runs the main scheduling loop with drift correction
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		now := cs.clock.Now()

		cs.mu.Lock()
		deadline := cs.nextTickDeadline
		cs.mu.Unlock()

		var sleepDuration time.Duration
		if !now.Before(deadline) {
			cs.Step()

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			maxBehind := cs.tickInterval * 2
			if now.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()

			sleepDuration = deadline.Sub(cs.clock.Now())
		} else {
			sleepDuration = deadline.Sub(now)
		}

		// A frozen test clock never reaches the deadline; poll at the tick rate instead
		if sleepDuration <= 0 || sleepDuration > cs.tickInterval {
			sleepDuration = cs.tickInterval
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}

// Step applies at most one pending intent, then ticks the session once
func (cs *ClockScheduler) Step() Phase {
	select {
	case dir := <-cs.intents:
		// Refused intents are dropped
		_ = cs.session.Submit(dir)
	default:
	}

	phase := cs.session.Tick()
	cs.tickCount.Add(1)
	cs.statTicks.Add(1)

	select {
	case cs.frames <- struct{}{}:
	default:
	}
	return phase
}
