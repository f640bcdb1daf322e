package constant

import "time"

// Game Loop Timing
const (
	// TickInterval is the default scheduler tick, one propelled step per tick
	TickInterval = 20 * time.Millisecond

	// FrameInterval is the terminal redraw rate (~30 FPS)
	FrameInterval = 33 * time.Millisecond

	// PropelDelayTicks is how many ticks a moving boulder/arrow/balloon waits between steps
	PropelDelayTicks = 1

	// InputDelay is the debounce after the first key press of a run
	InputDelay = 150 * time.Millisecond

	// InputRepeatDelay is the debounce while a direction key is held
	InputRepeatDelay = 50 * time.Millisecond

	// WatchDebounce collapses bursts of file events for one level file
	WatchDebounce = 100 * time.Millisecond
)
