package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Machine turns key events into intents and debounces direction keys:
// the first press of a run waits out the initial delay before it repeats,
// later repeats of the same key pass at the faster repeat rate
type Machine struct {
	table  *KeyTable
	delay  time.Duration
	repeat time.Duration

	last    time.Time
	lastKey KeyEntry
	pressed bool
	running bool
}

// NewMachine creates a machine over table, nil uses the default bindings
func NewMachine(table *KeyTable, delay, repeat time.Duration) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table, delay: delay, repeat: repeat}
}

// Handle resolves ev received at now, ok is false when the key is unbound or debounced
func (m *Machine) Handle(ev *tcell.EventKey, now time.Time) (Intent, bool) {
	entry, ok := m.table.Lookup(ev)
	if !ok || entry.Intent == IntentNone {
		return Intent{}, false
	}
	if entry.Intent != IntentMove {
		m.pressed = false
		return Intent{Type: entry.Intent}, true
	}
	if !m.allow(entry, now) {
		return Intent{}, false
	}
	return Intent{Type: IntentMove, Dir: entry.Dir}, true
}

// Release forgets the current run, the next direction key passes immediately
func (m *Machine) Release() {
	m.pressed = false
	m.running = false
}

func (m *Machine) allow(entry KeyEntry, now time.Time) bool {
	if !m.pressed || entry != m.lastKey {
		m.pressed = true
		m.running = false
		m.lastKey = entry
		m.last = now
		return true
	}

	elapsed := now.Sub(m.last)
	if elapsed > m.delay+m.repeat {
		// gap too long for key repeat, the key was let go in between
		m.running = false
		m.last = now
		return true
	}

	wait := m.delay
	if m.running {
		wait = m.repeat
	}
	if elapsed < wait {
		return false
	}
	m.running = true
	m.last = now
	return true
}
