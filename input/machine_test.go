package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockfall/core"
)

const (
	testDelay  = 150 * time.Millisecond
	testRepeat = 50 * time.Millisecond
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestMachine_Bindings(t *testing.T) {
	m := NewMachine(nil, testDelay, testRepeat)
	base := time.Unix(0, 0)

	tests := []struct {
		ev   *tcell.EventKey
		want Intent
	}{
		{specialKey(tcell.KeyUp), Intent{IntentMove, core.DirUp}},
		{runeKey('h'), Intent{IntentMove, core.DirLeft}},
		{runeKey('j'), Intent{IntentMove, core.DirDown}},
		{specialKey(tcell.KeyRight), Intent{IntentMove, core.DirRight}},
		{runeKey('.'), Intent{Type: IntentConfirm}},
		{specialKey(tcell.KeyEnter), Intent{Type: IntentConfirm}},
		{runeKey(' '), Intent{Type: IntentReload}},
		{runeKey('q'), Intent{Type: IntentQuit}},
		{specialKey(tcell.KeyEscape), Intent{Type: IntentQuit}},
		{runeKey('m'), Intent{Type: IntentMute}},
	}

	for i, tt := range tests {
		m.Release()
		got, ok := m.Handle(tt.ev, base.Add(time.Duration(i)*time.Second))
		if !ok {
			t.Errorf("%s: expected intent, got none", tt.ev.Name())
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.ev.Name(), tt.want, got)
		}
	}

	if _, ok := m.Handle(runeKey('z'), base); ok {
		t.Error("Expected unbound key to be ignored")
	}
}

func TestMachine_Debounce(t *testing.T) {
	m := NewMachine(nil, testDelay, testRepeat)
	now := time.Unix(100, 0)
	left := specialKey(tcell.KeyLeft)

	steps := []struct {
		after time.Duration
		pass  bool
	}{
		{0, true},                       // first press
		{30 * time.Millisecond, false},  // auto-repeat inside the initial delay
		{100 * time.Millisecond, false}, // still inside, measured from the first press
		{160 * time.Millisecond, true},  // initial delay elapsed
		{180 * time.Millisecond, false}, // repeat rate now applies
		{210 * time.Millisecond, true},
		{265 * time.Millisecond, true},
	}

	for _, s := range steps {
		_, ok := m.Handle(left, now.Add(s.after))
		if ok != s.pass {
			t.Errorf("at %v: expected pass=%v, got %v", s.after, s.pass, ok)
		}
	}
}

func TestMachine_DirectionChangePassesImmediately(t *testing.T) {
	m := NewMachine(nil, testDelay, testRepeat)
	now := time.Unix(100, 0)

	if _, ok := m.Handle(runeKey('h'), now); !ok {
		t.Fatal("Expected first press to pass")
	}
	if _, ok := m.Handle(runeKey('l'), now.Add(10*time.Millisecond)); !ok {
		t.Error("Expected a different direction to pass immediately")
	}
	if _, ok := m.Handle(runeKey('l'), now.Add(20*time.Millisecond)); ok {
		t.Error("Expected repeat of the new direction to wait for the initial delay")
	}
}

func TestMachine_LongGapStartsNewRun(t *testing.T) {
	m := NewMachine(nil, testDelay, testRepeat)
	now := time.Unix(100, 0)
	k := runeKey('k')

	m.Handle(k, now)
	if _, ok := m.Handle(k, now.Add(time.Second)); !ok {
		t.Fatal("Expected press after a long gap to pass")
	}
	if _, ok := m.Handle(k, now.Add(time.Second+testRepeat)); ok {
		t.Error("Expected the new run to wait for the initial delay again")
	}
}

func TestMachine_NonMoveResetsRun(t *testing.T) {
	m := NewMachine(nil, testDelay, testRepeat)
	now := time.Unix(100, 0)

	m.Handle(runeKey('h'), now)
	m.Handle(specialKey(tcell.KeyEnter), now.Add(5*time.Millisecond))
	if _, ok := m.Handle(runeKey('h'), now.Add(10*time.Millisecond)); !ok {
		t.Error("Expected direction after another action to pass")
	}
}
