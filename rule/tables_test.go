package rule

import (
	"testing"

	"github.com/lixenwraith/rockfall/core"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		offset core.Point
		want   float64
	}{
		{core.Point{}, 0},
		{core.Point{X: 0, Y: 1}, 1},
		{core.Point{X: -1, Y: 1}, 1.4},
		{core.Point{X: 2, Y: 0}, 2},
		{core.Point{X: 1, Y: -2}, 2.2},
		{core.Point{X: -2, Y: -2}, 2.8},
	}
	for _, tt := range tests {
		got, ok := Distance(tt.offset)
		if !ok || got != tt.want {
			t.Errorf("Expected distance %v for %v, got %v (ok=%v)", tt.want, tt.offset, got, ok)
		}
	}
	if _, ok := Distance(core.Point{X: 3, Y: 0}); ok {
		t.Errorf("Expected offset outside the box to have no distance")
	}
	if len(distances) != 25 {
		t.Errorf("Expected 25 distance entries, got %d", len(distances))
	}
}

func TestPriority(t *testing.T) {
	order := []core.Kind{core.KindBoulder, core.KindLeftArrow, core.KindRightArrow, core.KindBalloon}
	for i := 1; i < len(order); i++ {
		if Priority(order[i-1]) >= Priority(order[i]) {
			t.Errorf("Expected %s before %s", order[i-1], order[i])
		}
	}
}

func TestRotation(t *testing.T) {
	got, ok := Rotation(core.DirUp)
	if !ok {
		t.Fatal("Expected rotation for up")
	}
	want := [4]core.Direction{core.DirLeft, core.DirUp, core.DirRight, core.DirDown}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// every facing tries each direction exactly once
	for _, f := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		r, _ := Rotation(f)
		seen := map[core.Direction]bool{}
		for _, d := range r {
			seen[d] = true
		}
		if len(seen) != 4 {
			t.Errorf("Expected 4 distinct candidates for %s, got %v", f, r)
		}
	}

	if _, ok := Rotation(core.DirNone); ok {
		t.Errorf("Expected no rotation for a stationary facing")
	}
}

func TestWalkable(t *testing.T) {
	for _, k := range []core.Kind{core.KindPlayer, core.KindCage, core.KindDirt, core.KindBabyMonster} {
		if !Walkable(k) {
			t.Errorf("Expected %s walkable", k)
		}
	}
	for _, k := range []core.Kind{core.KindBoulder, core.KindDarkWall, core.KindLightWall, core.KindDiamond} {
		if Walkable(k) {
			t.Errorf("Expected %s not walkable", k)
		}
	}
}

func TestDeathCause(t *testing.T) {
	tests := []struct {
		mover, occupant core.Kind
		text            string
		sound           core.SoundType
		hasSound        bool
	}{
		{core.KindBoulder, core.KindPlayer, MsgBoulder, core.SoundKilled, true},
		{core.KindLeftArrow, core.KindPlayer, MsgArrow, core.SoundKilled, true},
		{core.KindPlayer, core.KindFire, MsgLandmine, core.SoundLandmine, true},
		{core.KindPlayer, core.KindBigMonster, MsgHungry, core.SoundKilled, true},
		{core.KindPlayer, core.KindBabyMonster, MsgLittle, core.SoundKilled, true},
		{core.KindBigMonster, core.KindPlayer, MsgHungry, core.SoundMonsters, true},
		{core.KindBabyMonster, core.KindPlayer, MsgLittle, core.SoundMonsters, true},
		{core.KindPlayer, core.KindBoulder, MsgUnknownMove, 0, false},
		{core.KindBalloon, core.KindPlayer, MsgUnknown, 0, false},
	}
	for _, tt := range tests {
		c := DeathCause(tt.mover, tt.occupant)
		if c.Text != tt.text {
			t.Errorf("%s into %s: expected %q, got %q", tt.mover, tt.occupant, tt.text, c.Text)
		}
		if c.HasSound != tt.hasSound || (tt.hasSound && c.Sound != tt.sound) {
			t.Errorf("%s into %s: expected sound %s/%v, got %s/%v", tt.mover, tt.occupant, tt.sound.Name(), tt.hasSound, c.Sound.Name(), c.HasSound)
		}
	}
}
