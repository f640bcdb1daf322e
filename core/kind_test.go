package core

import "testing"

func TestKindFromSymbol(t *testing.T) {
	tests := []struct {
		symbol rune
		want   Kind
		ok     bool
	}{
		{'@', KindPlayer, true},
		{'O', KindBoulder, true},
		{'\\', KindRightSlope, true},
		{'/', KindLeftSlope, true},
		{'A', KindPortalOut, true},
		{'-', KindNone, true},
		{' ', KindNone, true},
		{'z', KindNone, false},
	}

	for _, tt := range tests {
		got, ok := KindFromSymbol(tt.symbol)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KindFromSymbol(%q) = (%v, %v), expected (%v, %v)", tt.symbol, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	for k := KindPlayer; k < KindCount; k++ {
		got, ok := KindFromSymbol(k.Symbol())
		if !ok || got != k {
			t.Errorf("Expected symbol %q to map back to %v, got %v", k.Symbol(), k, got)
		}
	}
}

func TestHeading(t *testing.T) {
	if KindBoulder.Heading() != DirDown {
		t.Errorf("Expected boulder to fall down, got %v", KindBoulder.Heading())
	}
	if KindBalloon.Heading() != DirUp {
		t.Errorf("Expected balloon to rise, got %v", KindBalloon.Heading())
	}
	if KindPlayer.Heading() != DirNone {
		t.Errorf("Expected player to have no heading, got %v", KindPlayer.Heading())
	}
}

func TestApproachOf(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		want     Approach
	}{
		{"falling onto", Point{5, 6}, Point{5, 5}, ApproachTop},
		{"rising into", Point{5, 4}, Point{5, 5}, ApproachBottom},
		{"from the left", Point{4, 5}, Point{5, 5}, ApproachSide},
		{"from the right", Point{6, 5}, Point{5, 5}, ApproachSide},
	}
	for _, tt := range tests {
		if got := ApproachOf(tt.from, tt.to); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSoundByName(t *testing.T) {
	for s := SoundType(0); s < SoundTypeCount; s++ {
		got, ok := SoundByName(s.Name())
		if !ok || got != s {
			t.Errorf("Expected %q to resolve to %d, got %d", s.Name(), s, got)
		}
	}
	if _, ok := SoundByName("kazoo"); ok {
		t.Error("Expected unknown sound name to fail")
	}
}
