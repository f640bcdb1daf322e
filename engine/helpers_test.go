package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rockfall/board"
	"github.com/lixenwraith/rockfall/core"
)

type place struct {
	kind core.Kind
	x, y int
}

func at(kind core.Kind, x, y int) place {
	return place{kind: kind, x: x, y: y}
}

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}

// testWorld builds a strict world holding the given entities, ids follow argument order
func testWorld(t *testing.T, items ...place) (*World, *Recorder) {
	t.Helper()
	return testWorldOpts(t, Options{Strict: true}, items...)
}

func testWorldOpts(t *testing.T, opts Options, items ...place) (*World, *Recorder) {
	t.Helper()
	b := board.New()
	for _, it := range items {
		_, err := b.Add(it.kind, pt(it.x, it.y))
		require.NoError(t, err)
	}
	rec := NewRecorder()
	return NewWorld(b, opts, rec.Sinks()), rec
}

// settle ticks until the world is quiet
func settle(t *testing.T, w *World) {
	t.Helper()
	w.Settle(500)
	require.False(t, w.Busy(), "world still busy after settling")
}

// assertNoSharedCells checks that no two active entities other than baby monsters share a cell
func assertNoSharedCells(t *testing.T, w *World) {
	t.Helper()
	seen := make(map[core.Point]int)
	for _, e := range w.Board().Entities() {
		if !e.Active || e.Kind == core.KindBabyMonster {
			continue
		}
		if other, ok := seen[e.Pos]; ok {
			t.Errorf("Expected one entity at %v, got %d and %d", e.Pos, other, e.ID)
		}
		seen[e.Pos] = e.ID
	}
}
