package main

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rockfall/audio"
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/engine"
	"github.com/lixenwraith/rockfall/input"
	"github.com/lixenwraith/rockfall/level"
	"github.com/lixenwraith/rockfall/render"
)

func screenFile(title string, top ...string) *fstest.MapFile {
	rows := make([]string, constant.BoardHeight)
	for i := range rows {
		if i < len(top) {
			rows[i] = top[i]
		} else {
			rows[i] = strings.Repeat(" ", constant.BoardWidth)
		}
	}
	return &fstest.MapFile{Data: []byte(strings.Join(rows, "\n") + "\n" + title + "\n0\n")}
}

func newTestGame(t *testing.T, fsys fstest.MapFS) *game {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	scr.SetSize(60, 24)
	t.Cleanup(scr.Fini)

	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = false

	renderer := render.NewTerminalRenderer(scr)
	session := engine.NewSession(level.NewFSSource(fsys, "test"), engine.Options{},
		engine.Sinks{Render: renderer, Message: renderer})
	session.OnLoad(renderer.Load)
	require.NoError(t, session.Start(1))

	return &game{
		screen:    scr,
		session:   session,
		scheduler: engine.NewClockScheduler(session, engine.NewMockTimeProvider(time.Unix(0, 0)), constant.TickInterval, nil),
		renderer:  renderer,
		machine:   input.NewMachine(nil, constant.InputDelay, constant.InputRepeatDelay),
		sound:     audio.NewSoundManager(cfg),
	}
}

// settle runs scheduler steps until the world is quiet
func settle(g *game) {
	for i := 0; i < 50; i++ {
		g.scheduler.Step()
	}
}

func playerPos(g *game) core.Point {
	var p core.Point
	g.session.View(func(_ *level.Level, w *engine.World) {
		p = w.Board().Player().Pos
	})
	return p
}

func TestGame_QuitKeys(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Quit", "@")})
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), time.Now()))
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), time.Now()))
	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), time.Now()))
}

func TestGame_MoveKey(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Walk", "@ ")})

	require.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), time.Now()))
	settle(g)
	assert.Equal(t, core.Point{X: 2, Y: 16}, playerPos(g))
}

func TestGame_ConfirmDismissesBlockedExit(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Locked", "@X*")})

	g.handleIntent(input.Intent{Type: input.IntentMove, Dir: core.DirRight})
	settle(g)
	require.True(t, g.held())
	require.NotEmpty(t, g.renderer.Message())

	g.handleIntent(input.Intent{Type: input.IntentConfirm})
	assert.False(t, g.held())
	assert.Empty(t, g.renderer.Message())
}

func TestGame_ConfirmAfterDeathReloads(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Burn", "@!")})

	g.handleIntent(input.Intent{Type: input.IntentMove, Dir: core.DirRight})
	settle(g)
	var dead bool
	g.session.View(func(_ *level.Level, w *engine.World) { dead = w.PlayerDead() })
	require.True(t, dead)

	g.handleIntent(input.Intent{Type: input.IntentConfirm})
	g.session.View(func(_ *level.Level, w *engine.World) { dead = w.PlayerDead() })
	assert.False(t, dead, "level restarted")
	assert.Empty(t, g.renderer.Message())
}

func TestGame_ConfirmAfterLastLevel(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Out", "@X")})

	g.handleIntent(input.Intent{Type: input.IntentMove, Dir: core.DirRight})
	settle(g)
	g.handleIntent(input.Intent{Type: input.IntentConfirm})

	assert.Equal(t, msgAllDone, g.renderer.Message())
	assert.Equal(t, 1, g.session.Number())
}

func TestGame_ConfirmIsStationaryMoveWhenFree(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Wait", "@", "", "O")})

	g.handleIntent(input.Intent{Type: input.IntentConfirm})
	settle(g)
	assert.Equal(t, core.Point{X: 1, Y: 16}, playerPos(g))
	assert.Empty(t, g.renderer.Message())
}

func TestGame_ReloadChanged(t *testing.T) {
	fsys := fstest.MapFS{"screen.1.txt": screenFile("Before", "@")}
	g := newTestGame(t, fsys)

	fsys["screen.1.txt"] = screenFile("After", " @")
	g.reloadChanged("/levels/screen.2.txt")
	assert.Equal(t, "Before", g.session.Level().Title, "other levels are ignored")

	g.reloadChanged("/levels/screen.1.txt")
	assert.Equal(t, "After", g.session.Level().Title)
	assert.Equal(t, core.Point{X: 2, Y: 16}, playerPos(g))
}

func TestGame_ReloadKeyAndMute(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Again", "@ ")})

	g.handleIntent(input.Intent{Type: input.IntentMove, Dir: core.DirRight})
	settle(g)
	require.Equal(t, core.Point{X: 2, Y: 16}, playerPos(g))

	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), time.Now())
	assert.Equal(t, core.Point{X: 1, Y: 16}, playerPos(g))

	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), time.Now())
	assert.True(t, g.sound.Muted())
}

func TestGame_Draw(t *testing.T) {
	g := newTestGame(t, fstest.MapFS{"screen.1.txt": screenFile("Shown", "@")})
	g.draw()

	col, row := render.CellOf(core.Point{X: 1, Y: 16})
	ch, _, _, _ := g.screen.GetContent(col, row)
	assert.Equal(t, '@', ch)
}
