package main

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockfall/audio"
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/engine"
	"github.com/lixenwraith/rockfall/input"
	"github.com/lixenwraith/rockfall/level"
	"github.com/lixenwraith/rockfall/render"
)

const msgAllDone = "Well done, that was the last level!"

// game is the terminal front-end: it turns key events into session calls and
// redraws on scheduler ticks
type game struct {
	screen    tcell.Screen
	session   *engine.Session
	scheduler *engine.ClockScheduler
	renderer  *render.TerminalRenderer
	machine   *input.Machine
	sound     *audio.SoundManager
}

// handleEvent processes one terminal event and reports false when the player quits
func (g *game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		in, ok := g.machine.Handle(ev, now)
		if !ok {
			return true
		}
		return g.handleIntent(in)
	}
	return true
}

func (g *game) handleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentMute:
		log.Printf("Sound muted: %v", g.sound.ToggleMute())

	case input.IntentReload:
		if err := g.session.Reload(); err != nil {
			log.Printf("Reload failed: %v", err)
		}

	case input.IntentConfirm:
		if g.held() {
			g.acknowledge()
			break
		}
		g.scheduler.Submit(core.DirNone)

	case input.IntentMove:
		g.scheduler.Submit(in.Dir)
	}
	return true
}

func (g *game) held() bool {
	var held bool
	g.session.View(func(_ *level.Level, w *engine.World) {
		held = w != nil && w.Held()
	})
	return held
}

func (g *game) acknowledge() {
	f, err := g.session.Acknowledge()
	switch {
	case errors.Is(err, level.ErrNotFound) && f == engine.FollowUpNextLevel:
		g.renderer.OnMessage(msgAllDone, engine.FollowUpNone)
	case err != nil:
		log.Printf("Acknowledge %s failed: %v", f, err)
	case f == engine.FollowUpDismiss:
		g.renderer.Dismiss()
	}
}

// reloadChanged restarts the current level when its file changed on disk
func (g *game) reloadChanged(path string) {
	n, ok := level.NumberFromPath(path)
	if !ok || n != g.session.Number() {
		return
	}
	if err := g.session.Reload(); err != nil {
		log.Printf("Level %d changed but failed to load: %v", n, err)
		return
	}
	log.Printf("Level %d reloaded from %s", n, path)
}

func (g *game) draw() {
	g.session.View(func(_ *level.Level, w *engine.World) {
		g.renderer.Draw(w)
	})
}

// run is the main loop; it returns when the player quits or the screen closes
func (g *game) run(changes <-chan string) {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(constant.FrameInterval)
	defer frameTicker.Stop()

	g.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev, time.Now()) {
				return
			}
		case path, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			g.reloadChanged(path)
		case <-g.scheduler.Frames():
			g.draw()
		case <-frameTicker.C:
			g.draw()
		}
	}
}
