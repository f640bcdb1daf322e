package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/engine"
	"github.com/lixenwraith/rockfall/level"
)

const (
	hudRow       = 0
	boardTop     = 2 // screen row of the top ring row
	boardLeft    = 1 // screen column of the left ring column
	movesLowMark = 20
	ackHint      = "press enter..."
)

// sprite is the renderer's copy of one entity
type sprite struct {
	kind       core.Kind
	pos        core.Point
	appearance engine.Appearance
	visible    bool
}

// TerminalRenderer draws the board, HUD and message overlay to a tcell screen
// It implements engine.RenderSink and engine.MessageSink and keeps its own scene,
// rebuilt on every level load
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen

	sprites []sprite
	number  int
	title   string

	message  string
	followUp engine.FollowUp
}

// NewTerminalRenderer creates a renderer drawing to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Load rebuilds the scene from a freshly built world, usable as an engine.LoadFunc
func (r *TerminalRenderer) Load(l *level.Level, w *engine.World) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entities := w.Board().Entities()
	r.sprites = make([]sprite, len(entities))
	for i, e := range entities {
		r.sprites[i] = sprite{kind: e.Kind, pos: e.Pos, visible: e.Active}
	}
	r.number = l.Number
	r.title = l.Title
	r.message = ""
	r.followUp = engine.FollowUpNone
}

// OnEntityMoved implements engine.RenderSink
func (r *TerminalRenderer) OnEntityMoved(id, x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s := r.sprite(id); s != nil {
		s.pos = core.Point{X: x, Y: y}
		s.visible = true
	}
}

// OnEntityRemoved implements engine.RenderSink
func (r *TerminalRenderer) OnEntityRemoved(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s := r.sprite(id); s != nil {
		s.visible = false
	}
}

// OnAppearance implements engine.RenderSink
func (r *TerminalRenderer) OnAppearance(id int, a engine.Appearance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s := r.sprite(id); s != nil {
		s.appearance = a
	}
}

// OnMessage implements engine.MessageSink
func (r *TerminalRenderer) OnMessage(text string, followUp engine.FollowUp) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.message = text
	r.followUp = followUp
}

// Dismiss hides the message overlay
func (r *TerminalRenderer) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.message = ""
	r.followUp = engine.FollowUpNone
}

// Message returns the overlay text, empty when none is shown
func (r *TerminalRenderer) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

func (r *TerminalRenderer) sprite(id int) *sprite {
	if id < 0 || id >= len(r.sprites) {
		return nil
	}
	return &r.sprites[id]
}

// CellOf maps a board point to screen coordinates; row 1 of the board is drawn lowest
func CellOf(p core.Point) (col, row int) {
	return boardLeft + p.X, boardTop + constant.BoardHeight + 1 - p.Y
}

// Draw renders a full frame. w supplies the HUD counters and may be nil
func (r *TerminalRenderer) Draw(w *engine.World) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.fillBoard(base)
	r.drawSprites(base)
	r.drawHUD(w)
	if r.message != "" {
		r.drawOverlay()
	}
	r.screen.Show()
}

func (r *TerminalRenderer) fillBoard(style tcell.Style) {
	for y := 0; y <= constant.BoardHeight+1; y++ {
		for x := 0; x <= constant.BoardWidth+1; x++ {
			col, row := CellOf(core.Point{X: x, Y: y})
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawSprites paints in id order, so on a shared cell the highest id is on top
func (r *TerminalRenderer) drawSprites(base tcell.Style) {
	for _, s := range r.sprites {
		if !s.visible || s.kind == core.KindNone {
			continue
		}
		fg := GetKindColor(s.kind)
		switch {
		case s.appearance == engine.AppearancePlayerDead:
			fg = RgbPlayerDead
		case s.appearance == engine.AppearanceDiamond:
			fg = RgbDiamond
		}
		col, row := CellOf(s.pos)
		r.screen.SetContent(col, row, Glyph(s.kind, s.appearance), nil, base.Foreground(fg))
	}
}

func (r *TerminalRenderer) drawHUD(w *engine.World) {
	x := boardLeft
	x = r.drawText(x, hudRow, fmt.Sprintf(" LEVEL %d ", r.number),
		tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbHudBg))
	x = r.drawText(x+1, hudRow, r.title, tcell.StyleDefault)
	if w == nil {
		return
	}

	x = r.drawText(x+1, hudRow,
		fmt.Sprintf(" %c %d/%d ", kindGlyphs[core.KindDiamond], w.DiamondsCollected(), w.DiamondsTarget()),
		tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbDiamondsBg))

	moves := w.MovesRemaining()
	if moves < 0 {
		return
	}
	bg := RgbMovesBg
	if moves <= movesLowMark {
		bg = RgbMovesLowBg
	}
	r.drawText(x+1, hudRow, fmt.Sprintf(" MOVES %d ", moves),
		tcell.StyleDefault.Foreground(RgbStatusText).Background(bg))
}

// drawOverlay centers a two-line box over the board
func (r *TerminalRenderer) drawOverlay() {
	width := len([]rune(r.message))
	if n := len(ackHint); n > width {
		width = n
	}
	width += 4

	_, top := CellOf(core.Point{Y: constant.BoardHeight/2 + 2})
	left := boardLeft + (constant.BoardWidth+2-width)/2
	if left < 0 {
		left = 0
	}

	box := tcell.StyleDefault.Background(RgbOverlayBg)
	for row := top; row < top+4; row++ {
		for col := left; col < left+width; col++ {
			r.screen.SetContent(col, row, ' ', nil, box)
		}
	}
	r.drawText(left+2, top+1, r.message, box.Foreground(RgbOverlayText).Bold(true))
	r.drawText(left+2, top+2, ackHint, box.Foreground(RgbOverlayHint))
}

// drawText writes s from (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
