package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockfall/core"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Dir    core.Direction
}

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable keys
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentQuit, core.DirNone},
			tcell.KeyEscape: {IntentQuit, core.DirNone},
			tcell.KeyEnter:  {IntentConfirm, core.DirNone},
			tcell.KeyUp:     {IntentMove, core.DirUp},
			tcell.KeyDown:   {IntentMove, core.DirDown},
			tcell.KeyLeft:   {IntentMove, core.DirLeft},
			tcell.KeyRight:  {IntentMove, core.DirRight},
		},

		Runes: map[rune]KeyEntry{
			'h': {IntentMove, core.DirLeft},
			'j': {IntentMove, core.DirDown},
			'k': {IntentMove, core.DirUp},
			'l': {IntentMove, core.DirRight},
			'.': {IntentConfirm, core.DirNone},
			' ': {IntentReload, core.DirNone},
			'q': {IntentQuit, core.DirNone},
			'm': {IntentMute, core.DirNone},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event, ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
