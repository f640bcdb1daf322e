package input

import (
	"sort"

	"github.com/lixenwraith/rockfall/core"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve YAML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":    {IntentQuit, core.DirNone},
	"confirm": {IntentConfirm, core.DirNone},
	"reload":  {IntentReload, core.DirNone},
	"mute":    {IntentMute, core.DirNone},

	"move_up":    {IntentMove, core.DirUp},
	"move_down":  {IntentMove, core.DirDown},
	"move_left":  {IntentMove, core.DirLeft},
	"move_right": {IntentMove, core.DirRight},
	"wait":       {IntentMove, core.DirNone},
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
