package engine

import "github.com/lixenwraith/rockfall/core"

// Appearance is a visual state change that does not alter an entity's kind on screen by itself
type Appearance uint8

const (
	AppearanceNormal Appearance = iota
	AppearancePlayerLeft
	AppearancePlayerRight
	AppearancePlayerUp
	AppearancePlayerDown
	AppearancePlayerDead
	AppearanceDiamond // caged baby monster
)

var appearanceNames = [...]string{
	AppearanceNormal:      "normal",
	AppearancePlayerLeft:  "player left",
	AppearancePlayerRight: "player right",
	AppearancePlayerUp:    "player up",
	AppearancePlayerDown:  "player down",
	AppearancePlayerDead:  "player dead",
	AppearanceDiamond:     "diamond",
}

func (a Appearance) String() string {
	if int(a) >= len(appearanceNames) {
		return "invalid"
	}
	return appearanceNames[a]
}

// FollowUp is what acknowledging a message leads to
type FollowUp uint8

const (
	FollowUpNone FollowUp = iota
	FollowUpReload
	FollowUpDismiss
	FollowUpNextLevel
)

func (f FollowUp) String() string {
	switch f {
	case FollowUpReload:
		return "reload"
	case FollowUpDismiss:
		return "dismiss"
	case FollowUpNextLevel:
		return "next level"
	}
	return "none"
}

// RenderSink receives position and appearance changes
type RenderSink interface {
	OnEntityMoved(id, x, y int)
	OnEntityRemoved(id int)
	OnAppearance(id int, a Appearance)
}

// AudioSink receives sound events
type AudioSink interface {
	OnSound(s core.SoundType)
}

// MessageSink receives player-facing messages; input stays held until acknowledged
type MessageSink interface {
	OnMessage(text string, followUp FollowUp)
}

// Sinks bundles the collaborators a world reports to, nil members are ignored
type Sinks struct {
	Render  RenderSink
	Audio   AudioSink
	Message MessageSink
}

func (s Sinks) withDefaults() Sinks {
	if s.Render == nil {
		s.Render = Nop{}
	}
	if s.Audio == nil {
		s.Audio = Nop{}
	}
	if s.Message == nil {
		s.Message = Nop{}
	}
	return s
}

// Nop discards every notification
type Nop struct{}

func (Nop) OnEntityMoved(int, int, int) {}
func (Nop) OnEntityRemoved(int) {}
func (Nop) OnAppearance(int, Appearance) {}
func (Nop) OnSound(core.SoundType) {}
func (Nop) OnMessage(string, FollowUp) {}
