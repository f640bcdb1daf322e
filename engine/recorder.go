package engine

import "github.com/lixenwraith/rockfall/core"

// MoveRecord is one OnEntityMoved call
type MoveRecord struct {
	ID   int
	X, Y int
}

// AppearanceRecord is one OnAppearance call
type AppearanceRecord struct {
	ID         int
	Appearance Appearance
}

// MessageRecord is one OnMessage call
type MessageRecord struct {
	Text     string
	FollowUp FollowUp
}

// Recorder captures every sink call in order, for tests and headless runs
type Recorder struct {
	Moves       []MoveRecord
	Removed     []int
	Appearances []AppearanceRecord
	Sounds      []core.SoundType
	Messages    []MessageRecord
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Sinks wires the recorder into every collaborator slot
func (r *Recorder) Sinks() Sinks {
	return Sinks{Render: r, Audio: r, Message: r}
}

func (r *Recorder) OnEntityMoved(id, x, y int) {
	r.Moves = append(r.Moves, MoveRecord{ID: id, X: x, Y: y})
}

func (r *Recorder) OnEntityRemoved(id int) {
	r.Removed = append(r.Removed, id)
}

func (r *Recorder) OnAppearance(id int, a Appearance) {
	r.Appearances = append(r.Appearances, AppearanceRecord{ID: id, Appearance: a})
}

func (r *Recorder) OnSound(s core.SoundType) {
	r.Sounds = append(r.Sounds, s)
}

func (r *Recorder) OnMessage(text string, f FollowUp) {
	r.Messages = append(r.Messages, MessageRecord{Text: text, FollowUp: f})
}

// HasSound reports whether s was emitted
func (r *Recorder) HasSound(s core.SoundType) bool {
	for _, got := range r.Sounds {
		if got == s {
			return true
		}
	}
	return false
}

// LastMessage returns the most recent message, ok is false when none was sent
func (r *Recorder) LastMessage() (MessageRecord, bool) {
	if len(r.Messages) == 0 {
		return MessageRecord{}, false
	}
	return r.Messages[len(r.Messages)-1], true
}

// Reset forgets everything recorded so far
func (r *Recorder) Reset() {
	*r = Recorder{}
}
