package engine

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/level"
	"github.com/lixenwraith/rockfall/status"
)

// LoadFunc is told about every level a session starts, before its first tick
type LoadFunc func(l *level.Level, w *World)

// Session plays a sequence of levels from a source
// All access to the live world goes through the session lock
type Session struct {
	mu sync.Mutex

	src    level.Source
	opts   Options
	sinks  Sinks
	onLoad LoadFunc

	number int
	lvl    *level.Level
	world  *World

	statLoads  *atomic.Int64
	statNumber *atomic.Int64
	statTitle  *status.AtomicString
}

// NewSession creates a session without a level, call Start before ticking
func NewSession(src level.Source, opts Options, sinks Sinks) *Session {
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	return &Session{
		src:        src,
		opts:       opts,
		sinks:      sinks,
		statLoads:  opts.Status.Ints.Get(status.KeyLevelLoads),
		statNumber: opts.Status.Ints.Get(status.KeyLevelNumber),
		statTitle:  opts.Status.Strings.Get(status.KeyLevelTitle),
	}
}

// OnLoad registers fn to run whenever a level starts
func (s *Session) OnLoad(fn LoadFunc) {
	s.mu.Lock()
	s.onLoad = fn
	s.mu.Unlock()
}

// RunSafe runs fn while holding the session lock
func (s *Session) RunSafe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Start loads level n and makes it current
func (s *Session) Start(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(n)
}

// Reload restarts the current level from its source
func (s *Session) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(s.number)
}

// Next advances to the following level
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(s.number + 1)
}

// Acknowledge closes the pending message and carries out what it leads to
func (s *Session) Acknowledge() (FollowUp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world == nil {
		return FollowUpNone, nil
	}

	f := s.world.Acknowledge()
	switch f {
	case FollowUpReload:
		return f, s.load(s.number)
	case FollowUpNextLevel:
		return f, s.load(s.number + 1)
	}
	return f, nil
}

// Submit forwards a player intent to the current world
func (s *Session) Submit(dir core.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world == nil {
		return ErrDead
	}
	return s.world.SubmitIntent(dir)
}

// Tick advances the current world by one step
func (s *Session) Tick() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world == nil {
		return PhaseIdle
	}
	return s.world.Tick()
}

// World returns the live world; callers outside RunSafe must treat it as read-only
func (s *Session) World() *World {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world
}

// Level returns the parsed level being played
func (s *Session) Level() *level.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lvl
}

// Number returns the current level number
func (s *Session) Number() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.number
}

// load replaces the world, the caller holds the lock
func (s *Session) load(n int) error {
	l, err := s.src.Load(n)
	if err != nil {
		return err
	}
	b, err := level.Build(l)
	if err != nil {
		return fmt.Errorf("level %d: %w", n, err)
	}

	opts := s.opts
	opts.Moves = l.Budget()
	w := NewWorld(b, opts, s.sinks)

	s.number = n
	s.lvl = l
	s.world = w
	s.statLoads.Add(1)
	s.statNumber.Store(int64(n))
	s.statTitle.Store(l.Title)
	log.Printf("Level %d loaded: %q, %d diamonds to collect", n, l.Title, w.DiamondsTarget())

	if s.onLoad != nil {
		s.onLoad(l, w)
	}
	return nil
}

// View runs fn with the current level and world while holding the session lock
// Both are nil before the first successful Start
func (s *Session) View(fn func(l *level.Level, w *World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.lvl, s.world)
}
