package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume, 0.0-1.0
	AudioMasterVolume = 0.5
)

// Tick Sound
const (
	TickSoundDuration = 15 * time.Millisecond
	TickSoundAttack   = 1 * time.Millisecond
	TickSoundRelease  = 8 * time.Millisecond
	TickSoundFreq     = 1500.0
)

// Diamond Sound (bell)
const (
	DiamondSoundDuration           = 400 * time.Millisecond
	DiamondSoundAttack             = 5 * time.Millisecond
	DiamondSoundFundamentalRelease = 350 * time.Millisecond
	DiamondSoundOvertoneRelease    = 150 * time.Millisecond
)

// Dirt Sound
const (
	DirtSoundDuration = 40 * time.Millisecond
	DirtSoundAttack   = 2 * time.Millisecond
	DirtSoundRelease  = 30 * time.Millisecond
)

// Arrow Sound (whoosh)
const (
	ArrowSoundDuration = 200 * time.Millisecond
	ArrowSoundAttack   = 60 * time.Millisecond
	ArrowSoundRelease  = 120 * time.Millisecond
)

// Boulder Landing Sound
const (
	BoulderSoundDuration = 120 * time.Millisecond
	BoulderSoundAttack   = 2 * time.Millisecond
	BoulderSoundRelease  = 100 * time.Millisecond
	BoulderSoundFreq     = 60.0
)

// Teleport Sound (rising sweep)
const (
	TeleportSoundDuration = 350 * time.Millisecond
	TeleportSoundAttack   = 20 * time.Millisecond
	TeleportSoundRelease  = 100 * time.Millisecond
	TeleportStartFreq     = 300.0
	TeleportEndFreq       = 1200.0
)

// Killed Sound (falling sweep)
const (
	KilledSoundDuration = 500 * time.Millisecond
	KilledSoundAttack   = 5 * time.Millisecond
	KilledSoundRelease  = 200 * time.Millisecond
	KilledStartFreq     = 400.0
	KilledEndFreq       = 80.0
)

// Landmine Sound (explosion)
const (
	LandmineSoundDuration = 500 * time.Millisecond
	LandmineSoundAttack   = 2 * time.Millisecond
	LandmineSoundRelease  = 400 * time.Millisecond
	LandmineRumbleFreq    = 45.0
)

// Monsters Sound (growl)
const (
	MonstersSoundDuration = 400 * time.Millisecond
	MonstersSoundAttack   = 30 * time.Millisecond
	MonstersSoundRelease  = 150 * time.Millisecond
	MonstersSoundFreq     = 90.0
)

// Exit Sounds (two layers played together)
const (
	ExitNoteDuration  = 120 * time.Millisecond
	ExitNoteAttack    = 5 * time.Millisecond
	ExitNoteRelease   = 60 * time.Millisecond
	ExitChordDuration = 600 * time.Millisecond
	ExitChordRelease  = 450 * time.Millisecond
)
