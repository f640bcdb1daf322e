package core

// SoundType represents the sound events the engine emits
type SoundType int

const (
	SoundTeleport SoundType = iota // Player jumps through a portal
	SoundTick                      // Every accepted input
	SoundDiamond                   // Diamond collected
	SoundLandmine                  // Player walked into fire
	SoundArrow                     // Arrow launched from the queue
	SoundKilled                    // Player killed by a falling or flying object
	SoundBoulder                   // Boulder landed after falling
	SoundDirt                      // Dirt dug
	SoundMonsters                  // Player caught by a monster
	SoundExit1                     // Level complete, first layer
	SoundExit2                     // Level complete, second layer
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundTeleport: "teleport",
	SoundTick:     "tick",
	SoundDiamond:  "diamond",
	SoundLandmine: "landmine",
	SoundArrow:    "arrow",
	SoundKilled:   "killed",
	SoundBoulder:  "boulder",
	SoundDirt:     "dirt",
	SoundMonsters: "monsters",
	SoundExit1:    "exit1",
	SoundExit2:    "exit2",
}

// Name returns the event name used by audio configuration
func (s SoundType) Name() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundByName resolves an event name, ok is false for unknown names
func SoundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
