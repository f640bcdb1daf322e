package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides from start to end over the duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase at the current point of the glide
		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(start, end float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(start, end, d, wave, rate), d, attack, release, rate)
}

// Sound effect generators

func createTick(rate beep.SampleRate) beep.Streamer {
	return tone(constant.TickSoundFreq, constant.TickSoundFreq, WaveSquare,
		constant.TickSoundDuration, constant.TickSoundAttack, constant.TickSoundRelease, rate)
}

// createDiamond is a short bell
func createDiamond(rate beep.SampleRate) beep.Streamer {
	d := constant.DiamondSoundDuration
	// Fundamental (A5)
	fund := tone(880, 880, WaveSine, d, constant.DiamondSoundAttack, constant.DiamondSoundFundamentalRelease, rate)
	// Harmonic (Octave up)
	over := tone(1760, 1760, WaveSine, d, constant.DiamondSoundAttack, constant.DiamondSoundOvertoneRelease, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

func createDirt(rate beep.SampleRate) beep.Streamer {
	return tone(0, 0, WaveNoise, constant.DirtSoundDuration, constant.DirtSoundAttack, constant.DirtSoundRelease, rate)
}

func createArrow(rate beep.SampleRate) beep.Streamer {
	return tone(0, 0, WaveNoise, constant.ArrowSoundDuration, constant.ArrowSoundAttack, constant.ArrowSoundRelease, rate)
}

// createBoulder is a low thud with a short burst of grit
func createBoulder(rate beep.SampleRate) beep.Streamer {
	d := constant.BoulderSoundDuration
	thud := tone(constant.BoulderSoundFreq, constant.BoulderSoundFreq/2, WaveSine, d,
		constant.BoulderSoundAttack, constant.BoulderSoundRelease, rate)
	grit := tone(0, 0, WaveNoise, d/3, constant.BoulderSoundAttack, d/4, rate)
	return beep.Mix(newVolume(thud, 0.8), newVolume(grit, 0.2))
}

func createTeleport(rate beep.SampleRate) beep.Streamer {
	return tone(constant.TeleportStartFreq, constant.TeleportEndFreq, WaveSine, constant.TeleportSoundDuration,
		constant.TeleportSoundAttack, constant.TeleportSoundRelease, rate)
}

func createKilled(rate beep.SampleRate) beep.Streamer {
	return tone(constant.KilledStartFreq, constant.KilledEndFreq, WaveSaw, constant.KilledSoundDuration,
		constant.KilledSoundAttack, constant.KilledSoundRelease, rate)
}

// createLandmine is a noise blast over a rumble
func createLandmine(rate beep.SampleRate) beep.Streamer {
	d := constant.LandmineSoundDuration
	blast := tone(0, 0, WaveNoise, d, constant.LandmineSoundAttack, constant.LandmineSoundRelease, rate)
	rumble := tone(constant.LandmineRumbleFreq, constant.LandmineRumbleFreq/2, WaveSine, d,
		constant.LandmineSoundAttack, constant.LandmineSoundRelease, rate)
	return beep.Mix(newVolume(blast, 0.6), newVolume(rumble, 0.4))
}

func createMonsters(rate beep.SampleRate) beep.Streamer {
	return tone(constant.MonstersSoundFreq, constant.MonstersSoundFreq*0.8, WaveSquare, constant.MonstersSoundDuration,
		constant.MonstersSoundAttack, constant.MonstersSoundRelease, rate)
}

// createExit1 is a rising arpeggio (C6 E6 G6 C7)
func createExit1(rate beep.SampleRate) beep.Streamer {
	notes := []float64{1046.50, 1318.51, 1567.98, 2093.00}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = tone(f, f, WaveSquare, constant.ExitNoteDuration, constant.ExitNoteAttack, constant.ExitNoteRelease, rate)
	}
	return beep.Seq(seq...)
}

// createExit2 is a sustained chord under the arpeggio
func createExit2(rate beep.SampleRate) beep.Streamer {
	d := constant.ExitChordDuration
	var parts []beep.Streamer
	for _, f := range []float64{261.63, 329.63, 392.00} {
		parts = append(parts, newVolume(tone(f, f, WaveSine, d, constant.ExitNoteAttack, constant.ExitChordRelease, rate), 0.33))
	}
	return beep.Mix(parts...)
}

var recipes = map[core.SoundType]func(beep.SampleRate) beep.Streamer{
	core.SoundTeleport: createTeleport,
	core.SoundTick:     createTick,
	core.SoundDiamond:  createDiamond,
	core.SoundLandmine: createLandmine,
	core.SoundArrow:    createArrow,
	core.SoundKilled:   createKilled,
	core.SoundBoulder:  createBoulder,
	core.SoundDirt:     createDirt,
	core.SoundMonsters: createMonsters,
	core.SoundExit1:    createExit1,
	core.SoundExit2:    createExit2,
}

// GetSoundEffect returns a fresh streamer for the sound scaled to its configured volume
// nil for unknown sounds
func GetSoundEffect(s core.SoundType, cfg *AudioConfig) beep.Streamer {
	recipe, ok := recipes[s]
	if !ok {
		return nil
	}
	return newVolume(recipe(beep.SampleRate(cfg.SampleRate)), cfg.Volume(s))
}
