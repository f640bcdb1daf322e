package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/rockfall/core"
)

// drain streams s to the end and returns the number of frames and the peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected identical channels", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	total, peak := drain(osc)
	if total != rate.N(50*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(50*time.Millisecond), total)
	}
	if peak != 1.0 {
		t.Errorf("Expected square wave peak 1.0, got %f", peak)
	}
}

func TestSweepChangesPitch(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 500 * time.Millisecond

	crossings := func(s beep.Streamer) int {
		buf := make([][2]float64, rate.N(d))
		n, _ := s.Stream(buf)
		half := n / 2
		count := 0
		for i := half + 1; i < n; i++ {
			if (buf[i-1][0] < 0) != (buf[i][0] < 0) {
				count++
			}
		}
		return count
	}

	flat := crossings(NewOscillator(100, d, WaveSine, rate))
	rising := crossings(NewSweep(100, 400, d, WaveSine, rate))
	if rising <= flat {
		t.Errorf("Expected rising sweep to cross zero more often than a flat tone, got %d vs %d", rising, flat)
	}
}

// TestEnvelopeShaping verifies attack starts silent and the tail fades out
func TestEnvelopeShaping(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected first sample silent, got %f", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", mid)
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("Expected faded tail, got %f", last)
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, rate), 0)

	_, peak := drain(s)
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

// TestGetSoundEffect verifies every engine sound has a finite, audible effect
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	cfg.MasterVolume = 1

	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		if streamer == nil {
			t.Errorf("Expected effect for %s", s.Name())
			continue
		}
		total, peak := drain(streamer)
		if total == 0 || total > 8000 {
			t.Errorf("Expected %s to last between 0 and 1s, got %d samples", s.Name(), total)
		}
		if peak == 0 {
			t.Errorf("Expected %s to be audible", s.Name())
		}
	}

	if GetSoundEffect(core.SoundTypeCount, cfg) != nil {
		t.Error("Expected nil effect for unknown sound")
	}
}
