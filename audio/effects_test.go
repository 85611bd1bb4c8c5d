package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/bug-snake/core"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not terminate within %d samples", limit)
	return total, peak
}

func TestEverySoundIsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	limit := beep.SampleRate(cfg.SampleRate).N(2 * time.Second)

	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			streamer := GetSoundEffect(s, cfg)
			if streamer == nil {
				t.Fatal("no streamer")
			}
			n, peak := drain(t, streamer, limit)
			if n == 0 {
				t.Error("empty sound")
			}
			if peak > 1.0 {
				t.Errorf("peak %f clips", peak)
			}
		})
	}

	if GetSoundEffect(core.SoundTypeCount, cfg) != nil {
		t.Error("unknown sound type returned a streamer")
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release not falling: %f then %f", buf[90][0], buf[99][0])
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	_, peak := drain(t, CreateEatSound(cfg), 1<<16)
	if peak != 0 {
		t.Errorf("muted mix peaked at %f", peak)
	}
}
