package audio

import (
	"testing"
	"time"

	"go-siege/internal/component"
	"go-siege/internal/defs"
	"go-siege/internal/interfaces"

	"github.com/gopxl/beep"
)

var _ interfaces.SignalSink = (*SoundSink)(nil)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if buf[i][ch] < -1 || buf[i][ch] > 1 {
					t.Fatalf("sample %d out of range: %f", total+i, buf[i][ch])
				}
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > int(sampleRate)*5 {
			t.Fatal("stream does not end")
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 220, 100*time.Millisecond, tt.wave, sampleRate)
			if got, want := drain(t, osc), sampleRate.N(100*time.Millisecond); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
			if osc.Err() != nil {
				t.Errorf("Err = %v", osc.Err())
			}
		})
	}
}

func TestDecayFades(t *testing.T) {
	d := NewDecay(NewOscillator(0, 0, time.Second, WaveSquare, sampleRate), 0, 10, sampleRate)
	buf := make([][2]float64, sampleRate.N(time.Second))
	n, _ := d.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d, want %d", n, len(buf))
	}
	if buf[0][0] != 1 {
		t.Errorf("first sample = %f, want 1", buf[0][0])
	}
	if last := buf[n-1][0]; last > 0.001 || last < -0.001 {
		t.Errorf("last sample = %f, want near silence", last)
	}
}

func TestEveryCueIsFinite(t *testing.T) {
	for c := CueShot; c <= CueLaunch; c++ {
		s := CueStream(c, 1)
		if s == nil {
			t.Fatalf("cue %d has no stream", c)
		}
		if drain(t, s) == 0 {
			t.Errorf("cue %d is empty", c)
		}
	}
	if CueStream(Cue(99), 1) != nil {
		t.Error("unknown cue produced a stream")
	}
}

func TestSinkWithoutDevice(t *testing.T) {
	s := NewSoundSink(0.5)
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("sink panicked without a device: %v", r)
		}
	}()

	s.OnShot(defs.TierStandard, false)
	s.OnShot(defs.TierStandard, true)
	s.OnDamage(component.Block{}, 0.5)
	s.OnDamage(component.Block{}, 1)
	s.OnPurchaseResult(defs.UpgradeDamage, false)
	s.OnPhaseChanged(component.PhasePreparing, component.PhaseActive)
	s.OnPhaseChanged(component.PhaseActive, component.PhaseFailed)
	s.Cleanup()

	checks := map[Cue]int{
		CueShot:     1,
		CueWeakShot: 1,
		CueImpact:   1,
		CueDenied:   1,
		CuePurchase: 0,
		CueLaunch:   1,
	}
	for c, want := range checks {
		if got := s.Played(c); got != want {
			t.Errorf("Played(%d) = %d, want %d", c, got, want)
		}
	}
}
