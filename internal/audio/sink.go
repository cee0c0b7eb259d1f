// internal/audio/sink.go
package audio

import (
	"log"
	"sync"
	"time"

	"go-siege/internal/component"
	"go-siege/internal/defs"
	"go-siege/internal/interfaces"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundSink plays a synthesised cue for game signals. It is safe to use
// without an audio device: until Initialize succeeds every cue is dropped.
type SoundSink struct {
	interfaces.NopSink

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64

	// played counts cues per kind, including dropped ones.
	played map[Cue]int
}

func NewSoundSink(volume float64) *SoundSink {
	return &SoundSink{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (s *SoundSink) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (s *SoundSink) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func (s *SoundSink) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

func (s *SoundSink) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Played returns how many times c was requested.
func (s *SoundSink) Played(c Cue) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played[c]
}

func (s *SoundSink) play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played[c]++
	if !s.initialized || s.muted {
		return
	}
	stream := CueStream(c, s.volume)
	if stream == nil {
		log.Printf("SoundSink: no stream for cue %d", c)
		return
	}
	speaker.Lock()
	s.mixer.Add(stream)
	speaker.Unlock()
}

func (s *SoundSink) OnDamage(_ component.Block, damagePercent float64) {
	if damagePercent < 1 {
		s.play(CueImpact)
	}
}

func (s *SoundSink) OnBlockDestroyed(component.Block) { s.play(CueBreak) }

func (s *SoundSink) OnObjectiveDestroyed(_ component.Position) { s.play(CueObjective) }

func (s *SoundSink) OnLevelFailed() { s.play(CueFail) }

func (s *SoundSink) OnTick(int) { s.play(CueTick) }

func (s *SoundSink) OnPurchaseResult(_ defs.UpgradeID, success bool) {
	if success {
		s.play(CuePurchase)
		return
	}
	s.play(CueDenied)
}

func (s *SoundSink) OnShot(_ defs.Tier, weak bool) {
	if weak {
		s.play(CueWeakShot)
		return
	}
	s.play(CueShot)
}

func (s *SoundSink) OnPlayerHit(int, int) { s.play(CueHit) }

func (s *SoundSink) OnPhaseChanged(_, to component.Phase) {
	if to == component.PhaseActive {
		s.play(CueLaunch)
	}
}
