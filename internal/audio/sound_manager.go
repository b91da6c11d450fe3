// Package audio plays synthesized sound cues and a background loop through
// the system speaker. Every operation is a no-op until Initialize succeeds,
// so the game runs unchanged on machines without an audio device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/rocket-run/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player reacts to simulation cues. Platforms hold a Player and never care
// whether sound is actually available.
type Player interface {
	Play(kind core.CueKind)
	SetMusicPaused(paused bool)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(core.CueKind) {}
func (Nop) SetMusicPaused(bool) {}
func (Nop) Close() {}

// SoundManager mixes one-shot cue sounds over a looping background track.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize to open the speaker.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the background loop.
// Calling it again after success is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.music = &beep.Ctrl{Streamer: NewThrusterGenerator(sampleRate)}
	sm.mixer.Add(sm.music)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play starts the sound for a cue kind.
func (sm *SoundManager) Play(kind core.CueKind) {
	streamer := cueStreamer(kind)
	if streamer == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// SetMusicPaused pauses or resumes the background loop.
func (sm *SoundManager) SetMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = paused
	speaker.Unlock()
}

// Close silences everything. The speaker itself stays open for the process.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// cueStreamer returns a finite streamer for a cue, or nil for unknown kinds.
func cueStreamer(kind core.CueKind) beep.Streamer {
	switch kind {
	case core.CuePass:
		return beep.Take(sampleRate.N(60*time.Millisecond), NewSweepGenerator(sampleRate, 880, 1320, 0.2))
	case core.CueCrash:
		return beep.Take(sampleRate.N(300*time.Millisecond), NewExplosionGenerator(sampleRate, 1))
	case core.CueLevelUp:
		return beep.Take(sampleRate.N(480*time.Millisecond), NewArpeggioGenerator(sampleRate, []float64{523.25, 659.25, 783.99, 1046.5}, 120*time.Millisecond))
	case core.CueGameOver:
		return beep.Take(sampleRate.N(900*time.Millisecond), NewSweepGenerator(sampleRate, 440, 110, 0.3))
	default:
		return nil
	}
}

// Open returns a working SoundManager when enabled and the speaker opens,
// otherwise a Nop together with the reason.
func Open(enabled bool) (Player, error) {
	if !enabled {
		return Nop{}, nil
	}
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		return Nop{}, err
	}
	return sm, nil
}
