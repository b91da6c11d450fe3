package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator glides a sine tone from one frequency to another over
// its envelope, which decays to silence after one second.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	gain     float64
	phase    float64
	pos      int
}

// NewSweepGenerator creates a frequency sweep.
func NewSweepGenerator(sr beep.SampleRate, from, to, gain float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, gain: gain}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t, 1)

		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Min(t/0.005, 1) * (1 - progress)
		sample := g.gain * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates decaying noise over a low rumble.
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewExplosionGenerator creates an explosion generator. The seed only
// changes the noise texture.
func NewExplosionGenerator(sr beep.SampleRate, seed int64) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, seed: seed}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*60*t)
		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a sequence of notes, each for a fixed duration,
// holding the last one.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

// NewArpeggioGenerator creates an arpeggio over notes (Hz).
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, noteLen time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:      sr,
		notes:   notes,
		noteLen: max(sr.N(noteLen), 1),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		idx := min(g.pos/g.noteLen, len(g.notes)-1)
		inNote := g.pos % g.noteLen
		t := float64(g.pos) / float64(g.sr)

		// Square-ish tone: fundamental plus a soft third harmonic
		freq := g.notes[idx]
		tone := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(2*math.Pi*3*freq*t)
		envelope := 1 - float64(inNote)/float64(g.noteLen)
		sample := 0.15 * envelope * tone

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// ThrusterGenerator is the background loop: a pulsing low engine hum that
// never ends.
type ThrusterGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
}

// NewThrusterGenerator creates the engine hum with an 800ms pulse.
func NewThrusterGenerator(sr beep.SampleRate) *ThrusterGenerator {
	return &ThrusterGenerator{
		sr:     sr,
		period: sr.N(800 * time.Millisecond),
	}
}

func (g *ThrusterGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		cycle := float64(g.pos%g.period) / float64(g.period)

		pulse := 0.5 + 0.5*math.Cos(2*math.Pi*cycle)
		hum := math.Sin(2*math.Pi*55*t) + 0.5*math.Sin(2*math.Pi*82.5*t)
		sample := 0.05 * (0.6 + 0.4*pulse) * hum

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThrusterGenerator) Err() error {
	return nil
}
