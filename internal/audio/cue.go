// Package audio plays short feedback tones after a round ends.
package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	gain       = 0.25
)

// Cue identifies a feedback sound.
type Cue uint8

const (
	CueHit Cue = iota
	CueTimeout
)

type cueSpec struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue]cueSpec{
	CueHit:     {freq: 880, duration: 60 * time.Millisecond},
	CueTimeout: {freq: 220, duration: 180 * time.Millisecond},
}

// tone is a sine wave with a linear fade out.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{sr: sr, freq: freq, total: sr.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := gain * env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// Player mixes cues into the speaker. A Player that was never initialized is silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	log.Printf("[Audio] Speaker ready at %d Hz", sampleRate)
	return nil
}

// Play queues c. Unknown cues and a silent player are ignored.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	spec, ok := cues[c]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(newTone(sampleRate, spec.freq, spec.duration))
	speaker.Unlock()
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Clear()
	p.enabled = false
}
