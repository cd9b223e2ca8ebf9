package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/labyrinth/parameter"
)

// Player mixes short cues onto the system speaker
// Zero value and nil are silent; PlayBump never blocks the frame
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	device      bool // mixer is owned by the speaker goroutine

	muted  atomic.Bool
	played atomic.Uint64
}

// NewPlayer creates an unopened player at the configured sample rate
func NewPlayer() *Player {
	return &Player{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Open initializes the speaker and starts the mixer
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.device = true
	return nil
}

// Close drops queued cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.device {
		speaker.Clear()
		speaker.Close()
	}
	p.initialized = false
	p.device = false
}

// SetMuted suppresses cues without closing the device
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.muted.Store(muted)
}

// Played returns the number of cues queued since creation
func (p *Player) Played() uint64 {
	if p == nil {
		return 0
	}
	return p.played.Load()
}

// PlayBump queues the wall contact cue
func (p *Player) PlayBump() {
	p.play(func(rate beep.SampleRate) beep.Streamer {
		return BumpSound(parameter.BumpFrequency, parameter.BumpDuration, rate)
	})
}

func (p *Player) play(build func(beep.SampleRate) beep.Streamer) {
	if p == nil || p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s := build(p.rate)
	if p.device {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
	p.played.Add(1)
}
