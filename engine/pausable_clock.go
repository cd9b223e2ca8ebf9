package engine

import (
	"time"

	"github.com/lixenwraith/labyrinth/parameter"
)

// Clock supplies per-frame elapsed time in seconds, always >= 0
type Clock interface {
	Tick() float32
}

// TimeProvider abstracts the wall clock so PausableClock can be driven in tests
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// PausableClock measures real elapsed time between ticks, frozen while paused
type PausableClock struct {
	provider TimeProvider
	last     time.Time
	paused   bool
	maxDelta time.Duration
}

// NewPausableClock creates a clock on the system time
func NewPausableClock() *PausableClock {
	return NewPausableClockWith(systemTime{})
}

// NewPausableClockWith creates a clock on a custom time provider
func NewPausableClockWith(p TimeProvider) *PausableClock {
	return &PausableClock{
		provider: p,
		last:     p.Now(),
		maxDelta: parameter.MaxFrameDelta,
	}
}

// Tick returns seconds since the previous tick, 0 while paused
// A single delta is capped at MaxFrameDelta
func (pc *PausableClock) Tick() float32 {
	now := pc.provider.Now()
	elapsed := now.Sub(pc.last)
	pc.last = now

	if pc.paused || elapsed < 0 {
		return 0
	}
	if elapsed > pc.maxDelta {
		elapsed = pc.maxDelta
	}
	return float32(elapsed.Seconds())
}

// Pause stops time advancement
func (pc *PausableClock) Pause() {
	pc.paused = true
}

// Resume continues time advancement without counting the paused span
func (pc *PausableClock) Resume() {
	if pc.paused {
		pc.paused = false
		pc.last = pc.provider.Now()
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// ManualClock returns scripted deltas, for tests and replays
type ManualClock struct {
	Deltas []float32
	next   int
}

// Tick returns the next scripted delta, repeating the last one when exhausted
func (m *ManualClock) Tick() float32 {
	if len(m.Deltas) == 0 {
		return 0
	}
	if m.next >= len(m.Deltas) {
		return m.Deltas[len(m.Deltas)-1]
	}
	d := m.Deltas[m.next]
	m.next++
	return d
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}
