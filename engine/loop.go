package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/parameter"
)

// FrameObserver receives every completed frame's delta and drained events
type FrameObserver interface {
	ObserveFrame(ctx context.Context, dt float32, events []event.GameEvent)
}

// Pauser is implemented by clocks that can freeze time
type Pauser interface {
	Toggle() bool
}

// LoopOptions wires the loop's collaborators
type LoopOptions struct {
	Clock     Clock
	Device    input.Device
	Observer  FrameObserver // Optional
	Logger    zerolog.Logger
	FrameRate int // Frames per second, 0 uses the default
}

// Loop drives World.Step from a clock and an input device, one step per frame
type Loop struct {
	world    *World
	clock    Clock
	device   input.Device
	observer FrameObserver
	logger   zerolog.Logger
	interval time.Duration
	prevKeys input.KeySet
}

// NewLoop creates a frame loop for w
func NewLoop(w *World, opts LoopOptions) *Loop {
	rate := opts.FrameRate
	if rate <= 0 {
		rate = parameter.DefaultFrameRate
	}
	device := opts.Device
	if device == nil {
		device = input.StaticDevice{}
	}
	return &Loop{
		world:    w,
		clock:    opts.Clock,
		device:   device,
		observer: opts.Observer,
		logger:   opts.Logger,
		interval: time.Second / time.Duration(rate),
	}
}

// RunFrame polls input, advances the clock and steps the world once
// Returns true when the quit key is held
func (l *Loop) RunFrame(ctx context.Context) bool {
	snap := l.device.Snapshot()
	pressed := snap.Keys &^ l.prevKeys
	l.prevKeys = snap.Keys

	if snap.Pressed(input.KeyQuit) {
		return true
	}

	if pressed.Has(input.KeyPause) {
		if p, ok := l.clock.(Pauser); ok {
			paused := p.Toggle()
			l.logger.Info().Bool("paused", paused).Msg("pause toggled")
		}
	}

	dt := l.clock.Tick()
	l.world.Step(snap, dt)

	events := l.world.Resources.Events.Consume()
	for _, ev := range events {
		if ev.Type == event.EventGoalReached {
			l.logger.Info().
				Uint64("entity", uint64(ev.Source())).
				Int64("frame", ev.Frame).
				Msg("maze exit reached")
		}
	}
	if l.observer != nil {
		l.observer.ObserveFrame(ctx, dt, events)
	}
	return false
}

// Run steps the world at the configured frame rate until ctx is done or quit is requested
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info().Dur("interval", l.interval).Msg("simulation loop started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if l.RunFrame(ctx) {
				l.logger.Info().Int64("frames", l.world.Resources.Frame.Number).Msg("quit requested")
				return nil
			}
		}
	}
}
