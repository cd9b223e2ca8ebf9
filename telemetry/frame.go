// Package telemetry records per-frame simulation metrics through OpenTelemetry
package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/labyrinth/event"
)

// FrameMetrics counts frames and simulation events
// Implements engine.FrameObserver
type FrameMetrics struct {
	frames   metric.Int64Counter
	contacts metric.Int64Counter
	restores metric.Int64Counter
	events   metric.Int64Counter
	delta    metric.Float64Histogram

	// Local totals for the status line
	frameCount   atomic.Int64
	contactCount atomic.Int64
	restoreCount atomic.Int64
}

// NewFrameMetrics creates the instruments on m
func NewFrameMetrics(m metric.Meter) (*FrameMetrics, error) {
	fm := &FrameMetrics{}
	var err error

	fm.frames, err = m.Int64Counter(
		"labyrinth.frames",
		metric.WithDescription("Simulation frames stepped"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	fm.contacts, err = m.Int64Counter(
		"labyrinth.wall_contacts",
		metric.WithDescription("Moves clamped by static geometry"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wall contact counter: %w", err)
	}

	fm.restores, err = m.Int64Counter(
		"labyrinth.transform_restores",
		metric.WithDescription("Non-finite transforms rolled back"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating restore counter: %w", err)
	}

	fm.events, err = m.Int64Counter(
		"labyrinth.events",
		metric.WithDescription("Simulation events by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating event counter: %w", err)
	}

	fm.delta, err = m.Float64Histogram(
		"labyrinth.frame_delta",
		metric.WithDescription("Simulated seconds per frame"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame delta histogram: %w", err)
	}

	return fm, nil
}

// ObserveFrame records one completed frame
func (fm *FrameMetrics) ObserveFrame(ctx context.Context, dt float32, events []event.GameEvent) {
	fm.frames.Add(ctx, 1)
	fm.frameCount.Add(1)
	fm.delta.Record(ctx, float64(dt))

	for _, ev := range events {
		fm.events.Add(ctx, 1, metric.WithAttributes(attribute.String("type", ev.Type.String())))
		switch ev.Type {
		case event.EventWallContact:
			fm.contacts.Add(ctx, 1)
			fm.contactCount.Add(1)
		case event.EventTransformRestored:
			fm.restores.Add(ctx, 1)
			fm.restoreCount.Add(1)
		}
	}
}

// Snapshot is a copy of the local totals
type Snapshot struct {
	Frames       int64
	WallContacts int64
	Restores     int64
}

// Totals returns the counts recorded so far
func (fm *FrameMetrics) Totals() Snapshot {
	return Snapshot{
		Frames:       fm.frameCount.Load(),
		WallContacts: fm.contactCount.Load(),
		Restores:     fm.restoreCount.Load(),
	}
}
