package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/labyrinth/event"
)

func TestFrameMetrics(t *testing.T) {
	fm, err := NewFrameMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	fm.ObserveFrame(ctx, 0.016, nil)
	fm.ObserveFrame(ctx, 0.016, []event.GameEvent{
		{Type: event.EventWallContact},
		{Type: event.EventCameraState},
		{Type: event.EventWallContact},
	})
	fm.ObserveFrame(ctx, 0, []event.GameEvent{{Type: event.EventTransformRestored}})

	assert.Equal(t, Snapshot{Frames: 3, WallContacts: 2, Restores: 1}, fm.Totals())
}

func TestGlobalMeter(t *testing.T) {
	fm, err := NewFrameMetrics(Meter())
	require.NoError(t, err)
	assert.NotPanics(t, func() { fm.ObserveFrame(context.Background(), 0.1, nil) })
}
