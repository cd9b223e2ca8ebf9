package engine

import (
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/input"
)

// Resources holds singleton frame data, accessed via World.Resources
type Resources struct {
	Frame  *FrameResource
	Events *event.Queue
}

// NewResources creates empty frame resources
func NewResources() *Resources {
	return &Resources{
		Frame:  &FrameResource{},
		Events: event.NewQueue(),
	}
}

// FrameResource is the per-frame input and timing published by World.Step
// Intent is written by the InputSystem and read by later systems of the same frame
type FrameResource struct {
	Number   int64
	Delta    float32 // Seconds, >= 0
	Input    input.Snapshot
	Previous input.Snapshot
	Intent   input.MovementIntent
}

func (f *FrameResource) advance(s input.Snapshot, dt float32) {
	f.Number++
	f.Delta = dt
	f.Previous = f.Input
	f.Input = s
	f.Intent = input.MovementIntent{}
}

// JustPressed reports a key that is held this frame but was not held the previous frame
func (f *FrameResource) JustPressed(k input.Key) bool {
	return f.Input.Pressed(k) && !f.Previous.Pressed(k)
}
