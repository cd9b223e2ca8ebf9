package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/vmath"
)

func eventsOf(w *engine.World, typ event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.Resources.Events.Peek() {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func TestCollisionFreeMoveEmitsNothing(t *testing.T) {
	r := newTestRig(t)
	p := r.addPlayer(t, mgl32.Vec3{0, 0.5, 0}, 4, 0)

	r.world.Step(keys(input.KeyForward), 0.25)

	assert.InDelta(t, -1, r.position(p)[0], 1e-6)
	assert.Empty(t, eventsOf(r.world, event.EventWallContact))
	assert.Empty(t, eventsOf(r.world, event.EventDynamicContact))
}

func TestCollisionDynamicPairReportedOnce(t *testing.T) {
	r := newTestRig(t)
	p := r.addPlayer(t, mgl32.Vec3{0, 0.5, 0}, 4, 0)

	w := r.world
	other := w.CreateEntity()
	tr := component.NewTransform(mgl32.Vec3{0, 0.5, 0.6})
	col := component.SphereCollider(0.5)
	engine.Attach(w, other, tr)
	engine.Attach(w, other, component.PhysicsBodyComponent{Speed: 1})
	engine.Attach(w, other, col)
	require.NoError(t, r.collision.RegisterDynamic(other, col, tr))

	w.Step(input.Snapshot{}, 0.1)

	contacts := eventsOf(w, event.EventDynamicContact)
	require.Len(t, contacts, 1)
	payload, ok := contacts[0].Payload.(*event.DynamicContactPayload)
	require.True(t, ok)
	assert.Equal(t, p, payload.Entity)
	assert.Equal(t, other, payload.Other)

	// Advisory only: neither body is pushed apart
	assert.Equal(t, mgl32.Vec3{0, 0.5, 0}, r.position(p))
	assert.Equal(t, mgl32.Vec3{0, 0.5, 0.6}, r.position(other))
}

func TestCollisionRejectsNonFinitePosition(t *testing.T) {
	r := newTestRig(t)
	start := mgl32.Vec3{2, 0.5, -1}
	p := r.addPlayer(t, start, 4, 0)

	tr, _ := r.world.Components.Transform.Get(p)
	tr.Position[0] = float32(math.NaN())
	r.world.Components.Transform.Set(p, tr)

	r.world.Step(input.Snapshot{}, 0.1)

	assert.Equal(t, start, r.position(p))
	walls := eventsOf(r.world, event.EventWallContact)
	require.Len(t, walls, 1)
	payload := walls[0].Payload.(*event.WallContactPayload)
	assert.Equal(t, vmath.LockTranslation, payload.Blocked)
	assert.Empty(t, payload.Walls)
	assert.Equal(t, start, payload.Resolved)
}
