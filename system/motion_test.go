package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/vmath"
)

func TestForwardScenario(t *testing.T) {
	r := newTestRig(t)
	p := r.addPlayer(t, mgl32.Vec3{0, 0, 0}, 9, 0)

	r.world.Step(keys(input.KeyForward), 0.1)

	pos := r.position(p)
	assert.InDelta(t, -0.9, pos[0], 1e-6)
	assert.Equal(t, float32(0), pos[1])
	assert.Equal(t, float32(0), pos[2])
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []input.Key
		want mgl32.Vec3
	}{
		{"none", nil, mgl32.Vec3{}},
		{"forward", []input.Key{input.KeyForward}, mgl32.Vec3{-1, 0, 0}},
		{"back", []input.Key{input.KeyBack}, mgl32.Vec3{1, 0, 0}},
		{"left", []input.Key{input.KeyLeft}, mgl32.Vec3{0, 0, 1}},
		{"right", []input.Key{input.KeyRight}, mgl32.Vec3{0, 0, -1}},
		{"forward and back cancel", []input.Key{input.KeyForward, input.KeyBack}, mgl32.Vec3{}},
		{"left and right cancel", []input.Key{input.KeyLeft, input.KeyRight}, mgl32.Vec3{}},
		{"diagonal not normalized", []input.Key{input.KeyForward, input.KeyRight}, mgl32.Vec3{-1, 0, -1}},
		{"all four", []input.Key{input.KeyForward, input.KeyBack, input.KeyLeft, input.KeyRight}, mgl32.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			p := r.addPlayer(t, mgl32.Vec3{}, 2, vmath.Axes(vmath.TranslateY))
			r.world.Step(keys(tt.keys...), 0.5)
			assert.Equal(t, tt.want, r.position(p))
		})
	}
}

func TestZeroDeltaIsIdempotent(t *testing.T) {
	r := newTestRig(t)
	start := mgl32.Vec3{1.25, 0.5, -3.75}
	p := r.addPlayer(t, start, 9, 0)

	for i := 0; i < 5; i++ {
		r.world.Step(keys(input.KeyForward, input.KeyLeft), 0)
	}
	assert.Equal(t, start, r.position(p))
}

func TestNegativeDeltaTreatedAsZero(t *testing.T) {
	r := newTestRig(t)
	p := r.addPlayer(t, mgl32.Vec3{}, 9, 0)

	r.world.Step(keys(input.KeyForward), -1)
	assert.Equal(t, mgl32.Vec3{}, r.position(p))
	assert.Equal(t, float32(0), r.world.Resources.Frame.Delta)
}

func TestLockedAxisNeverChanges(t *testing.T) {
	r := newTestRig(t)
	p := r.addPlayer(t, mgl32.Vec3{3, 0.5, 3}, 4, vmath.Axes(vmath.TranslateX, vmath.TranslateY))

	r.world.Step(keys(input.KeyForward, input.KeyLeft), 0.25)

	pos := r.position(p)
	assert.Equal(t, float32(3), pos[0])
	assert.Equal(t, float32(0.5), pos[1])
	assert.Equal(t, float32(4), pos[2])
}

func TestPlayerStopsAtWall(t *testing.T) {
	r := newTestRig(t)
	r.addStaticBox(t, mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{50, 0.5, 50})
	wall := r.addStaticBox(t, mgl32.Vec3{-6, 2, 0}, mgl32.Vec3{0.5, 2, 5})
	p := r.addPlayer(t, mgl32.Vec3{-4.8, 0.5, 0}, 5, vmath.Axes(vmath.TranslateY))

	// Displacement (-0.5, 0, 0.5): 0.3 past the wall face on X
	r.world.Step(keys(input.KeyForward, input.KeyLeft), 0.1)

	pos := r.position(p)
	assert.Equal(t, float32(-5.0), pos[0])
	assert.InDelta(t, 0.5, pos[2], 1e-6)

	events := r.world.Resources.Events.Consume()
	var contact *event.WallContactPayload
	for _, ev := range events {
		if ev.Type == event.EventWallContact {
			contact = ev.Payload.(*event.WallContactPayload)
		}
	}
	if assert.NotNil(t, contact) {
		assert.Equal(t, p, contact.Entity)
		assert.Contains(t, contact.Walls, wall)
		assert.True(t, contact.Blocked.Has(vmath.TranslateX))
		assert.InDelta(t, -5.3, contact.Proposed[0], 1e-6)
	}

	// Holding the keys keeps the player on the face while it slides
	for i := 0; i < 5; i++ {
		r.world.Step(keys(input.KeyForward, input.KeyLeft), 0.1)
		assert.Equal(t, float32(-5.0), r.position(p)[0])
	}
	assert.InDelta(t, 3.0, r.position(p)[2], 1e-5)
}

func TestDeterministicReplay(t *testing.T) {
	run := func() mgl32.Vec3 {
		r := newTestRig(t)
		r.addStaticBox(t, mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{50, 0.5, 50})
		r.addStaticBox(t, mgl32.Vec3{-3, 1, 0}, mgl32.Vec3{0.5, 1, 2})
		p := r.addPlayer(t, mgl32.Vec3{0, 0.5, 0}, 9, vmath.Axes(vmath.TranslateY))
		seq := []input.Snapshot{
			keys(input.KeyForward),
			keys(input.KeyForward, input.KeyLeft),
			keys(input.KeyRight),
			keys(input.KeyBack, input.KeyRight),
		}
		for i := 0; i < 240; i++ {
			r.world.Step(seq[(i/15)%len(seq)], 1.0/60)
		}
		return r.position(p)
	}
	assert.Equal(t, run(), run())
}
