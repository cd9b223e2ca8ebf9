package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/vmath"
)

func TestAudioBumpOnContactEdge(t *testing.T) {
	r := newTestRig(t)
	r.addStaticBox(t, mgl32.Vec3{-6, 2, 0}, mgl32.Vec3{0.5, 2, 5})
	r.addPlayer(t, mgl32.Vec3{-4.8, 0.5, 0}, 5, vmath.Axes(vmath.TranslateY))

	push := keys(input.KeyForward)
	back := keys(input.KeyBack)
	step := func(s input.Snapshot, dt float32) {
		r.world.Step(s, dt)
		r.world.Resources.Events.Consume()
	}

	step(push, 0.1)
	assert.Equal(t, 1, r.bumps.count, "first contact plays")

	for i := 0; i < 10; i++ {
		step(push, 0.1)
	}
	assert.Equal(t, 1, r.bumps.count, "held contact does not repeat")

	// Back off a little and hit the wall again
	step(back, 0.02)
	step(push, 0.1)
	assert.Equal(t, 2, r.bumps.count)

	// Repeated hits inside the cooldown stay silent
	step(back, 0.02)
	step(push, 0.1)
	step(back, 0.02)
	step(push, 0.1)
	assert.Equal(t, 2, r.bumps.count)

	step(back, 0.02)
	step(push, 0.1)
	assert.Equal(t, 3, r.bumps.count)
}

func TestAudioWithoutPlayer(t *testing.T) {
	r := newTestRig(t)
	s := NewAudioSystem(r.world, nil)
	r.addStaticBox(t, mgl32.Vec3{-6, 2, 0}, mgl32.Vec3{0.5, 2, 5})
	r.addPlayer(t, mgl32.Vec3{-4.8, 0.5, 0}, 5, vmath.Axes(vmath.TranslateY))

	r.world.Step(keys(input.KeyForward), 0.1)
	assert.NotPanics(t, s.Update)
}
