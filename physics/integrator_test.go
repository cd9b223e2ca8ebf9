package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/vmath"
)

func newBody(speed float32, locked vmath.AxisSet) *component.PhysicsBodyComponent {
	return &component.PhysicsBodyComponent{Speed: speed, Locked: locked}
}

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name   string
		start  mgl32.Vec3
		dir    mgl32.Vec3
		speed  float32
		locked vmath.AxisSet
		dt     float32
		want   mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{-1, 0, 0}, 9, vmath.Axes(vmath.TranslateY), 0.1, mgl32.Vec3{-0.9, 0.5, 0}},
		{"zero intent", mgl32.Vec3{3, 0.5, -2}, mgl32.Vec3{}, 9, 0, 0.1, mgl32.Vec3{3, 0.5, -2}},
		{"zero dt", mgl32.Vec3{3, 0.5, -2}, mgl32.Vec3{1, 0, 1}, 9, 0, 0, mgl32.Vec3{3, 0.5, -2}},
		{"diagonal", mgl32.Vec3{}, mgl32.Vec3{1, 0, -1}, 2, 0, 0.5, mgl32.Vec3{1, 0, -1}},
		{"locked x", mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 0, 1}, 2, vmath.Axes(vmath.TranslateX), 0.5, mgl32.Vec3{1, 0, 2}},
		{"locked y ignores vertical", mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 5, vmath.Axes(vmath.TranslateY), 1, mgl32.Vec3{}},
		{"all translation locked", mgl32.Vec3{4, 4, 4}, mgl32.Vec3{1, 1, 1}, 5, vmath.LockTranslation, 1, mgl32.Vec3{4, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := component.NewTransform(tt.start)
			b := newBody(tt.speed, tt.locked)
			Integrate(&tr, b, tt.dir, tt.dt)
			assert.InDelta(t, tt.want[0], tr.Position[0], 1e-5)
			assert.InDelta(t, tt.want[1], tr.Position[1], 1e-5)
			assert.InDelta(t, tt.want[2], tr.Position[2], 1e-5)
		})
	}
}

func TestIntegrateZeroIsExactNoOp(t *testing.T) {
	start := mgl32.Vec3{0.1, 0.2, 0.30000001}
	tr := component.NewTransform(start)
	b := newBody(9, 0)

	d := Integrate(&tr, b, mgl32.Vec3{}, 0.016)
	assert.Equal(t, start, tr.Position, "zero intent must not touch position bits")
	assert.Equal(t, mgl32.Vec3{}, d)

	d = Integrate(&tr, b, mgl32.Vec3{1, 0, 1}, 0)
	assert.Equal(t, start, tr.Position, "zero dt must not touch position bits")
	assert.Equal(t, mgl32.Vec3{}, d)
}

func TestIntegrateVelocityAndRotation(t *testing.T) {
	tr := component.NewTransform(mgl32.Vec3{})
	tr.Rotation = mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0})
	rot := tr.Rotation
	b := newBody(4, vmath.Axes(vmath.TranslateY))
	b.Velocity = mgl32.Vec3{100, 100, 100}

	Integrate(&tr, b, mgl32.Vec3{1, 1, -1}, 0.25)

	assert.Equal(t, mgl32.Vec3{4, 0, -4}, b.Velocity, "velocity is recomputed and locked axes read zero")
	assert.Equal(t, rot, tr.Rotation)
	assert.Equal(t, float32(0), tr.Position[1])
}

func TestIntegrateDeterministic(t *testing.T) {
	run := func() mgl32.Vec3 {
		tr := component.NewTransform(mgl32.Vec3{0, 0.5, 0})
		b := newBody(9, vmath.Axes(vmath.TranslateY))
		dirs := []mgl32.Vec3{{-1, 0, 0}, {-1, 0, -1}, {0, 0, 1}, {1, 0, 0}}
		for i := 0; i < 400; i++ {
			Integrate(&tr, b, dirs[i%len(dirs)], 1.0/60)
		}
		return tr.Position
	}
	assert.Equal(t, run(), run())
}
