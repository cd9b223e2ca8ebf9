package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/vmath"
)

// Integrate moves t by dir * speed * dt on every translate axis not locked on body
// Velocity is recomputed from dir, locked axes read as zero. Rotation is never written
// Axes are accumulated in X, Y, Z order; each product is rounded to float32 explicitly
// so results do not depend on fused multiply-add availability
// Returns the applied displacement
func Integrate(t *component.TransformComponent, body *component.PhysicsBodyComponent, dir mgl32.Vec3, dt float32) mgl32.Vec3 {
	var velocity, displacement mgl32.Vec3
	for i := 0; i < 3; i++ {
		if dir[i] == 0 || body.Locked.Has(vmath.TranslationAxis(i)) {
			continue
		}
		velocity[i] = float32(dir[i] * body.Speed)
		d := float32(velocity[i] * dt)
		if d == 0 {
			continue
		}
		t.Position[i] += d
		displacement[i] = d
	}
	body.Velocity = velocity
	return displacement
}
