package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/vmath"
)

// PhysicsBodyComponent drives kinematic motion of a dynamic entity
// Velocity is derived fresh each frame from the movement intent, never carried over
type PhysicsBodyComponent struct {
	Velocity mgl32.Vec3
	Speed    float32       // Units per second, > 0
	Locked   vmath.AxisSet // Axes the integrator must never modify
}
