package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/vmath"
)

// TransformComponent places an entity in world space
// Written by the motion, collision and camera systems
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3 // Non-negative per component
}

// NewTransform returns an identity transform at position
func NewTransform(position mgl32.Vec3) TransformComponent {
	return TransformComponent{
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Finite reports whether position, rotation and scale hold no NaN/Inf
func (t TransformComponent) Finite() bool {
	return vmath.V3Finite(t.Position) && vmath.QuatFinite(t.Rotation) && vmath.V3Finite(t.Scale)
}

// Valid reports whether the transform is finite with non-negative scale
func (t TransformComponent) Valid() bool {
	return t.Finite() && t.Scale[0] >= 0 && t.Scale[1] >= 0 && t.Scale[2] >= 0
}
