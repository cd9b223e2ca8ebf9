package input

import "github.com/go-gl/mathgl/mgl32"

// MovementIntent is the per-frame desired direction before speed and time scaling
// Each contribution is 0 or 1
type MovementIntent struct {
	Forward float32
	Back    float32
	Left    float32
	Right   float32
}

// Direction maps the intent to world axes: forward is -X, right is -Z
// Opposite contributions cancel. Diagonals are not normalized, so diagonal
// movement is sqrt(2) times faster than axis-aligned movement
func (m MovementIntent) Direction() mgl32.Vec3 {
	return mgl32.Vec3{
		m.Back - m.Forward,
		0,
		m.Left - m.Right,
	}
}

// Zero reports whether the intent produces no displacement
func (m MovementIntent) Zero() bool {
	d := m.Direction()
	return d[0] == 0 && d[2] == 0
}
