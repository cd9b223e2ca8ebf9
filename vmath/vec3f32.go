package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon32 is the penetration tolerance used by overlap tests
const Epsilon32 float32 = 1e-4

// Finite32 reports whether v is neither NaN nor infinite
func Finite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// V3Finite reports whether every component of v is finite
func V3Finite(v mgl32.Vec3) bool {
	return Finite32(v[0]) && Finite32(v[1]) && Finite32(v[2])
}

// QuatFinite reports whether every component of q is finite
func QuatFinite(q mgl32.Quat) bool {
	return Finite32(q.W) && V3Finite(q.V)
}

// Clamp32 limits v to [lo, hi]
func Clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign32 returns -1, 0 or 1
func Sign32(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Abs32 is the float32 absolute value
func Abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt32 is a float32 square root; negative input yields 0
func Sqrt32(v float32) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(v)))
}

// V3Abs returns the component-wise absolute value
func V3Abs(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Abs32(v[0]), Abs32(v[1]), Abs32(v[2])}
}

// V3MaxComponent returns the largest component of v
func V3MaxComponent(v mgl32.Vec3) float32 {
	m := v[0]
	if v[1] > m {
		m = v[1]
	}
	if v[2] > m {
		m = v[2]
	}
	return m
}

// V3MinMax returns the component-wise minimum and maximum of a and b
func V3MinMax(a, b mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	lo, hi := a, b
	for i := 0; i < 3; i++ {
		if b[i] < lo[i] {
			lo[i] = b[i]
		}
		if a[i] > hi[i] {
			hi[i] = a[i]
		}
	}
	return lo, hi
}

// V3Hadamard multiplies a and b component-wise
func V3Hadamard(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// WorldUp is the +Y axis
var WorldUp = mgl32.Vec3{0, 1, 0}

// LookRotation turns -Z toward dir keeping +Y as close to WorldUp as possible
// Returns false when dir is too short or parallel to WorldUp
func LookRotation(dir mgl32.Vec3) (mgl32.Quat, bool) {
	if dir.Len() < Epsilon32 || !V3Finite(dir) {
		return mgl32.Quat{}, false
	}
	dir = dir.Normalize()
	right := dir.Cross(WorldUp)
	if right.Len() < 1e-6 {
		return mgl32.Quat{}, false
	}
	up := right.Normalize().Cross(dir)

	toDir := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, -1}, dir)
	cur := toDir.Rotate(mgl32.Vec3{0, 1, 0})
	angle := math.Atan2(float64(cur.Cross(up).Dot(dir)), float64(cur.Dot(up)))
	roll := mgl32.QuatRotate(float32(angle), dir)
	q := roll.Mul(toDir).Normalize()
	return q, QuatFinite(q)
}
