package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/vmath"
)

// Touching surfaces are not overlapping: penetration must exceed vmath.Epsilon32

// overlaps reports whether shape s centered at p penetrates b
func (s Shape) overlaps(p mgl32.Vec3, b *body) bool {
	switch {
	case s.Sphere && b.sphere:
		return s.Radius+b.radius-b.center.Sub(p).Len() > vmath.Epsilon32
	case s.Sphere:
		return s.Radius-distToBox(p, b.box) > vmath.Epsilon32
	case b.sphere:
		return b.radius-distToBox(b.center, s.Bounds(p)) > vmath.Epsilon32
	}
	own := s.Bounds(p)
	for i := 0; i < 3; i++ {
		lo := own.Min[i]
		if b.box.Min[i] > lo {
			lo = b.box.Min[i]
		}
		hi := own.Max[i]
		if b.box.Max[i] < hi {
			hi = b.box.Max[i]
		}
		if hi-lo <= vmath.Epsilon32 {
			return false
		}
	}
	return true
}

// penetration is how far s centered at p sinks into b, <= 0 when apart
// Boxes measure along their shallowest axis; a sphere center inside a box counts its
// distance to the nearest face
func (s Shape) penetration(p mgl32.Vec3, b *body) float32 {
	switch {
	case s.Sphere && b.sphere:
		return s.Radius + b.radius - b.center.Sub(p).Len()
	case s.Sphere:
		return s.Radius - signedDistToBox(p, b.box)
	case b.sphere:
		return b.radius - signedDistToBox(b.center, s.Bounds(p))
	}
	own := s.Bounds(p)
	depth := float32(math.MaxFloat32)
	for i := 0; i < 3; i++ {
		depth = min(depth, min(own.Max[i], b.box.Max[i])-max(own.Min[i], b.box.Min[i]))
	}
	return depth
}

// signedDistToBox is distToBox outside the box and minus the distance to the nearest face inside
func signedDistToBox(p mgl32.Vec3, box AABB) float32 {
	if d := distToBox(p, box); d > 0 {
		return d
	}
	inside := float32(math.MaxFloat32)
	for i := 0; i < 3; i++ {
		inside = min(inside, p[i]-box.Min[i], box.Max[i]-p[i])
	}
	return -inside
}

// distToBox is the distance from p to the closest point of box, 0 when inside
func distToBox(p mgl32.Vec3, box AABB) float32 {
	var sq float32
	for i := 0; i < 3; i++ {
		d := vmath.Clamp32(p[i], box.Min[i], box.Max[i]) - p[i]
		sq += d * d
	}
	return vmath.Sqrt32(sq)
}

// perpSq is the squared distance from p to box ignoring axis a
func perpSq(p mgl32.Vec3, box AABB, a int) float32 {
	var sq float32
	for i := 0; i < 3; i++ {
		if i == a {
			continue
		}
		d := vmath.Clamp32(p[i], box.Min[i], box.Max[i]) - p[i]
		sq += d * d
	}
	return sq
}

// tangent returns the coordinate on axis a at which s, approaching b while moving
// in direction dir (+1/-1), just touches b. Other coordinates of p are held fixed
func (s Shape) tangent(p mgl32.Vec3, b *body, a int, dir float32) float32 {
	switch {
	case s.Sphere && b.sphere:
		var sq float32
		for i := 0; i < 3; i++ {
			if i != a {
				d := p[i] - b.center[i]
				sq += d * d
			}
		}
		r := s.Radius + b.radius
		g := vmath.Sqrt32(r*r - sq)
		if dir > 0 {
			return b.center[a] - g
		}
		return b.center[a] + g

	case s.Sphere:
		g := vmath.Sqrt32(s.Radius*s.Radius - perpSq(p, b.box, a))
		if dir > 0 {
			return b.box.Min[a] - g
		}
		return b.box.Max[a] + g

	case b.sphere:
		g := vmath.Sqrt32(b.radius*b.radius - perpSq(b.center, s.Bounds(p), a))
		if dir > 0 {
			return b.center[a] - g - s.Half[a]
		}
		return b.center[a] + g + s.Half[a]
	}

	if dir > 0 {
		return b.box.Min[a] - s.Half[a]
	}
	return b.box.Max[a] + s.Half[a]
}
