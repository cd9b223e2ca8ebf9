package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

// ColliderBuildError reports geometry that cannot produce a collider
// Recovery is the caller's: the entity stays without collision
type ColliderBuildError struct {
	Owner  core.Entity
	Kind   component.ShapeKind
	Reason string
}

func (e *ColliderBuildError) Error() string {
	return fmt.Sprintf("collider build failed (entity %d, %s): %s", e.Owner, e.Kind, e.Reason)
}

// AABB is an axis-aligned box in world space
type AABB struct {
	Min, Max mgl32.Vec3
}

// Union returns the smallest box containing both
func (b AABB) Union(o AABB) AABB {
	lo, _ := vmath.V3MinMax(b.Min, o.Min)
	_, hi := vmath.V3MinMax(b.Max, o.Max)
	return AABB{Min: lo, Max: hi}
}

// Shape is a dynamic collider centered on its entity's position
type Shape struct {
	Sphere bool
	Radius float32    // Sphere
	Half   mgl32.Vec3 // Box half extents
}

// Bounds returns the world box of the shape centered at p
func (s Shape) Bounds(p mgl32.Vec3) AABB {
	h := s.Half
	if s.Sphere {
		h = mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	}
	return AABB{Min: p.Sub(h), Max: p.Add(h)}
}

// minExtent is the smallest half size of the shape on any axis
func (s Shape) minExtent() float32 {
	if s.Sphere {
		return s.Radius
	}
	m := s.Half[0]
	if s.Half[1] < m {
		m = s.Half[1]
	}
	if s.Half[2] < m {
		m = s.Half[2]
	}
	return m
}

// body is a collider fixed in world space: a sphere or an axis-aligned box
type body struct {
	owner  core.Entity
	sphere bool
	center mgl32.Vec3 // Sphere
	radius float32    // Sphere
	box    AABB
}

func (b *body) bounds() AABB {
	if b.sphere {
		r := mgl32.Vec3{b.radius, b.radius, b.radius}
		return AABB{Min: b.center.Sub(r), Max: b.center.Add(r)}
	}
	return b.box
}

// placed converts a dynamic shape at p into a world body
func (s Shape) placed(owner core.Entity, p mgl32.Vec3) body {
	if s.Sphere {
		return body{owner: owner, sphere: true, center: p, radius: s.Radius}
	}
	return body{owner: owner, box: s.Bounds(p)}
}

// rotatedHalf returns the half extents of the axis-aligned bounds of a rotated box
func rotatedHalf(half mgl32.Vec3, rot mgl32.Quat) mgl32.Vec3 {
	var out mgl32.Vec3
	for j := 0; j < 3; j++ {
		var axis mgl32.Vec3
		axis[j] = half[j]
		out = out.Add(vmath.V3Abs(rot.Rotate(axis)))
	}
	return out
}

func validRotation(q mgl32.Quat) mgl32.Quat {
	if !vmath.QuatFinite(q) || q.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return q.Normalize()
}

// buildShape converts a dynamic collider into its centered shape
func buildShape(owner core.Entity, c component.ColliderComponent, t component.TransformComponent) (Shape, error) {
	scale := vmath.V3Abs(t.Scale)
	switch c.Kind {
	case component.ShapeSphere:
		r := c.Radius * vmath.V3MaxComponent(scale)
		if !(r > 0) || !vmath.Finite32(r) {
			return Shape{}, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: "radius must be positive"}
		}
		return Shape{Sphere: true, Radius: r}, nil
	case component.ShapeCuboid:
		half := vmath.V3Hadamard(c.HalfExtents, scale)
		if !(half[0] > 0 && half[1] > 0 && half[2] > 0) || !vmath.V3Finite(half) {
			return Shape{}, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: "half extents must be positive"}
		}
		return Shape{Half: rotatedHalf(half, validRotation(t.Rotation))}, nil
	case component.ShapeMesh:
		return Shape{}, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: "mesh colliders must be static"}
	}
	return Shape{}, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: "no shape"}
}

// buildBodies converts a static collider into world bodies
// Meshes become one box per non-degenerate triangle
func buildBodies(owner core.Entity, c component.ColliderComponent, t component.TransformComponent) ([]body, error) {
	if !t.Finite() {
		return nil, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: "non-finite transform"}
	}
	if c.Kind != component.ShapeMesh {
		s, err := buildShape(owner, c, t)
		if err != nil {
			return nil, err
		}
		return []body{s.placed(owner, t.Position)}, nil
	}

	m := c.Mesh
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: "empty mesh"}
	}
	if len(m.Indices)%3 != 0 {
		return nil, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: fmt.Sprintf("index count %d is not a multiple of 3", len(m.Indices))}
	}

	rot := validRotation(t.Rotation)
	scale := vmath.V3Abs(t.Scale)
	world := make([]mgl32.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		if !vmath.V3Finite(v) {
			return nil, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: fmt.Sprintf("vertex %d is not finite", i)}
		}
		world[i] = t.Position.Add(rot.Rotate(vmath.V3Hadamard(v, scale)))
	}

	bodies := make([]body, 0, len(m.Indices)/3)
	for i := 0; i < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		n := uint32(len(world))
		if ia >= n || ib >= n || ic >= n {
			return nil, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: fmt.Sprintf("triangle %d references a missing vertex", i/3)}
		}
		a, b, cc := world[ia], world[ib], world[ic]
		if b.Sub(a).Cross(cc.Sub(a)).Len() < 1e-8 {
			continue
		}
		lo, hi := vmath.V3MinMax(a, b)
		lo, _ = vmath.V3MinMax(lo, cc)
		_, hi = vmath.V3MinMax(hi, cc)
		bodies = append(bodies, body{owner: owner, box: AABB{Min: lo, Max: hi}})
	}
	if len(bodies) == 0 {
		return nil, &ColliderBuildError{Owner: owner, Kind: c.Kind, Reason: "mesh has no non-degenerate triangles"}
	}
	return bodies, nil
}
