package component

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind selects the collider geometry
type ShapeKind uint8

const (
	ShapeNone ShapeKind = iota
	ShapeSphere
	ShapeCuboid
	ShapeMesh // Static geometry only
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeCuboid:
		return "cuboid"
	case ShapeMesh:
		return "mesh"
	}
	return "none"
}

// Mesh is a triangle list in entity-local space
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32 // Three per triangle
}

// TriangleCount returns the number of complete index triples
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// ColliderComponent attaches collision geometry to an entity
type ColliderComponent struct {
	Kind        ShapeKind
	Radius      float32    // ShapeSphere
	HalfExtents mgl32.Vec3 // ShapeCuboid
	Mesh        *Mesh      // ShapeMesh
	Static      bool       // Immovable world geometry
}

// SphereCollider is a dynamic sphere of radius r
func SphereCollider(r float32) ColliderComponent {
	return ColliderComponent{Kind: ShapeSphere, Radius: r}
}

// CuboidCollider is a box with the given half extents
func CuboidCollider(half mgl32.Vec3, static bool) ColliderComponent {
	return ColliderComponent{Kind: ShapeCuboid, HalfExtents: half, Static: static}
}

// MeshCollider is a static triangle surface
func MeshCollider(m *Mesh) ColliderComponent {
	return ColliderComponent{Kind: ShapeMesh, Mesh: m, Static: true}
}
