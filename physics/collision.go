package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/parameter"
	"github.com/lixenwraith/labyrinth/vmath"
)

// Resolution is the outcome of resolving one proposed move
type Resolution struct {
	Position mgl32.Vec3
	Blocked  vmath.AxisSet // Translate axes that were clamped
	Walls    []core.Entity // Owners of the statics that blocked the move, first-hit order
	Contacts []core.Entity // Dynamic entities overlapping after the move (advisory)
}

type dynamicBody struct {
	shape    Shape
	position mgl32.Vec3 // Last committed position
}

// CollisionWorld holds static geometry and dynamic colliders and resolves moves
// against it one axis at a time
type CollisionWorld struct {
	statics  []body
	grid     *broadphase
	dynamics map[core.Entity]*dynamicBody
	order    []core.Entity // Dynamic registration order

	near     []int
	clear    []int
	embedded []int
}

// NewCollisionWorld creates an empty collision world
func NewCollisionWorld() *CollisionWorld {
	return &CollisionWorld{
		grid:     newBroadphase(parameter.BroadphaseCellSize),
		dynamics: make(map[core.Entity]*dynamicBody),
	}
}

// RegisterStatic adds immovable geometry owned by owner
// On *ColliderBuildError nothing is registered
func (cw *CollisionWorld) RegisterStatic(owner core.Entity, c component.ColliderComponent, t component.TransformComponent) error {
	bodies, err := buildBodies(owner, c, t)
	if err != nil {
		return err
	}
	for _, b := range bodies {
		idx := len(cw.statics)
		cw.statics = append(cw.statics, b)
		cw.grid.insert(idx, b.bounds())
	}
	return nil
}

// RegisterDynamic adds a movable collider for e at t's position
// Re-registering replaces the shape and position
func (cw *CollisionWorld) RegisterDynamic(e core.Entity, c component.ColliderComponent, t component.TransformComponent) error {
	if !vmath.V3Finite(t.Position) {
		return &ColliderBuildError{Owner: e, Kind: c.Kind, Reason: "non-finite position"}
	}
	shape, err := buildShape(e, c, t)
	if err != nil {
		return err
	}
	if _, exists := cw.dynamics[e]; !exists {
		cw.order = append(cw.order, e)
	}
	cw.dynamics[e] = &dynamicBody{shape: shape, position: t.Position}
	return nil
}

// Sync overwrites the committed position of e without collision checks
func (cw *CollisionWorld) Sync(e core.Entity, p mgl32.Vec3) {
	if d, ok := cw.dynamics[e]; ok && vmath.V3Finite(p) {
		d.position = p
	}
}

// Position returns the committed position of a dynamic entity
func (cw *CollisionWorld) Position(e core.Entity) (mgl32.Vec3, bool) {
	d, ok := cw.dynamics[e]
	if !ok {
		return mgl32.Vec3{}, false
	}
	return d.position, true
}

// StaticCount returns the number of static bodies (mesh triangles count individually)
func (cw *CollisionWorld) StaticCount() int {
	return len(cw.statics)
}

// Resolve returns the corrected position for e's proposed move and commits it
func (cw *CollisionWorld) Resolve(e core.Entity, proposed mgl32.Vec3) mgl32.Vec3 {
	return cw.Step(e, proposed).Position
}

// Step resolves e's proposed move against static geometry and commits the result.
// A proposed position that overlaps nothing is returned unchanged. Otherwise each
// changed axis is swept on its own, in X, Y, Z order, from the last committed
// position in steps no longer than the shape's smallest extent; the first overlap
// pulls that coordinate back to tangency with the blocking face, never past the
// starting coordinate. A static the entity already penetrates blocks any step that
// would sink it deeper; steps that keep or reduce the penetration are allowed.
// Unregistered entities are returned unchanged; non-finite moves are rejected.
func (cw *CollisionWorld) Step(e core.Entity, proposed mgl32.Vec3) Resolution {
	d, ok := cw.dynamics[e]
	if !ok {
		return Resolution{Position: proposed}
	}
	start := d.position
	if !vmath.V3Finite(proposed) {
		return Resolution{Position: start, Blocked: vmath.LockTranslation}
	}

	near := cw.nearStatics(d.shape, start, proposed)
	res := Resolution{}
	if cw.firstOverlap(d.shape, proposed, near) < 0 {
		res.Position = proposed
		d.position = proposed
		res.Contacts = cw.contacts(e, d)
		return res
	}

	pos := start
	for a := 0; a < 3; a++ {
		if proposed[a] == start[a] {
			continue
		}
		clear, embedded := cw.split(d.shape, pos, near)
		var blocked bool
		pos, blocked = cw.sweepAxis(d.shape, pos, proposed[a], a, clear, embedded, &res)
		if blocked {
			res.Blocked = res.Blocked.With(vmath.TranslationAxis(a))
		}
	}
	res.Position = pos

	d.position = pos
	res.Contacts = cw.contacts(e, d)
	return res
}

// sweepAxis advances coordinate a of pos toward target in bounded steps
// and stops at the first blocking static
func (cw *CollisionWorld) sweepAxis(s Shape, pos mgl32.Vec3, target float32, a int, clear, embedded []int, res *Resolution) (mgl32.Vec3, bool) {
	if len(clear) == 0 && len(embedded) == 0 {
		pos[a] = target
		return pos, false
	}

	from := pos[a]
	span := vmath.Abs32(target - from)
	n := 1
	if step := s.minExtent(); step > 0 && span > step {
		n = int(math.Ceil(float64(span / step)))
		if n > parameter.ResolveMaxSubsteps {
			n = parameter.ResolveMaxSubsteps
		}
	}

	for k := 1; k <= n; k++ {
		next := target
		if k < n {
			next = from + (target-from)*float32(k)/float32(n)
		}
		cand := pos
		cand[a] = next
		if hit := cw.deepens(s, pos, cand, embedded); hit >= 0 {
			res.Walls = appendUnique(res.Walls, cw.statics[hit].owner)
			return pos, true
		}
		if cw.firstOverlap(s, cand, clear) < 0 {
			pos = cand
			continue
		}
		clamped := cw.clampAxis(s, pos, next, a, clear, res)
		if hit := cw.deepens(s, pos, clamped, embedded); hit >= 0 {
			res.Walls = appendUnique(res.Walls, cw.statics[hit].owner)
			return pos, true
		}
		return clamped, true
	}
	return pos, false
}

// clampAxis pulls coordinate a back from an overlapping target to the first tangency
func (cw *CollisionWorld) clampAxis(s Shape, pos mgl32.Vec3, target float32, a int, active []int, res *Resolution) mgl32.Vec3 {
	from := pos[a]
	dir := vmath.Sign32(target - from)
	cand := pos
	cand[a] = target

	for iter := 0; iter < parameter.ResolveMaxIterations; iter++ {
		hit := cw.firstOverlap(s, cand, active)
		if hit < 0 {
			return cand
		}
		res.Walls = appendUnique(res.Walls, cw.statics[hit].owner)

		t := s.tangent(cand, &cw.statics[hit], a, dir)
		// Never beyond the attempted coordinate, never behind the start
		if dir > 0 {
			t = vmath.Clamp32(t, from, cand[a])
		} else {
			t = vmath.Clamp32(t, cand[a], from)
		}
		cand[a] = t
		if t == from {
			break
		}
	}

	if cw.firstOverlap(s, cand, active) >= 0 {
		cand[a] = from
	}
	return cand
}

// nearStatics returns the statics whose cells the move's swept bounds touch
func (cw *CollisionWorld) nearStatics(s Shape, start, proposed mgl32.Vec3) []int {
	swept := s.Bounds(start).Union(s.Bounds(proposed))
	cw.near = cw.grid.query(swept, cw.near[:0])
	return cw.near
}

// split partitions near into statics clear of s at p and statics s already penetrates
func (cw *CollisionWorld) split(s Shape, p mgl32.Vec3, near []int) (clear, embedded []int) {
	clear, embedded = cw.clear[:0], cw.embedded[:0]
	for _, idx := range near {
		if s.overlaps(p, &cw.statics[idx]) {
			embedded = append(embedded, idx)
		} else {
			clear = append(clear, idx)
		}
	}
	cw.clear, cw.embedded = clear, embedded
	return clear, embedded
}

func (cw *CollisionWorld) firstOverlap(s Shape, p mgl32.Vec3, active []int) int {
	for _, idx := range active {
		if s.overlaps(p, &cw.statics[idx]) {
			return idx
		}
	}
	return -1
}

// deepens returns the first embedded static that s penetrates further at to than at from
func (cw *CollisionWorld) deepens(s Shape, from, to mgl32.Vec3, embedded []int) int {
	for _, idx := range embedded {
		b := &cw.statics[idx]
		if s.penetration(to, b) > s.penetration(from, b) {
			return idx
		}
	}
	return -1
}

// contacts lists other dynamic entities overlapping e, in registration order
func (cw *CollisionWorld) contacts(e core.Entity, d *dynamicBody) []core.Entity {
	var out []core.Entity
	for _, other := range cw.order {
		if other == e {
			continue
		}
		od := cw.dynamics[other]
		b := od.shape.placed(other, od.position)
		if d.shape.overlaps(d.position, &b) {
			out = append(out, other)
		}
	}
	return out
}

func appendUnique(list []core.Entity, e core.Entity) []core.Entity {
	for _, x := range list {
		if x == e {
			return list
		}
	}
	return append(list, e)
}
