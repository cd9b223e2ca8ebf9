package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/parameter"
	"github.com/lixenwraith/labyrinth/vmath"
)

// CameraSystem keeps the third-person camera rig on its target
// Free until a CameraTarget appears, then Following, Orbiting while the orbit key is held
type CameraSystem struct {
	world  *engine.World
	locker engine.CursorLocker
}

// NewCameraSystem creates the camera tracker; locker may be nil
func NewCameraSystem(world *engine.World, locker engine.CursorLocker) *CameraSystem {
	return &CameraSystem{
		world:  world,
		locker: locker,
	}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update() {
	c := s.world.Components
	rigs := s.world.Query().
		With(c.Rig).
		With(c.Transform).
		Execute()

	for _, cam := range rigs {
		rig, _ := c.Rig.Get(cam)
		ct, _ := c.Transform.Get(cam)
		if s.updateRig(cam, &rig, &ct) {
			c.Transform.Set(cam, ct)
		}
		c.Rig.Set(cam, rig)
	}
}

// updateRig advances one rig, returns true when the camera transform was written
func (s *CameraSystem) updateRig(cam core.Entity, rig *component.CameraRigComponent, ct *component.TransformComponent) bool {
	c := s.world.Components
	frame := s.world.Resources.Frame

	if rig.State == component.CameraFree {
		target, ok := s.findTarget()
		if !ok {
			return false
		}
		rig.Target = target
		s.transition(cam, rig, component.CameraFollowing)
	}

	tt, ok := c.Transform.Get(rig.Target)
	if !ok || !c.CameraTarget.Has(rig.Target) {
		// Weak reference went stale
		rig.Target = core.NoEntity
		s.transition(cam, rig, component.CameraFree)
		return false
	}
	if !vmath.V3Finite(tt.Position) {
		// Held until the guard rolls the target back
		return false
	}

	orbitHeld := rig.OrbitEnabled && frame.Input.Pressed(input.KeyOrbit)
	switch {
	case rig.State == component.CameraFollowing && orbitHeld:
		s.transition(cam, rig, component.CameraOrbiting)
	case rig.State == component.CameraOrbiting && !orbitHeld:
		s.transition(cam, rig, component.CameraFollowing)
	}

	if frame.JustPressed(input.KeyCursorLock) {
		s.setCursorLock(rig, !rig.CursorLocked)
	}

	if rig.State == component.CameraOrbiting {
		dx, dy := frame.Input.MouseDX, frame.Input.MouseDY
		if vmath.Finite32(dx) && vmath.Finite32(dy) {
			rig.Yaw = wrapAngle(rig.Yaw - dx*rig.Sensitivity)
			rig.Pitch -= dy * rig.Sensitivity
		}
	}

	s.applyZoom(rig)

	dir, pitch := orbitDirection(rig.Offset, rig.Yaw, rig.Pitch)
	rig.Pitch = pitch
	rig.Distance = rig.Zoom.Clamp(rig.Distance)

	ct.Position = tt.Position.Add(dir.Mul(rig.Distance))
	if q, ok := vmath.LookRotation(tt.Position.Sub(ct.Position)); ok {
		ct.Rotation = q
	}
	return true
}

// findTarget returns the first entity tagged CameraTarget that has a transform
func (s *CameraSystem) findTarget() (core.Entity, bool) {
	c := s.world.Components
	targets := s.world.Query().
		With(c.CameraTarget).
		With(c.Transform).
		Execute()
	if len(targets) == 0 {
		return core.NoEntity, false
	}
	return targets[0], true
}

func (s *CameraSystem) applyZoom(rig *component.CameraRigComponent) {
	frame := s.world.Resources.Frame
	delta := float32(0)
	if frame.JustPressed(input.KeyZoomIn) {
		delta -= rig.ZoomStep
	}
	if frame.JustPressed(input.KeyZoomOut) {
		delta += rig.ZoomStep
	}
	if sc := frame.Input.Scroll; vmath.Finite32(sc) {
		delta -= sc * rig.ZoomStep
	}
	if d := rig.Zoom.Clamp(rig.Distance + delta); vmath.Finite32(d) {
		rig.Distance = d
	}
}

// wrapAngle maps a into (-pi, pi]
func wrapAngle(a float32) float32 {
	w := float32(math.Remainder(float64(a), 2*math.Pi))
	if w <= -math.Pi {
		w += 2 * math.Pi
	}
	return w
}

// transition switches state, emits the change and keeps cursor lock tied to Orbiting
func (s *CameraSystem) transition(cam core.Entity, rig *component.CameraRigComponent, to component.CameraState) {
	from := rig.State
	if from == to {
		return
	}
	rig.State = to

	switch {
	case to == component.CameraOrbiting:
		s.setCursorLock(rig, true)
	case from == component.CameraOrbiting:
		s.setCursorLock(rig, false)
	}

	s.world.PushEvent(event.EventCameraState, &event.CameraStatePayload{
		Camera: cam,
		From:   uint8(from),
		To:     uint8(to),
	})
}

func (s *CameraSystem) setCursorLock(rig *component.CameraRigComponent, locked bool) {
	if rig.CursorLocked == locked {
		return
	}
	rig.CursorLocked = locked
	if s.locker != nil {
		s.locker.SetCursorLocked(locked)
	}
}

// orbitDirection rotates the unit offset by yaw about world up and by pitch toward the poles
// Returns the direction and the pitch clamped so elevation stays within CameraPitchLimit
func orbitDirection(offset mgl32.Vec3, yaw, pitch float32) (mgl32.Vec3, float32) {
	if offset.Len() < vmath.Epsilon32 || !vmath.V3Finite(offset) {
		offset = mgl32.Vec3{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ}
	}
	o := offset.Normalize()

	baseYaw := math.Atan2(float64(o[0]), float64(o[2]))
	baseElev := math.Asin(float64(vmath.Clamp32(o[1], -1, 1)))

	limit := float64(parameter.CameraPitchLimit)
	elev := baseElev + float64(pitch)
	if elev > limit {
		elev = limit
	} else if elev < -limit {
		elev = -limit
	}
	pitch = float32(elev - baseElev)

	if yaw == 0 && pitch == 0 {
		return o, pitch
	}

	y := baseYaw + float64(yaw)
	cosE := math.Cos(elev)
	dir := mgl32.Vec3{
		float32(cosE * math.Sin(y)),
		float32(math.Sin(elev)),
		float32(cosE * math.Cos(y)),
	}
	return dir.Normalize(), pitch
}
