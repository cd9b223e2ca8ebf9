package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/physics"
	"github.com/lixenwraith/labyrinth/vmath"
)

type lockRecorder struct {
	calls []bool
}

func (l *lockRecorder) SetCursorLocked(locked bool) {
	l.calls = append(l.calls, locked)
}

type bumpCounter struct {
	count int
}

func (b *bumpCounter) PlayBump() {
	b.count++
}

type frameRecorder struct {
	frames []engine.Frame
}

func (r *frameRecorder) Present(f engine.Frame) {
	f.Items = append([]engine.RenderItem(nil), f.Items...)
	r.frames = append(r.frames, f)
}

// testRig wires a world with the full system set in simulation order
type testRig struct {
	world     *engine.World
	collision *physics.CollisionWorld
	locker    *lockRecorder
	bumps     *bumpCounter
	display   *frameRecorder
	player    core.Entity
	camera    core.Entity
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	r := &testRig{
		world:     engine.NewWorld(),
		collision: physics.NewCollisionWorld(),
		locker:    &lockRecorder{},
		bumps:     &bumpCounter{},
		display:   &frameRecorder{},
	}
	w := r.world
	w.AddSystem(NewPresentSystem(w, r.display))
	w.AddSystem(NewAudioSystem(w, r.bumps))
	w.AddSystem(NewGuardSystem(w, r.collision, zerolog.Nop()))
	w.AddSystem(NewCameraSystem(w, r.locker))
	w.AddSystem(NewGoalSystem(w))
	w.AddSystem(NewCollisionSystem(w, r.collision))
	w.AddSystem(NewMotionSystem(w))
	w.AddSystem(NewInputSystem(w))
	return r
}

// addPlayer creates the controllable sphere and registers it with collision
func (r *testRig) addPlayer(t *testing.T, pos mgl32.Vec3, speed float32, locked vmath.AxisSet) core.Entity {
	t.Helper()
	w := r.world
	e := w.CreateEntity()
	tr := component.NewTransform(pos)
	col := component.SphereCollider(0.5)
	engine.Attach(w, e, tr)
	engine.Attach(w, e, component.PhysicsBodyComponent{Speed: speed, Locked: locked})
	engine.Attach(w, e, col)
	engine.Attach(w, e, component.ControllableComponent{})
	engine.Attach(w, e, component.CameraTargetComponent{})
	engine.Attach(w, e, component.RenderableComponent{Name: "player", Glyph: '@'})
	require.NoError(t, r.collision.RegisterDynamic(e, col, tr))
	r.player = e
	return e
}

func (r *testRig) addStaticBox(t *testing.T, center, half mgl32.Vec3) core.Entity {
	t.Helper()
	w := r.world
	e := w.CreateEntity()
	tr := component.NewTransform(center)
	col := component.CuboidCollider(half, true)
	engine.Attach(w, e, tr)
	engine.Attach(w, e, col)
	engine.Attach(w, e, component.MazeComponent{})
	require.NoError(t, r.collision.RegisterStatic(e, col, tr))
	return e
}

func (r *testRig) addCamera(zoom component.ZoomBounds, distance float32) core.Entity {
	w := r.world
	e := w.CreateEntity()
	engine.Attach(w, e, component.NewTransform(mgl32.Vec3{35, 35, 35}))
	engine.Attach(w, e, component.CameraRigComponent{
		Offset:       mgl32.Vec3{35, 35, 35},
		Zoom:         zoom,
		Distance:     distance,
		OrbitEnabled: true,
		Sensitivity:  0.01,
		ZoomStep:     2,
	})
	r.camera = e
	return e
}

func (r *testRig) position(e core.Entity) mgl32.Vec3 {
	t, _ := r.world.Components.Transform.Get(e)
	return t.Position
}

func (r *testRig) rig() component.CameraRigComponent {
	rig, _ := r.world.Components.Rig.Get(r.camera)
	return rig
}

func keys(k ...input.Key) input.Snapshot {
	return input.Snapshot{Keys: input.Keys(k...)}
}
