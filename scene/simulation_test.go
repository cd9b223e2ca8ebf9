package scene

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/physics"
	"github.com/lixenwraith/labyrinth/system"
)

// TestWalkingTheGeneratedMaze drives the full system set over a generated maze
// The player must stay on the ground and never end a frame inside a wall
func TestWalkingTheGeneratedMaze(t *testing.T) {
	cfg := smallConfig()
	w := engine.NewWorld()
	cw := physics.NewCollisionWorld()
	loader := NewProceduralLoader(cfg)
	rep, err := Build(cfg, loader, w, cw, zerolog.Nop())
	require.NoError(t, err)
	require.Empty(t, rep.Warnings)
	m, l, _ := loader.Maze()

	w.AddSystem(system.NewInputSystem(w))
	w.AddSystem(system.NewMotionSystem(w))
	w.AddSystem(system.NewCollisionSystem(w, cw))
	w.AddSystem(system.NewGoalSystem(w))
	w.AddSystem(system.NewCameraSystem(w, nil))
	w.AddSystem(system.NewGuardSystem(w, cw, zerolog.Nop()))

	pattern := []input.KeySet{
		input.Keys(input.KeyForward),
		input.Keys(input.KeyRight),
		input.Keys(input.KeyBack, input.KeyLeft),
		input.Keys(input.KeyLeft),
		input.Keys(input.KeyForward, input.KeyRight),
	}

	start, _ := w.Components.Transform.Get(rep.Player)
	for frame := 0; frame < 500; frame++ {
		keys := pattern[(frame/40)%len(pattern)]
		w.Step(input.Snapshot{Keys: keys}, 1.0/60)

		pt, ok := w.Components.Transform.Get(rep.Player)
		require.True(t, ok)
		require.True(t, pt.Valid(), "frame %d", frame)
		require.Equal(t, start.Position.Y(), pt.Position.Y(), "frame %d: vertical axis is locked", frame)
		require.False(t, m.Wall(l.Locate(pt.Position)), "frame %d: player centre inside a wall cell", frame)
		require.Equal(t, pt.Position, cw.Resolve(rep.Player, pt.Position), "frame %d: resting position must be stable", frame)
	}

	rig, _ := w.Components.Rig.Get(rep.Camera)
	assert.Equal(t, rep.Player, rig.Target)
	assert.Equal(t, component.CameraFollowing, rig.State)
}
