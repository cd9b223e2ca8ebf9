package system

import (
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/parameter"
	"github.com/lixenwraith/labyrinth/physics"
)

// MotionSystem applies the movement intent to the controllable entity
// The written position is a proposal; CollisionSystem corrects it in the same frame
type MotionSystem struct {
	world *engine.World
}

// NewMotionSystem creates the kinematic integration system
func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{world: world}
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Update() {
	frame := s.world.Resources.Frame
	dir := frame.Intent.Direction()
	c := s.world.Components

	entities := s.world.Query().
		With(c.Controllable).
		With(c.Transform).
		With(c.Body).
		Execute()

	for _, e := range entities {
		t, _ := c.Transform.Get(e)
		body, _ := c.Body.Get(e)
		physics.Integrate(&t, &body, dir, frame.Delta)
		c.Transform.Set(e, t)
		c.Body.Set(e, body)
	}
}
