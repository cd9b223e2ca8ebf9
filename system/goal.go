package system

import (
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/parameter"
)

// GoalSystem flags the maze exit once the controllable entity reaches it
type GoalSystem struct {
	world *engine.World
}

// NewGoalSystem creates the exit detection system
func NewGoalSystem(world *engine.World) *GoalSystem {
	return &GoalSystem{world: world}
}

func (s *GoalSystem) Name() string {
	return "goal"
}

func (s *GoalSystem) Priority() int {
	return parameter.PriorityGoal
}

func (s *GoalSystem) Update() {
	c := s.world.Components
	players := s.world.Query().
		With(c.Controllable).
		With(c.Transform).
		Execute()
	if len(players) == 0 {
		return
	}
	player := players[0]
	pt, _ := c.Transform.Get(player)

	goals := s.world.Query().
		With(c.Goal).
		With(c.Transform).
		Execute()

	for _, g := range goals {
		goal, _ := c.Goal.Get(g)
		if goal.Reached {
			continue
		}
		gt, _ := c.Transform.Get(g)

		// Horizontal distance only, the exit is a floor marker
		dx := pt.Position[0] - gt.Position[0]
		dz := pt.Position[2] - gt.Position[2]
		if dx*dx+dz*dz > goal.Radius*goal.Radius {
			continue
		}

		goal.Reached = true
		c.Goal.Set(g, goal)
		s.world.PushEvent(event.EventGoalReached, &event.GoalReachedPayload{
			Entity: player,
			Goal:   g,
		})
	}
}
