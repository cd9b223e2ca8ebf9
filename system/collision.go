package system

import (
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/parameter"
	"github.com/lixenwraith/labyrinth/physics"
)

// CollisionSystem resolves the proposed positions of dynamic bodies against static geometry
// and reports contacts as events
type CollisionSystem struct {
	world     *engine.World
	collision *physics.CollisionWorld
}

// NewCollisionSystem creates the collision resolution system over an already populated collision world
func NewCollisionSystem(world *engine.World, collision *physics.CollisionWorld) *CollisionSystem {
	return &CollisionSystem{
		world:     world,
		collision: collision,
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update() {
	c := s.world.Components
	entities := s.world.Query().
		With(c.Body).
		With(c.Transform).
		Execute()

	for _, e := range entities {
		t, _ := c.Transform.Get(e)
		proposed := t.Position
		res := s.collision.Step(e, proposed)

		if res.Position != proposed {
			t.Position = res.Position
			c.Transform.Set(e, t)
		}

		if !res.Blocked.Empty() {
			s.world.PushEvent(event.EventWallContact, &event.WallContactPayload{
				Entity:   e,
				Walls:    res.Walls,
				Blocked:  res.Blocked,
				Proposed: proposed,
				Resolved: res.Position,
			})
		}

		// Each pair is reported once, by its lower entity
		for _, other := range res.Contacts {
			if other > e {
				s.world.PushEvent(event.EventDynamicContact, &event.DynamicContactPayload{
					Entity: e,
					Other:  other,
				})
			}
		}
	}
}
