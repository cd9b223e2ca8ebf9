package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/parameter"
	"github.com/lixenwraith/labyrinth/physics"
	"github.com/lixenwraith/labyrinth/vmath"
)

// GuardSystem rolls back transforms holding NaN/Inf or negative scale to their last valid value
// so one malformed frame cannot poison later frames
type GuardSystem struct {
	world     *engine.World
	collision *physics.CollisionWorld // Optional, kept in sync on restore
	logger    zerolog.Logger

	lastValid map[core.Entity]component.TransformComponent
}

// NewGuardSystem creates the numeric guard; collision may be nil
func NewGuardSystem(world *engine.World, collision *physics.CollisionWorld, logger zerolog.Logger) *GuardSystem {
	return &GuardSystem{
		world:     world,
		collision: collision,
		logger:    logger,
		lastValid: make(map[core.Entity]component.TransformComponent),
	}
}

func (s *GuardSystem) Name() string {
	return "guard"
}

func (s *GuardSystem) Priority() int {
	return parameter.PriorityGuard
}

func (s *GuardSystem) Update() {
	store := s.world.Components.Transform
	for _, e := range store.All() {
		t, _ := store.Get(e)
		if t.Valid() {
			s.lastValid[e] = t
			continue
		}

		restored, ok := s.lastValid[e]
		if !ok {
			restored = sanitize(t)
		}
		store.Set(e, restored)
		if s.collision != nil {
			s.collision.Sync(e, restored.Position)
		}

		s.logger.Warn().
			Uint64("entity", uint64(e)).
			Int64("frame", s.world.Resources.Frame.Number).
			Bool("had_valid", ok).
			Msg("invalid transform restored")
		s.world.PushEvent(event.EventTransformRestored, &event.TransformRestoredPayload{Entity: e})
	}
}

// sanitize keeps the finite parts of t and resets the rest to identity
func sanitize(t component.TransformComponent) component.TransformComponent {
	out := component.NewTransform(mgl32.Vec3{})
	if vmath.V3Finite(t.Position) {
		out.Position = t.Position
	}
	if vmath.QuatFinite(t.Rotation) {
		out.Rotation = t.Rotation
	}
	if vmath.V3Finite(t.Scale) {
		out.Scale = vmath.V3Abs(t.Scale)
	}
	return out
}
