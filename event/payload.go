package event

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/vmath"
)

// WallContactPayload describes a blocked move
type WallContactPayload struct {
	Entity   core.Entity
	Walls    []core.Entity // Owners of the blocking static colliders
	Blocked  vmath.AxisSet // Translate axes that were clamped
	Proposed mgl32.Vec3
	Resolved mgl32.Vec3
}

// DynamicContactPayload pairs two overlapping dynamic entities
type DynamicContactPayload struct {
	Entity core.Entity
	Other  core.Entity
}

// CameraStatePayload describes a camera transition
type CameraStatePayload struct {
	Camera core.Entity
	From   uint8
	To     uint8
}

// TransformRestoredPayload names the entity whose transform was rolled back
type TransformRestoredPayload struct {
	Entity core.Entity
}

// GoalReachedPayload names the entity that reached the exit
type GoalReachedPayload struct {
	Entity core.Entity
	Goal   core.Entity
}
