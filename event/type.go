package event

import "github.com/lixenwraith/labyrinth/core"

// EventType represents the type of simulation event
type EventType int

const (
	EventNone EventType = iota

	// EventWallContact reports a move rejected or clamped by static geometry
	// Trigger: CollisionSystem | Consumer: AudioSystem, Loop metrics | Payload: *WallContactPayload
	EventWallContact

	// EventDynamicContact reports an overlap between two dynamic colliders (advisory only)
	// Trigger: CollisionSystem | Consumer: diagnostics | Payload: *DynamicContactPayload
	EventDynamicContact

	// EventCameraState reports a camera state machine transition
	// Trigger: CameraSystem | Consumer: diagnostics | Payload: *CameraStatePayload
	EventCameraState

	// EventTransformRestored reports a non-finite transform rolled back to its last valid value
	// Trigger: GuardSystem | Consumer: Loop metrics | Payload: *TransformRestoredPayload
	EventTransformRestored

	// EventGoalReached fires once when the controllable entity enters the maze exit
	// Trigger: GoalSystem | Consumer: Loop | Payload: *GoalReachedPayload
	EventGoalReached
)

func (t EventType) String() string {
	switch t {
	case EventWallContact:
		return "wall_contact"
	case EventDynamicContact:
		return "dynamic_contact"
	case EventCameraState:
		return "camera_state"
	case EventTransformRestored:
		return "transform_restored"
	case EventGoalReached:
		return "goal_reached"
	}
	return "none"
}

// GameEvent is a single queued event stamped with the frame that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// Source returns the entity the event is about, if the payload names one
func (e GameEvent) Source() core.Entity {
	switch p := e.Payload.(type) {
	case *WallContactPayload:
		return p.Entity
	case *DynamicContactPayload:
		return p.Entity
	case *CameraStatePayload:
		return p.Camera
	case *TransformRestoredPayload:
		return p.Entity
	case *GoalReachedPayload:
		return p.Entity
	}
	return core.NoEntity
}
