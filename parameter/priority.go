package parameter

// System Execution Priorities (lower runs first)
// The core order Input -> Motion -> Collision -> Camera is fixed
const (
	PriorityInput     = 10
	PriorityMotion    = 20
	PriorityCollision = 30 // After motion, resolves proposed positions
	PriorityGoal      = 40 // After collision, sees corrected positions
	PriorityCamera    = 50 // Reads the corrected target transform
	PriorityGuard     = 60 // After all writers, rolls back non-finite transforms
	PriorityAudio     = 70 // Observes contact events of this frame
	PriorityPresent   = 100
)
