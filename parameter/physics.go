package parameter

// Collision
const (
	// ResolveMaxIterations bounds per-axis pull-back passes against stacked statics
	ResolveMaxIterations = 8

	// ResolveMaxSubsteps bounds the sweep steps per axis for one move
	ResolveMaxSubsteps = 64

	// BroadphaseCellSize is the XZ edge length of a broadphase grid cell in world units
	BroadphaseCellSize = 4.0
)

// Player defaults
const (
	PlayerSpeed  = 9.0
	PlayerRadius = 0.5
)
