package component

// Role markers, used only to select entity subsets in queries

// ControllableComponent marks the entity driven by player input
type ControllableComponent struct{}

// CameraTargetComponent marks the entity the camera rig follows
type CameraTargetComponent struct{}

// GroundComponent marks the ground plane
type GroundComponent struct{}

// MazeComponent marks maze wall geometry
type MazeComponent struct{}
