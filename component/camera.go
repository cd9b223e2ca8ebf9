package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/core"
)

// CameraState is the follow-camera mode
type CameraState uint8

const (
	// CameraFree is the startup state before any target is observed
	CameraFree CameraState = iota
	// CameraFollowing derives position from target, offset and zoom distance
	CameraFollowing
	// CameraOrbiting is entered while the orbit trigger is held; look input rotates about the target
	CameraOrbiting
)

func (s CameraState) String() string {
	switch s {
	case CameraFollowing:
		return "following"
	case CameraOrbiting:
		return "orbiting"
	}
	return "free"
}

// ZoomBounds limits camera-to-target distance, inclusive
type ZoomBounds struct {
	Min, Max float32
}

// Clamp limits d to the bounds
func (z ZoomBounds) Clamp(d float32) float32 {
	if d < z.Min {
		return z.Min
	}
	if d > z.Max {
		return z.Max
	}
	return d
}

// CameraRigComponent holds third-person camera state
// Target is a weak reference: lookup only, the rig never owns it
type CameraRigComponent struct {
	Target       core.Entity
	Offset       mgl32.Vec3 // Direction (and default length) from target to camera
	Zoom         ZoomBounds
	Distance     float32 // Current camera-to-target distance
	Yaw, Pitch   float32 // Orbit angles in radians applied to Offset
	OrbitEnabled bool
	CursorLocked bool
	State        CameraState
	Sensitivity  float32 // Radians per unit of mouse delta
	ZoomStep     float32 // Distance change per zoom key press or scroll unit
}
