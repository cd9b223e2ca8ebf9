package parameter

// Camera rig defaults
const (
	// CameraOffsetX/Y/Z place the camera relative to its target, matching the original (35,35,35) view of the origin
	CameraOffsetX = 35.0
	CameraOffsetY = 35.0
	CameraOffsetZ = 35.0

	CameraZoomMin = 4.0
	CameraZoomMax = 80.0

	// CameraSensitivity is orbit radians per unit of mouse delta
	CameraSensitivity = 0.01

	// CameraZoomStep is distance change per zoom key press or scroll unit
	CameraZoomStep = 2.0

	// CameraPitchLimit keeps orbit pitch away from the poles where look-at degenerates
	CameraPitchLimit = 1.45
)
