package parameter

import "time"

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Frame timing
const (
	// DefaultFrameRate is the target simulation rate in frames per second
	DefaultFrameRate = 60

	// MaxFrameDelta caps a single frame's elapsed time so a stall does not teleport the player
	MaxFrameDelta = 100 * time.Millisecond
)
