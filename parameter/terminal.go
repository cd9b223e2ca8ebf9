package parameter

import "time"

// Terminal adapter
const (
	// KeyHoldDecay keeps a key held after its last press or repeat event
	// Terminals report presses only, so release is inferred from silence
	KeyHoldDecay = 150 * time.Millisecond

	// CellAspect is glyph height over width
	CellAspect = 2.0

	// ViewMinScale bounds world units per row at maximum zoom
	ViewMinScale = 0.05

	// EventBacklog buffers device events between polls
	EventBacklog = 100
)
