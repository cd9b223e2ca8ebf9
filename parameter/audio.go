package parameter

import "time"

// Audio cues
const (
	AudioSampleRate = 44100

	// BumpFrequency is the wall contact tone in Hz
	BumpFrequency = 180.0

	// BumpDuration is the length of one wall contact tone
	BumpDuration = 60 * time.Millisecond

	// BumpCooldown suppresses repeats while sliding along a wall
	BumpCooldown = 250 * time.Millisecond
)
