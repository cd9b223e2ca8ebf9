package input

// Snapshot is the device state for one frame
type Snapshot struct {
	Keys    KeySet
	MouseDX float32 // Look input since the previous snapshot
	MouseDY float32
	Scroll  float32 // Positive zooms in
}

// Pressed reports whether k is held in this snapshot
func (s Snapshot) Pressed(k Key) bool {
	return s.Keys.Has(k)
}

// Device supplies the current input state; a pure function of "now"
// Implementations must return immediately
type Device interface {
	Snapshot() Snapshot
}

// StaticDevice always reports the same snapshot
type StaticDevice Snapshot

func (d StaticDevice) Snapshot() Snapshot {
	return Snapshot(d)
}
