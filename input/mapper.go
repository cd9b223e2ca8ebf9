package input

// Mapper converts device state into a movement intent
type Mapper struct {
	device Device
}

// NewMapper creates a mapper reading from device; device may be nil when only Map is used
func NewMapper(device Device) *Mapper {
	return &Mapper{device: device}
}

// Poll reads the device and maps the current frame's state; never blocks
func (m *Mapper) Poll() MovementIntent {
	if m.device == nil {
		return MovementIntent{}
	}
	return m.Map(m.device.Snapshot())
}

// Map converts one snapshot
func (m *Mapper) Map(s Snapshot) MovementIntent {
	return MovementIntent{
		Forward: weight(s.Pressed(KeyForward)),
		Back:    weight(s.Pressed(KeyBack)),
		Left:    weight(s.Pressed(KeyLeft)),
		Right:   weight(s.Pressed(KeyRight)),
	}
}

func weight(pressed bool) float32 {
	if pressed {
		return 1
	}
	return 0
}
