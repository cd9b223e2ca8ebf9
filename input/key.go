package input

import "strings"

// Key is a named logical control, independent of the physical device
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyOrbit      // Held: camera orbits instead of following
	KeyCursorLock // Press: toggle cursor lock on the display
	KeyZoomIn
	KeyZoomOut
	KeyPause
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{
	KeyForward:    "forward",
	KeyBack:       "back",
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyOrbit:      "orbit",
	KeyCursorLock: "cursor_lock",
	KeyZoomIn:     "zoom_in",
	KeyZoomOut:    "zoom_out",
	KeyPause:      "pause",
	KeyQuit:       "quit",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey resolves a logical key name as used in configuration
func ParseKey(s string) (Key, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range keyNames {
		if name == s {
			return Key(i), true
		}
	}
	return 0, false
}

// KeySet is the pressed state of every logical key
type KeySet uint16

// Keys builds a set from individual keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

func (s KeySet) Without(k Key) KeySet {
	return s &^ (1 << k)
}
