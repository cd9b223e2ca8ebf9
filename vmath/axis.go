package vmath

import "strings"

// Axis identifies one degree of freedom of a rigid body
type Axis uint8

const (
	TranslateX Axis = iota
	TranslateY
	TranslateZ
	RotateX
	RotateY
	RotateZ
	axisCount
)

var axisNames = [axisCount]string{
	TranslateX: "translate-x",
	TranslateY: "translate-y",
	TranslateZ: "translate-z",
	RotateX:    "rotate-x",
	RotateY:    "rotate-y",
	RotateZ:    "rotate-z",
}

func (a Axis) String() string {
	if a < axisCount {
		return axisNames[a]
	}
	return "unknown"
}

// ParseAxis accepts the canonical names ("translate-x") and the short forms ("tx", "rz")
func ParseAxis(s string) (Axis, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range axisNames {
		if s == name {
			return Axis(i), true
		}
	}
	if len(s) == 2 && (s[0] == 't' || s[0] == 'r') && s[1] >= 'x' && s[1] <= 'z' {
		a := Axis(s[1] - 'x')
		if s[0] == 'r' {
			a += RotateX
		}
		return a, true
	}
	return 0, false
}

// AxisSet is a bitmask of locked or affected axes
type AxisSet uint8

// LockTranslation and LockRotation are the common whole-group masks
const (
	LockTranslation = AxisSet(1<<TranslateX | 1<<TranslateY | 1<<TranslateZ)
	LockRotation    = AxisSet(1<<RotateX | 1<<RotateY | 1<<RotateZ)
)

// Axes builds a set from individual axes
func Axes(axes ...Axis) AxisSet {
	var s AxisSet
	for _, a := range axes {
		s = s.With(a)
	}
	return s
}

func (s AxisSet) Has(a Axis) bool {
	return s&(1<<a) != 0
}

func (s AxisSet) With(a Axis) AxisSet {
	return s | 1<<a
}

func (s AxisSet) Without(a Axis) AxisSet {
	return s &^ (1 << a)
}

func (s AxisSet) Empty() bool {
	return s == 0
}

func (s AxisSet) String() string {
	if s == 0 {
		return "none"
	}
	parts := make([]string, 0, axisCount)
	for a := Axis(0); a < axisCount; a++ {
		if s.Has(a) {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, "|")
}

// TranslationAxis maps a vector component index (0..2) to its translate axis
func TranslationAxis(i int) Axis {
	return TranslateX + Axis(i)
}
