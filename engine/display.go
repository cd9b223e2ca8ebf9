package engine

import (
	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/core"
)

// RenderItem is one renderable entity's final transform for the frame
type RenderItem struct {
	Entity    core.Entity
	Name      string
	Glyph     rune
	Transform component.TransformComponent
}

// Frame is the per-frame hand-off to the display
// Items is reused by the next frame; displays must copy what they keep
type Frame struct {
	Number      int64
	Items       []RenderItem
	Camera      component.TransformComponent
	CameraState component.CameraState
	HasCamera   bool
}

// Display receives final transforms; the core never reads back from it
type Display interface {
	Present(f Frame)
}

// CursorLocker is the display-side effect of camera cursor lock toggling
type CursorLocker interface {
	SetCursorLocked(locked bool)
}

// SoundPlayer plays short cues requested by systems
type SoundPlayer interface {
	PlayBump()
}
