package system

import (
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/parameter"
)

// PresentSystem hands the final transforms of the frame to the display
type PresentSystem struct {
	world   *engine.World
	display engine.Display

	items []engine.RenderItem
}

// NewPresentSystem creates the presentation system; display may be nil for headless runs
func NewPresentSystem(world *engine.World, display engine.Display) *PresentSystem {
	return &PresentSystem{
		world:   world,
		display: display,
	}
}

func (s *PresentSystem) Name() string {
	return "present"
}

func (s *PresentSystem) Priority() int {
	return parameter.PriorityPresent
}

func (s *PresentSystem) Update() {
	if s.display == nil {
		return
	}
	c := s.world.Components

	entities := s.world.Query().
		With(c.Renderable).
		With(c.Transform).
		Execute()

	s.items = s.items[:0]
	for _, e := range entities {
		r, _ := c.Renderable.Get(e)
		t, _ := c.Transform.Get(e)
		s.items = append(s.items, engine.RenderItem{
			Entity:    e,
			Name:      r.Name,
			Glyph:     r.Glyph,
			Transform: t,
		})
	}

	f := engine.Frame{
		Number: s.world.Resources.Frame.Number,
		Items:  s.items,
	}
	if cam, rig, ok := c.Rig.First(); ok {
		if t, ok := c.Transform.Get(cam); ok {
			f.Camera = t
			f.CameraState = rig.State
			f.HasCamera = true
		}
	}
	s.display.Present(f)
}
