package system

import (
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/parameter"
)

// InputSystem converts the frame's input snapshot into the movement intent
type InputSystem struct {
	world  *engine.World
	mapper *input.Mapper
}

// NewInputSystem creates the input mapping system
func NewInputSystem(world *engine.World) *InputSystem {
	return &InputSystem{
		world:  world,
		mapper: input.NewMapper(nil),
	}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	frame := s.world.Resources.Frame
	frame.Intent = s.mapper.Map(frame.Input)
}
