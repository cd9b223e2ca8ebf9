package system

import (
	"time"

	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/parameter"
)

// AudioSystem plays a bump cue when the player starts pressing against a wall
// Repeats are suppressed for BumpCooldown of simulation time
type AudioSystem struct {
	world  *engine.World
	player engine.SoundPlayer

	elapsed   time.Duration
	lastBump  time.Duration
	played    bool
	inContact bool
}

// NewAudioSystem creates the audio cue system; player may be nil if audio is disabled
func NewAudioSystem(world *engine.World, player engine.SoundPlayer) *AudioSystem {
	return &AudioSystem{
		world:  world,
		player: player,
	}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update() {
	frame := s.world.Resources.Frame
	s.elapsed += time.Duration(float64(frame.Delta) * float64(time.Second))

	contact := false
	for _, ev := range s.world.Resources.Events.Peek() {
		if ev.Type == event.EventWallContact && ev.Frame == frame.Number {
			contact = true
			break
		}
	}

	rising := contact && !s.inContact
	s.inContact = contact
	if !rising || s.player == nil {
		return
	}
	if s.played && s.elapsed-s.lastBump < parameter.BumpCooldown {
		return
	}
	s.played = true
	s.lastBump = s.elapsed
	s.player.PlayBump()
}
