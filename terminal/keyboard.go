package terminal

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/parameter"
)

// Keyboard turns tcell events into input snapshots
// Keys stay held for KeyHoldDecay after their last press or auto-repeat
type Keyboard struct {
	mu     sync.Mutex
	keymap *input.KeyMap
	now    func() time.Time
	hold   time.Duration

	seen [16]time.Time // Last press per logical key, zero when never pressed

	mouseX, mouseY int
	mouseKnown     bool
	dx, dy         float32
	scroll         float32
}

// NewKeyboard creates a device translating physical keys through km
func NewKeyboard(km *input.KeyMap) *Keyboard {
	return &Keyboard{
		keymap: km,
		now:    time.Now,
		hold:   parameter.KeyHoldDecay,
	}
}

// Run reads events from s until ctx is done or s is finalized
func (k *Keyboard) Run(ctx context.Context, s tcell.Screen) {
	events := make(chan tcell.Event, parameter.EventBacklog)
	core.Go(func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			k.HandleEvent(ev)
		}
	}
}

// HandleEvent records one device event
func (k *Keyboard) HandleEvent(ev tcell.Event) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if key, ok := k.keymap.Lookup(PhysicalName(ev)); ok {
			k.seen[key] = k.now()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if k.mouseKnown {
			k.dx += float32(x - k.mouseX)
			k.dy += float32(y - k.mouseY)
		}
		k.mouseX, k.mouseY, k.mouseKnown = x, y, true

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			k.scroll++
		}
		if buttons&tcell.WheelDown != 0 {
			k.scroll--
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			k.seen = [16]time.Time{}
			k.mouseKnown = false
		}
	}
}

// Snapshot returns held keys and consumes accumulated mouse and scroll deltas
func (k *Keyboard) Snapshot() input.Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	var snap input.Snapshot
	for i, t := range k.seen {
		if !t.IsZero() && now.Sub(t) < k.hold {
			snap.Keys = snap.Keys.With(input.Key(i))
		}
	}
	snap.MouseDX, snap.MouseDY, snap.Scroll = k.dx, k.dy*parameter.CellAspect, k.scroll
	k.dx, k.dy, k.scroll = 0, 0, 0
	return snap
}

// PhysicalName names a key event the way keymaps spell it
func PhysicalName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		name := strings.ToLower(string(ev.Rune()))
		switch {
		case ev.Modifiers()&tcell.ModCtrl != 0:
			return "ctrl+" + name
		case ev.Modifiers()&tcell.ModAlt != 0:
			return "alt+" + name
		}
		return name
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+ev.Key()-tcell.KeyCtrlA))
	}
	return strings.ToLower(ev.Name())
}
