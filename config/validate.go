package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/vmath"
)

// ErrInvalid is matched by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Error is a configuration value that would leave the simulation undefined
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

func invalid(field, format string, args ...any) error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate reports every invalid field joined into one error
func (c *Config) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := c.ClearRGB(); err != nil {
		add(err)
	}

	if !(c.Player.Speed > 0) || !vmath.Finite32(c.Player.Speed) {
		add(invalid("player.speed", "must be positive, got %v", c.Player.Speed))
	}
	if !(c.Player.Radius > 0) || !vmath.Finite32(c.Player.Radius) {
		add(invalid("player.radius", "must be positive, got %v", c.Player.Radius))
	}
	if _, err := c.LockedAxes(); err != nil {
		add(err)
	}

	if len(c.Camera.Offset) != 3 {
		add(invalid("camera.offset", "needs 3 components, got %d", len(c.Camera.Offset)))
	} else if v := c.CameraOffset(); !vmath.V3Finite(v) || v.Len() < vmath.Epsilon32 {
		add(invalid("camera.offset", "must be finite and non-zero"))
	}
	nonNegative := func(field string, v float32) bool {
		if !vmath.Finite32(v) || v < 0 {
			add(invalid(field, "must be finite and not negative, got %v", v))
			return false
		}
		return true
	}
	minOK := nonNegative("camera.zoomMin", c.Camera.ZoomMin)
	maxOK := nonNegative("camera.zoomMax", c.Camera.ZoomMax)
	if minOK && maxOK && c.Camera.ZoomMin > c.Camera.ZoomMax {
		add(invalid("camera.zoomMax", "zoom range [%v, %v] is unreachable", c.Camera.ZoomMin, c.Camera.ZoomMax))
	}
	nonNegative("camera.distance", c.Camera.Distance)
	nonNegative("camera.sensitivity", c.Camera.Sensitivity)
	nonNegative("camera.zoomStep", c.Camera.ZoomStep)

	if c.Maze.Enabled {
		if c.Maze.Width < 3 || c.Maze.Height < 3 {
			add(invalid("maze", "size %dx%d is below 3x3", c.Maze.Width, c.Maze.Height))
		}
		if !(c.Maze.CellSize > 0) || !vmath.Finite32(c.Maze.CellSize) {
			add(invalid("maze.cellSize", "must be positive, got %v", c.Maze.CellSize))
		} else if c.Maze.CellSize < 2*c.Player.Radius {
			add(invalid("maze.cellSize", "%v is narrower than the player (radius %v)", c.Maze.CellSize, c.Player.Radius))
		}
		if !(c.Maze.WallHeight > 0) || !vmath.Finite32(c.Maze.WallHeight) {
			add(invalid("maze.wallHeight", "must be positive, got %v", c.Maze.WallHeight))
		}
		if !(c.Maze.Braiding >= 0 && c.Maze.Braiding <= 1) {
			add(invalid("maze.braiding", "must be within [0, 1], got %v", c.Maze.Braiding))
		}
	}

	if _, err := input.NewKeyMap(c.Input.Bindings); err != nil {
		add(&Error{Field: "input.bindings", Reason: err.Error()})
	}

	if c.Sim.FrameRate <= 0 || c.Sim.FrameRate > 1000 {
		add(invalid("sim.frameRate", "must be within 1..1000, got %d", c.Sim.FrameRate))
	}

	return errors.Join(errs...)
}

// LockedAxes parses Player.LockedAxes
func (c *Config) LockedAxes() (vmath.AxisSet, error) {
	var set vmath.AxisSet
	for _, name := range c.Player.LockedAxes {
		a, ok := vmath.ParseAxis(name)
		if !ok {
			return 0, invalid("player.lockedAxes", "unknown axis %q", name)
		}
		set = set.With(a)
	}
	return set, nil
}

// CameraOffset returns the offset as a vector, zero when malformed
func (c *Config) CameraOffset() mgl32.Vec3 {
	if len(c.Camera.Offset) != 3 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{c.Camera.Offset[0], c.Camera.Offset[1], c.Camera.Offset[2]}
}

// CameraDistance returns the initial zoom distance clamped to the zoom range
func (c *Config) CameraDistance() float32 {
	d := c.Camera.Distance
	if d == 0 {
		d = c.CameraOffset().Len()
	}
	return vmath.Clamp32(d, c.Camera.ZoomMin, c.Camera.ZoomMax)
}

// ClearRGB parses Window.ClearColor
func (c *Config) ClearRGB() ([3]uint8, error) {
	var rgb [3]uint8
	s := c.Window.ClearColor
	if len(s) != 7 || s[0] != '#' {
		return rgb, invalid("window.clearColor", "want #rrggbb, got %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rgb[0], &rgb[1], &rgb[2]); err != nil {
		return rgb, invalid("window.clearColor", "want #rrggbb, got %q", s)
	}
	return rgb, nil
}

// KeyMap builds the key bindings; valid after Validate succeeded
func (c *Config) KeyMap() (*input.KeyMap, error) {
	return input.NewKeyMap(c.Input.Bindings)
}
