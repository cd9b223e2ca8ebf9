package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/parameter"
)

// Screen draws frames as a top-down view centred where the camera looks
// Screen up is world -X (forward), screen right is world -Z (right)
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	title  string
	clear  tcell.Style
	wall   tcell.Style
	item   tcell.Style
	status tcell.Style

	maze   *maze.Maze
	layout maze.Layout

	locked bool
	frame  int64
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen, title string, rgb [3]uint8) *Screen {
	bg := tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2]))
	base := tcell.StyleDefault.Background(bg)
	return &Screen{
		screen: s,
		title:  title,
		clear:  base,
		wall:   base.Foreground(tcell.ColorDarkSlateGray),
		item:   base.Foreground(tcell.ColorBlack).Bold(true),
		status: tcell.StyleDefault.Reverse(true),
	}
}

// SetMaze draws m behind every frame
func (s *Screen) SetMaze(m *maze.Maze, l maze.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maze = m
	s.layout = l
}

// SetCursorLocked hides the terminal cursor and captures mouse motion while locked
func (s *Screen) SetCursorLocked(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = locked
	if locked {
		s.screen.HideCursor()
		s.screen.EnableMouse(tcell.MouseMotionEvents)
	} else {
		s.screen.EnableMouse(tcell.MouseButtonEvents)
	}
}

// CursorLocked reports the last lock state requested
func (s *Screen) CursorLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Present renders f and flips the screen
func (s *Screen) Present(f engine.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame = f.Number
	s.screen.SetStyle(s.clear)
	s.screen.Clear()

	w, h := s.screen.Size()
	v := newView(f, w, h)

	if s.maze != nil {
		s.drawMaze(v, w, h)
	}
	for _, it := range f.Items {
		if it.Glyph == 0 {
			continue
		}
		col, row := v.project(it.Transform.Position)
		if col < 0 || row < 1 || col >= w || row >= h {
			continue
		}
		s.screen.SetContent(col, row, it.Glyph, nil, s.item)
	}

	s.drawStatus(f, w)
	s.screen.Show()
}

// drawMaze fills every screen cell whose ground point lies in a wall cell of the grid
func (s *Screen) drawMaze(v view, w, h int) {
	for row := 1; row < h; row++ {
		for col := 0; col < w; col++ {
			c := s.layout.Locate(v.unproject(col, row))
			if s.maze.In(c) && s.maze.Wall(c) {
				s.screen.SetContent(col, row, '█', nil, s.wall)
			}
		}
	}
}

func (s *Screen) drawStatus(f engine.Frame, w int) {
	text := fmt.Sprintf(" %s  frame %d", s.title, f.Number)
	if f.HasCamera {
		text += "  camera " + f.CameraState.String()
	}
	if s.locked {
		text += "  [locked]"
	}
	for col := 0; col < w; col++ {
		r := ' '
		if col < len(text) {
			r = rune(text[col])
		}
		s.screen.SetContent(col, 0, r, nil, s.status)
	}
}

// view maps world XZ to screen cells around a focus point
type view struct {
	focus            mgl32.Vec3
	scale            float32 // World units per row
	centreX, centreY int
}

func newView(f engine.Frame, w, h int) view {
	v := view{centreX: w / 2, centreY: (h + 1) / 2, scale: 1}
	if !f.HasCamera {
		return v
	}

	cam := f.Camera.Position
	fwd := f.Camera.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	v.focus = cam
	if fwd.Y() < -1e-3 {
		v.focus = cam.Add(fwd.Mul(-cam.Y() / fwd.Y()))
	}

	rows := float32(max(h-1, 1))
	v.scale = cam.Sub(v.focus).Len() / rows
	if v.scale < parameter.ViewMinScale {
		v.scale = parameter.ViewMinScale
	}
	return v
}

func (v view) project(p mgl32.Vec3) (int, int) {
	row := (p.X() - v.focus.X()) / v.scale
	col := -(p.Z() - v.focus.Z()) / v.scale * parameter.CellAspect
	return v.centreX + round(col), v.centreY + round(row)
}

func (v view) unproject(col, row int) mgl32.Vec3 {
	x := v.focus.X() + float32(row-v.centreY)*v.scale
	z := v.focus.Z() - float32(col-v.centreX)*v.scale/parameter.CellAspect
	return mgl32.Vec3{x, 0, z}
}

func round(f float32) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
