// Package maze generates grid mazes and converts them to collision meshes
package maze

import (
	"math/rand"
	"time"
)

// Cell is a grid coordinate; X is the column, Y the row
type Cell struct {
	X, Y int
}

var (
	steps = [4]Cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumps = [4]Cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
)

// Config controls maze generation
type Config struct {
	Width, Height int // Cells, rounded down to odd, minimum 3

	// Braiding is the chance (0..1) that a dead end is opened into a loop
	// Openings that would create 2x2 open areas or free-standing wall cells are skipped
	Braiding float64

	Seed int64 // 0 picks a time based seed
}

// Maze is a generated wall grid with an entrance, an exit and a shortest route between them
type Maze struct {
	Width, Height int
	Start, Exit   Cell
	Solution      []Cell // Start to Exit inclusive, nil when unreachable

	walls []bool // Row-major
}

// Generate builds a maze with a randomized depth-first carve, then braids dead ends
func Generate(cfg Config) *Maze {
	w, h := oddAtLeast3(cfg.Width), oddAtLeast3(cfg.Height)
	m := &Maze{
		Width:  w,
		Height: h,
		Start:  Cell{1, 1},
		Exit:   Cell{w - 2, h - 2},
		walls:  make([]bool, w*h),
	}
	for i := range m.walls {
		m.walls[i] = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m.carve(rng)
	if cfg.Braiding > 0 {
		m.braid(cfg.Braiding, rng)
	}
	m.Solution = m.Solve(m.Start, m.Exit)
	return m
}

// Wall reports whether c is solid; cells outside the grid are solid
func (m *Maze) Wall(c Cell) bool {
	if !m.In(c) {
		return true
	}
	return m.walls[c.Y*m.Width+c.X]
}

// In reports whether c lies inside the grid
func (m *Maze) In(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// WallCount returns the number of solid cells
func (m *Maze) WallCount() int {
	n := 0
	for _, w := range m.walls {
		if w {
			n++
		}
	}
	return n
}

func (m *Maze) set(c Cell, wall bool) {
	m.walls[c.Y*m.Width+c.X] = wall
}

// carve opens a spanning tree over the odd cells starting at Start
func (m *Maze) carve(rng *rand.Rand) {
	stack := []Cell{m.Start}
	m.set(m.Start, false)

	next := make([]Cell, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		next = next[:0]
		for _, j := range jumps {
			n := Cell{cur.X + j.X, cur.Y + j.Y}
			if n.X > 0 && n.X < m.Width-1 && n.Y > 0 && n.Y < m.Height-1 && m.Wall(n) {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		m.set(Cell{(cur.X + n.X) / 2, (cur.Y + n.Y) / 2}, false)
		m.set(n, false)
		stack = append(stack, n)
	}
}

// braid opens a wall next to each dead end with the given probability
func (m *Maze) braid(p float64, rng *rand.Rand) {
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			c := Cell{x, y}
			if m.Wall(c) || m.exits(c) != 1 || rng.Float64() >= p {
				continue
			}

			var options []Cell
			for _, j := range jumps {
				n := Cell{x + j.X, y + j.Y}
				gap := Cell{x + j.X/2, y + j.Y/2}
				if m.In(n) && !m.Wall(n) && m.Wall(gap) && m.canOpen(gap) {
					options = append(options, gap)
				}
			}
			if len(options) > 0 {
				m.set(options[rng.Intn(len(options))], false)
			}
		}
	}
}

func (m *Maze) exits(c Cell) int {
	n := 0
	for _, s := range steps {
		if !m.Wall(Cell{c.X + s.X, c.Y + s.Y}) {
			n++
		}
	}
	return n
}

// canOpen reports whether opening c keeps the maze free of 2x2 open squares
// and of wall cells with no wall neighbour
func (m *Maze) canOpen(c Cell) bool {
	open := func(x, y int) bool {
		cc := Cell{x, y}
		return m.In(cc) && !m.Wall(cc)
	}
	for _, q := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if open(c.X+q[0], c.Y) && open(c.X, c.Y+q[1]) && open(c.X+q[0], c.Y+q[1]) {
			return false
		}
	}

	for _, s := range steps {
		n := Cell{c.X + s.X, c.Y + s.Y}
		if !m.In(n) || !m.Wall(n) {
			continue
		}
		linked := false
		for _, s2 := range steps {
			nn := Cell{n.X + s2.X, n.Y + s2.Y}
			if nn != c && m.In(nn) && m.Wall(nn) {
				linked = true
				break
			}
		}
		if !linked {
			return false
		}
	}
	return true
}

// Solve returns a shortest open path from a to b inclusive, nil when there is none
func (m *Maze) Solve(a, b Cell) []Cell {
	if m.Wall(a) || m.Wall(b) {
		return nil
	}

	prev := make(map[Cell]Cell, m.Width*m.Height/2)
	prev[a] = a
	queue := []Cell{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			break
		}
		for _, s := range steps {
			n := Cell{cur.X + s.X, cur.Y + s.Y}
			if _, seen := prev[n]; seen || m.Wall(n) {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}

	if _, ok := prev[b]; !ok {
		return nil
	}
	var path []Cell
	for c := b; c != a; c = prev[c] {
		path = append(path, c)
	}
	path = append(path, a)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func oddAtLeast3(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
