package maze

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{11, 9, 11, 9},
		{12, 10, 11, 9},
		{0, -4, 3, 3},
		{3, 3, 3, 3},
	}
	for _, tt := range tests {
		m := Generate(Config{Width: tt.w, Height: tt.h, Seed: 1})
		assert.Equal(t, tt.wantW, m.Width)
		assert.Equal(t, tt.wantH, m.Height)
	}
}

func TestGenerateSolvable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m := Generate(Config{Width: 21, Height: 15, Braiding: 0.3, Seed: seed})
		require.NotEmpty(t, m.Solution, "seed %d", seed)
		assert.Equal(t, m.Start, m.Solution[0])
		assert.Equal(t, m.Exit, m.Solution[len(m.Solution)-1])

		for i := 1; i < len(m.Solution); i++ {
			a, b := m.Solution[i-1], m.Solution[i]
			d := abs(a.X-b.X) + abs(a.Y-b.Y)
			assert.Equal(t, 1, d, "path steps are orthogonal neighbours")
			assert.False(t, m.Wall(b))
		}

		// Border stays solid
		for x := 0; x < m.Width; x++ {
			assert.True(t, m.Wall(Cell{x, 0}))
			assert.True(t, m.Wall(Cell{x, m.Height - 1}))
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(Config{Width: 15, Height: 15, Braiding: 0.5, Seed: 42})
	b := Generate(Config{Width: 15, Height: 15, Braiding: 0.5, Seed: 42})
	assert.Equal(t, a.walls, b.walls)
	assert.Equal(t, a.Solution, b.Solution)
}

func TestPerfectMazeIsTree(t *testing.T) {
	m := Generate(Config{Width: 15, Height: 11, Seed: 9})

	// A spanning tree over n open cells has n-1 open adjacencies
	open, links := 0, 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Cell{x, y}
			if m.Wall(c) {
				continue
			}
			open++
			if !m.Wall(Cell{x + 1, y}) {
				links++
			}
			if !m.Wall(Cell{x, y + 1}) {
				links++
			}
		}
	}
	assert.Equal(t, open-1, links)
}

func TestBraidingAddsLoopsWithoutPlazas(t *testing.T) {
	perfect := Generate(Config{Width: 31, Height: 31, Seed: 5})
	braided := Generate(Config{Width: 31, Height: 31, Braiding: 1, Seed: 5})
	assert.Less(t, braided.WallCount(), perfect.WallCount())

	for y := 0; y < braided.Height-1; y++ {
		for x := 0; x < braided.Width-1; x++ {
			square := !braided.Wall(Cell{x, y}) && !braided.Wall(Cell{x + 1, y}) &&
				!braided.Wall(Cell{x, y + 1}) && !braided.Wall(Cell{x + 1, y + 1})
			assert.False(t, square, "2x2 open area at %d,%d", x, y)
		}
	}
}

func TestSolveUnreachable(t *testing.T) {
	m := Generate(Config{Width: 5, Height: 5, Seed: 1})
	assert.Nil(t, m.Solve(Cell{0, 0}, m.Exit), "walls cannot be path ends")
	assert.Equal(t, []Cell{m.Start}, m.Solve(m.Start, m.Start))
}

func TestLayout(t *testing.T) {
	l := Layout{CellSize: 2, WallHeight: 3, Width: 5, Height: 3}

	assert.Equal(t, mgl32.Vec3{-5, 0, -3}, l.Corner(Cell{0, 0}))
	assert.Equal(t, mgl32.Vec3{2, 0, 2}, l.Center(Cell{3, 2}))
	assert.Equal(t, Cell{3, 2}, l.Locate(mgl32.Vec3{1, 0, 1}))
	assert.Equal(t, Cell{-1, 0}, l.Locate(mgl32.Vec3{-5.5, 0, -2}))

	hx, hz := l.Extent()
	assert.Equal(t, float32(5), hx)
	assert.Equal(t, float32(3), hz)
}

func TestBuildMeshSingleWall(t *testing.T) {
	// 3x3 grid with only the middle cell solid
	m := &Maze{Width: 3, Height: 3, walls: make([]bool, 9)}
	m.set(Cell{1, 1}, true)

	mesh := BuildMesh(m, Layout{CellSize: 1, WallHeight: 2, Width: 3, Height: 3})
	assert.Equal(t, 10, mesh.TriangleCount(), "top plus four sides, two triangles each")
	assert.Len(t, mesh.Vertices, 20)

	for _, v := range mesh.Vertices {
		assert.GreaterOrEqual(t, v[1], float32(0))
		assert.InDelta(t, 0, v[0], 0.5+1e-6)
		assert.InDelta(t, 0, v[2], 0.5+1e-6)
	}
}

func TestBuildMeshSkipsSharedFaces(t *testing.T) {
	// Two adjacent wall cells share one face pair that must not be emitted
	m := &Maze{Width: 2, Height: 1, walls: []bool{true, true}}
	mesh := BuildMesh(m, Layout{CellSize: 1, WallHeight: 1, Width: 2, Height: 1})

	// Tops: 2 quads. Sides: 2 outer X faces + 2 faces on -Z + 2 on +Z
	assert.Equal(t, 8*2, mesh.TriangleCount())
	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
