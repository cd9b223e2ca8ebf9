package maze

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/component"
)

// Layout places grid cells on the world XZ plane with the maze centered on the origin
// Grid X maps to world X, grid Y maps to world Z
type Layout struct {
	CellSize   float32
	WallHeight float32
	Width      int
	Height     int
}

// LayoutOf returns the layout of m at the given cell size and wall height
func LayoutOf(m *Maze, cellSize, wallHeight float32) Layout {
	return Layout{CellSize: cellSize, WallHeight: wallHeight, Width: m.Width, Height: m.Height}
}

// Corner returns the world position of the minimum corner of c on the ground
func (l Layout) Corner(c Cell) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.X)*l.CellSize - float32(l.Width)*l.CellSize/2,
		0,
		float32(c.Y)*l.CellSize - float32(l.Height)*l.CellSize/2,
	}
}

// Center returns the world position of the middle of c on the ground
func (l Layout) Center(c Cell) mgl32.Vec3 {
	half := l.CellSize / 2
	return l.Corner(c).Add(mgl32.Vec3{half, 0, half})
}

// Locate returns the cell containing world position p
func (l Layout) Locate(p mgl32.Vec3) Cell {
	ox := float32(l.Width) * l.CellSize / 2
	oz := float32(l.Height) * l.CellSize / 2
	return Cell{floor((p[0] + ox) / l.CellSize), floor((p[2] + oz) / l.CellSize)}
}

// Extent returns the world half size of the grid on X and Z
func (l Layout) Extent() (float32, float32) {
	return float32(l.Width) * l.CellSize / 2, float32(l.Height) * l.CellSize / 2
}

func floor(v float32) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	return i
}

// BuildMesh converts the wall cells into a triangle surface
// Each wall cell gets a top face and a side face toward every open or outside neighbour;
// faces shared by two wall cells and the bottom are omitted. Faces wind counter-clockwise
// seen from outside
func BuildMesh(m *Maze, l Layout) *component.Mesh {
	b := &meshBuilder{}
	h := l.WallHeight
	s := l.CellSize

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Cell{x, y}
			if !m.Wall(c) {
				continue
			}
			o := l.Corner(c)
			x0, x1 := o[0], o[0]+s
			z0, z1 := o[2], o[2]+s

			b.quad(
				mgl32.Vec3{x0, h, z0}, mgl32.Vec3{x0, h, z1},
				mgl32.Vec3{x1, h, z1}, mgl32.Vec3{x1, h, z0},
			)
			if m.faceOpen(Cell{x, y - 1}) { // -Z
				b.quad(
					mgl32.Vec3{x1, 0, z0}, mgl32.Vec3{x0, 0, z0},
					mgl32.Vec3{x0, h, z0}, mgl32.Vec3{x1, h, z0},
				)
			}
			if m.faceOpen(Cell{x, y + 1}) { // +Z
				b.quad(
					mgl32.Vec3{x0, 0, z1}, mgl32.Vec3{x1, 0, z1},
					mgl32.Vec3{x1, h, z1}, mgl32.Vec3{x0, h, z1},
				)
			}
			if m.faceOpen(Cell{x - 1, y}) { // -X
				b.quad(
					mgl32.Vec3{x0, 0, z0}, mgl32.Vec3{x0, 0, z1},
					mgl32.Vec3{x0, h, z1}, mgl32.Vec3{x0, h, z0},
				)
			}
			if m.faceOpen(Cell{x + 1, y}) { // +X
				b.quad(
					mgl32.Vec3{x1, 0, z1}, mgl32.Vec3{x1, 0, z0},
					mgl32.Vec3{x1, h, z0}, mgl32.Vec3{x1, h, z1},
				)
			}
		}
	}
	return &component.Mesh{Vertices: b.vertices, Indices: b.indices}
}

// faceOpen reports whether a wall face toward n is visible
func (m *Maze) faceOpen(n Cell) bool {
	return !m.In(n) || !m.Wall(n)
}

type meshBuilder struct {
	vertices []mgl32.Vec3
	indices  []uint32
}

// quad appends a b c d as two triangles sharing the a-c diagonal
func (b *meshBuilder) quad(a, bb, c, d mgl32.Vec3) {
	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices, a, bb, c, d)
	b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)
}
