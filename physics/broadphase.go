package physics

import (
	"math"
	"sort"
)

// maxCellSpan bounds the cells one body may occupy before it is kept out of the grid
const maxCellSpan = 4096

const cellLimit = 1 << 30

type cellKey struct {
	X, Z int32
}

// broadphase is a sparse uniform grid over the XZ plane indexing static bodies
// A body is listed in every cell its bounds cover
type broadphase struct {
	cellSize float32
	cells    map[cellKey][]int
	large    []int    // Bodies spanning more than maxCellSpan cells, always candidates
	stamp    []uint32 // Per-body visit marker for duplicate-free queries
	epoch    uint32
}

func newBroadphase(cellSize float32) *broadphase {
	return &broadphase{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

func (g *broadphase) cellRange(b AABB) (x0, z0, x1, z1 int32) {
	inv := float64(1 / g.cellSize)
	return g.cell(b.Min[0], inv), g.cell(b.Min[2], inv), g.cell(b.Max[0], inv), g.cell(b.Max[2], inv)
}

func (g *broadphase) cell(v float32, inv float64) int32 {
	c := math.Floor(float64(v) * inv)
	return int32(math.Max(-cellLimit, math.Min(cellLimit, c)))
}

func span(x0, z0, x1, z1 int32) int64 {
	return (int64(x1) - int64(x0) + 1) * (int64(z1) - int64(z0) + 1)
}

// insert indexes body idx under its bounds
func (g *broadphase) insert(idx int, b AABB) {
	for len(g.stamp) <= idx {
		g.stamp = append(g.stamp, 0)
	}
	x0, z0, x1, z1 := g.cellRange(b)
	if span(x0, z0, x1, z1) > maxCellSpan {
		g.large = append(g.large, idx)
		return
	}
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			k := cellKey{x, z}
			g.cells[k] = append(g.cells[k], idx)
		}
	}
}

// query returns the sorted indices of bodies whose cells intersect b
func (g *broadphase) query(b AABB, out []int) []int {
	g.epoch++
	for _, idx := range g.large {
		g.stamp[idx] = g.epoch
		out = append(out, idx)
	}
	x0, z0, x1, z1 := g.cellRange(b)
	if span(x0, z0, x1, z1) > maxCellSpan {
		// Region too wide for a cell walk, every body is a candidate
		out = out[:0]
		for idx := range g.stamp {
			out = append(out, idx)
		}
		return out
	}
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			for _, idx := range g.cells[cellKey{x, z}] {
				if g.stamp[idx] == g.epoch {
					continue
				}
				g.stamp[idx] = g.epoch
				out = append(out, idx)
			}
		}
	}
	sort.Ints(out)
	return out
}
