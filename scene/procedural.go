package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/maze"
)

// groundMargin extends the ground slab past the maze border, in cells
const groundMargin = 2

// ProceduralLoader generates the maze scene from configuration
type ProceduralLoader struct {
	cfg    *config.Config
	maze   *maze.Maze // nil when the maze is disabled
	layout maze.Layout
}

// NewProceduralLoader generates the maze described by cfg
func NewProceduralLoader(cfg *config.Config) *ProceduralLoader {
	l := &ProceduralLoader{cfg: cfg}
	if cfg.Maze.Enabled {
		l.maze = maze.Generate(maze.Config{
			Width:    cfg.Maze.Width,
			Height:   cfg.Maze.Height,
			Braiding: cfg.Maze.Braiding,
			Seed:     cfg.Maze.Seed,
		})
		l.layout = maze.LayoutOf(l.maze, cfg.Maze.CellSize, cfg.Maze.WallHeight)
	}
	return l
}

// Maze returns the generated grid and its world layout
func (l *ProceduralLoader) Maze() (*maze.Maze, maze.Layout, bool) {
	return l.maze, l.layout, l.maze != nil
}

func (l *ProceduralLoader) Resolve(name string) (Asset, error) {
	switch name {
	case AssetGround:
		return l.ground(), nil
	case AssetPlayer:
		return l.player(), nil
	case AssetMaze:
		if l.maze == nil {
			return Asset{}, &AssetError{Name: name, Err: ErrNotFound}
		}
		return Asset{
			Transform: component.NewTransform(mgl32.Vec3{}),
			Geometry:  component.MeshCollider(maze.BuildMesh(l.maze, l.layout)),
		}, nil
	case AssetGoal:
		if l.maze == nil {
			return Asset{}, &AssetError{Name: name, Err: ErrNotFound}
		}
		return Asset{
			Transform: component.NewTransform(l.layout.Center(l.maze.Exit)),
			Glyph:     '>',
		}, nil
	}
	return Asset{}, &AssetError{Name: name, Err: ErrNotFound}
}

// ground is a slab whose top face is the y=0 plane
func (l *ProceduralLoader) ground() Asset {
	hx, hz := float32(groundMargin*4), float32(groundMargin*4)
	if l.maze != nil {
		ex, ez := l.layout.Extent()
		margin := groundMargin * l.layout.CellSize
		hx, hz = ex+margin, ez+margin
	}
	return Asset{
		Transform: component.NewTransform(mgl32.Vec3{0, -0.5, 0}),
		Geometry:  component.CuboidCollider(mgl32.Vec3{hx, 0.5, hz}, true),
	}
}

// player rests on the ground at the start cell, or the origin without a maze
func (l *ProceduralLoader) player() Asset {
	r := l.cfg.Player.Radius
	pos := mgl32.Vec3{0, r, 0}
	if l.maze != nil {
		pos = l.layout.Center(l.maze.Start).Add(mgl32.Vec3{0, r, 0})
	}
	return Asset{
		Transform: component.NewTransform(pos),
		Geometry:  component.SphereCollider(r),
		Glyph:     '@',
	}
}
