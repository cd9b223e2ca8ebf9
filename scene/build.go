package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/labyrinth/component"
	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/physics"
	"github.com/lixenwraith/labyrinth/vmath"
)

// ErrCorrupt is wrapped by AssetError when a resolved asset has unusable values
var ErrCorrupt = errors.New("corrupt asset")

// Report lists the entities created by Build and every recovered problem
type Report struct {
	Ground, Maze, Player, Goal, Camera core.Entity
	Warnings                           []string
}

// Build creates the scene entities in w and registers their colliders with cw
// Asset and collider failures degrade to collider-less entities and are reported, never returned
// Returns an error only for invalid configuration
func Build(cfg *config.Config, loader Loader, w *engine.World, cw *physics.CollisionWorld, logger zerolog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	locked, err := cfg.LockedAxes()
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	b := &builder{
		cfg:       cfg,
		loader:    loader,
		world:     w,
		collision: cw,
		logger:    logger,
		report:    &Report{},
	}
	c := w.Components

	b.report.Ground = b.static(AssetGround, func(e core.Entity) { c.Ground.Set(e, component.GroundComponent{}) })
	b.report.Maze = b.static(AssetMaze, func(e core.Entity) { c.Maze.Set(e, component.MazeComponent{}) })
	b.report.Player = b.player(locked)
	b.report.Goal = b.goal()
	b.report.Camera = b.camera(b.report.Player)

	logger.Info().
		Int("entities", w.EntityCount()).
		Int("static_bodies", cw.StaticCount()).
		Int("warnings", len(b.report.Warnings)).
		Msg("scene built")
	return b.report, nil
}

type builder struct {
	cfg       *config.Config
	loader    Loader
	world     *engine.World
	collision *physics.CollisionWorld
	logger    zerolog.Logger
	report    *Report
}

func (b *builder) warn(name string, err error) {
	b.report.Warnings = append(b.report.Warnings, err.Error())
	b.logger.Warn().Str("asset", name).Err(err).Msg("scene asset degraded")
}

// resolve loads name and repairs what can be repaired
// ok is false when the entity must be a render-only placeholder
func (b *builder) resolve(name string, fallback mgl32.Vec3) (Asset, bool) {
	asset, err := b.loader.Resolve(name)
	if err != nil {
		var ae *AssetError
		if !errors.As(err, &ae) {
			err = &AssetError{Name: name, Err: err}
		}
		b.warn(name, err)
		return Asset{Transform: component.NewTransform(fallback)}, false
	}

	if !asset.Transform.Finite() {
		b.warn(name, &AssetError{Name: name, Err: fmt.Errorf("%w: non-finite transform", ErrCorrupt)})
		return Asset{Transform: component.NewTransform(fallback), Glyph: asset.Glyph}, false
	}
	if !asset.Transform.Valid() {
		asset.Transform.Scale = vmath.V3Abs(asset.Transform.Scale)
		b.warn(name, &AssetError{Name: name, Err: fmt.Errorf("%w: negative scale replaced by its absolute value", ErrCorrupt)})
	}
	return asset, true
}

// place creates the entity with its transform and renderable marker
func (b *builder) place(name string, asset Asset) core.Entity {
	w := b.world
	e := w.CreateEntity()
	w.Components.Transform.Set(e, asset.Transform)
	w.Components.Renderable.Set(e, component.RenderableComponent{Name: name, Glyph: asset.Glyph})
	return e
}

func (b *builder) static(name string, tag func(core.Entity)) core.Entity {
	asset, ok := b.resolve(name, mgl32.Vec3{})
	e := b.place(name, asset)
	tag(e)
	if !ok || asset.Geometry.Kind == component.ShapeNone {
		return e
	}

	geom := asset.Geometry
	geom.Static = true
	if err := b.collision.RegisterStatic(e, geom, asset.Transform); err != nil {
		b.warn(name, err)
		return e
	}
	b.world.Components.Collider.Set(e, geom)
	return e
}

// player always collides as a sphere of the configured radius
func (b *builder) player(locked vmath.AxisSet) core.Entity {
	r := b.cfg.Player.Radius
	asset, _ := b.resolve(AssetPlayer, mgl32.Vec3{0, r, 0})
	if asset.Glyph == 0 {
		asset.Glyph = '@'
	}

	w := b.world
	c := w.Components
	e := b.place(AssetPlayer, asset)
	c.Body.Set(e, component.PhysicsBodyComponent{Speed: b.cfg.Player.Speed, Locked: locked})
	c.Controllable.Set(e, component.ControllableComponent{})
	c.CameraTarget.Set(e, component.CameraTargetComponent{})

	geom := component.SphereCollider(r)
	if err := b.collision.RegisterDynamic(e, geom, asset.Transform); err != nil {
		b.warn(AssetPlayer, err)
		return e
	}
	c.Collider.Set(e, geom)
	return e
}

// goal without a resolvable asset is a render-only placeholder that never triggers
func (b *builder) goal() core.Entity {
	asset, ok := b.resolve(AssetGoal, mgl32.Vec3{})
	e := b.place(AssetGoal, asset)
	if ok {
		b.world.Components.Goal.Set(e, component.GoalComponent{Radius: b.cfg.Maze.CellSize / 2})
	}
	return e
}

// camera starts at target plus offset, looking at the target
func (b *builder) camera(target core.Entity) core.Entity {
	cfg := b.cfg
	offset := cfg.CameraOffset()
	distance := cfg.CameraDistance()

	focus := mgl32.Vec3{}
	if t, ok := b.world.Components.Transform.Get(target); ok {
		focus = t.Position
	}

	tr := component.NewTransform(focus.Add(offset.Normalize().Mul(distance)))
	if q, ok := vmath.LookRotation(focus.Sub(tr.Position)); ok {
		tr.Rotation = q
	}

	w := b.world
	e := w.CreateEntity()
	w.Components.Transform.Set(e, tr)
	w.Components.Rig.Set(e, component.CameraRigComponent{
		Offset:       offset,
		Zoom:         component.ZoomBounds{Min: cfg.Camera.ZoomMin, Max: cfg.Camera.ZoomMax},
		Distance:     distance,
		OrbitEnabled: cfg.Camera.Orbit,
		Sensitivity:  cfg.Camera.Sensitivity,
		ZoomStep:     cfg.Camera.ZoomStep,
	})
	return e
}
