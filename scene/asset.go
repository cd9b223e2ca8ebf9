// Package scene resolves named assets and populates a world with the maze scene
package scene

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/labyrinth/component"
)

// Scene asset names
const (
	AssetGround = "ground"
	AssetPlayer = "player"
	AssetMaze   = "maze"
	AssetGoal   = "goal"
)

// ErrNotFound is wrapped by AssetError when a loader has no such asset
var ErrNotFound = errors.New("asset not found")

// Asset is a resolved scene asset: placement plus collision geometry
// Geometry.Kind ShapeNone marks a render-only asset
type Asset struct {
	Transform component.TransformComponent
	Geometry  component.ColliderComponent
	Glyph     rune // Terminal representation, 0 for none
}

// AssetError reports a missing or corrupt asset
type AssetError struct {
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %q: %v", e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// Loader resolves scene assets by name at world initialization
type Loader interface {
	Resolve(name string) (Asset, error)
}

// MapLoader is an in-memory asset table
type MapLoader map[string]Asset

func (m MapLoader) Resolve(name string) (Asset, error) {
	a, ok := m[name]
	if !ok {
		return Asset{}, &AssetError{Name: name, Err: ErrNotFound}
	}
	return a, nil
}
