package engine

import (
	"github.com/lixenwraith/labyrinth/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Initialized once per world; systems copy it at construction
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]
	Body      *Store[component.PhysicsBodyComponent]
	Collider  *Store[component.ColliderComponent]

	// Roles
	Controllable *Store[component.ControllableComponent]
	CameraTarget *Store[component.CameraTargetComponent]
	Ground       *Store[component.GroundComponent]
	Maze         *Store[component.MazeComponent]

	// Camera & presentation
	Rig        *Store[component.CameraRigComponent]
	Renderable *Store[component.RenderableComponent]
	Goal       *Store[component.GoalComponent]
}

// initComponentStores creates every store and registers it by component type
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform: registerStore[component.TransformComponent](w),
		Body:      registerStore[component.PhysicsBodyComponent](w),
		Collider:  registerStore[component.ColliderComponent](w),

		Controllable: registerStore[component.ControllableComponent](w),
		CameraTarget: registerStore[component.CameraTargetComponent](w),
		Ground:       registerStore[component.GroundComponent](w),
		Maze:         registerStore[component.MazeComponent](w),

		Rig:        registerStore[component.CameraRigComponent](w),
		Renderable: registerStore[component.RenderableComponent](w),
		Goal:       registerStore[component.GoalComponent](w),
	}
}
