package engine

import (
	"math"
	"reflect"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/event"
	"github.com/lixenwraith/labyrinth/input"
)

// System is a per-frame function over world state
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World contains all entities and their components using typed stores
// It is the single source of truth read and written by every system
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resources

	stores    map[reflect.Type]AnyStore
	allStores []AnyStore
	systems   []System
}

// NewWorld creates an empty world with every component store initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResources(),
		stores:       make(map[reflect.Type]AnyStore),
	}
	initComponentStores(w)
	return w
}

func registerStore[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores[reflect.TypeFor[T]()] = s
	w.allStores = append(w.allStores, s)
	return s
}

// GetStore returns the typed store for T, or nil when T is not a registered component
func GetStore[T any](w *World) *Store[T] {
	s, ok := w.stores[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return s.(*Store[T])
}

// Attach sets component v on entity e, replacing any previous value of the same type
// Returns false when T is not a registered component type
func Attach[T any](w *World, e core.Entity, v T) bool {
	s := GetStore[T](w)
	if s == nil {
		return false
	}
	s.Set(e, v)
	return true
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// EntityCount returns the number of entity IDs issued
func (w *World) EntityCount() int {
	return int(w.nextEntityID - 1)
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, s := range w.allStores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// AddSystem registers a system and keeps the list sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of the registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Step advances the simulation by one frame: publishes the input snapshot and
// elapsed time, then runs every system to completion in priority order
// A negative or non-finite dt is treated as zero
func (w *World) Step(snapshot input.Snapshot, dt float32) {
	if dt < 0 || math.IsNaN(float64(dt)) || math.IsInf(float64(dt), 0) {
		dt = 0
	}
	w.Resources.Frame.advance(snapshot, dt)
	for _, s := range w.systems {
		s.Update()
	}
}

// PushEvent emits an event stamped with the current frame number
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Frame.Number,
	})
}
