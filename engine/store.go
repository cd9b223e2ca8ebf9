package engine

import (
	"github.com/lixenwraith/labyrinth/core"
)

// QueryableStore is the view of a store used by QueryBuilder
type QueryableStore interface {
	Has(e core.Entity) bool
	All() []core.Entity
	Count() int
}

// AnyStore is implemented by every typed store for uniform lifecycle operations
type AnyStore interface {
	QueryableStore
	Remove(e core.Entity)
	Clear()
}

// Store is a generic container for a specific component type T
// Uses sparse set pattern: map for lookup, dense slice for stable iteration
// No locking: the frame loop grants systems access sequentially
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity // Insertion order of entities holding T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 16),
	}
}

// Set attaches or replaces the component for an entity
// Re-attaching keeps the entity's position in iteration order
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get returns a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove detaches the component from an entity, preserving the order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// All returns a copy of the entities holding this component, in insertion order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}

// First returns the earliest attached entity, used for singleton roles
func (s *Store[T]) First() (core.Entity, T, bool) {
	if len(s.entities) == 0 {
		var zero T
		return core.NoEntity, zero, false
	}
	e := s.entities[0]
	return e, s.components[e], true
}
