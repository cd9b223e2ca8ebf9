package engine

import (
	"testing"

	"github.com/lixenwraith/labyrinth/core"
)

type testComponent struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[testComponent]()

	s.Set(1, testComponent{Value: 10})
	s.Set(2, testComponent{Value: 20})

	v, ok := s.Get(1)
	if !ok || v.Value != 10 {
		t.Errorf("Expected 10, got %v (ok=%v)", v, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Error("Expected missing entity to report false")
	}
	if s.Count() != 2 {
		t.Errorf("Expected count 2, got %d", s.Count())
	}
}

func TestStoreReplaceKeepsOrder(t *testing.T) {
	s := NewStore[testComponent]()
	s.Set(3, testComponent{})
	s.Set(1, testComponent{})
	s.Set(3, testComponent{Value: 7})

	all := s.All()
	if len(all) != 2 || all[0] != 3 || all[1] != 1 {
		t.Errorf("Expected [3 1], got %v", all)
	}
	if v, _ := s.Get(3); v.Value != 7 {
		t.Errorf("Expected replaced value 7, got %d", v.Value)
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore[testComponent]()
	for e := core.Entity(1); e <= 4; e++ {
		s.Set(e, testComponent{Value: int(e)})
	}

	s.Remove(2)
	s.Remove(99) // no-op

	all := s.All()
	want := []core.Entity{1, 3, 4}
	if len(all) != len(want) {
		t.Fatalf("Expected %v, got %v", want, all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, all)
		}
	}
	if s.Has(2) {
		t.Error("Removed entity still present")
	}
}

func TestStoreAllIsCopy(t *testing.T) {
	s := NewStore[testComponent]()
	s.Set(1, testComponent{})

	all := s.All()
	all[0] = 42
	if s.All()[0] != 1 {
		t.Error("All must return a copy")
	}
}

func TestStoreFirstAndClear(t *testing.T) {
	s := NewStore[testComponent]()
	if _, _, ok := s.First(); ok {
		t.Error("Expected empty store to have no first entity")
	}

	s.Set(5, testComponent{Value: 1})
	s.Set(2, testComponent{Value: 2})
	e, v, ok := s.First()
	if !ok || e != 5 || v.Value != 1 {
		t.Errorf("Expected first 5, got %d %v %v", e, v, ok)
	}

	s.Clear()
	if s.Count() != 0 || s.Has(5) {
		t.Error("Expected cleared store")
	}
}
