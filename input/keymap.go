package input

import (
	"fmt"
	"sort"
	"strings"
)

// KeyMap binds physical key names (as reported by the device adapter) to logical keys
// Physical names are case-insensitive: single characters ("w"), or names such as "up", "esc", "space"
type KeyMap struct {
	bindings map[string]Key
}

// DefaultBindings mirrors the original WASD layout plus arrows
var DefaultBindings = map[string][]string{
	"forward":     {"w", "up"},
	"back":        {"s", "down"},
	"left":        {"a", "left"},
	"right":       {"d", "right"},
	"orbit":       {"o"},
	"cursor_lock": {"c"},
	"zoom_in":     {"+", "="},
	"zoom_out":    {"-"},
	"pause":       {"p"},
	"quit":        {"esc", "ctrl+c"},
}

// NewKeyMap builds a map from logical key name to physical names
// Returns error on unknown logical names or a physical key bound twice
func NewKeyMap(bindings map[string][]string) (*KeyMap, error) {
	km := &KeyMap{bindings: make(map[string]Key)}

	// Sorted for deterministic duplicate reporting
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		key, ok := ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}
		for _, phys := range bindings[name] {
			phys = normalizePhysical(phys)
			if phys == "" {
				return nil, fmt.Errorf("keymap: empty key for action %q", name)
			}
			if prev, dup := km.bindings[phys]; dup && prev != key {
				return nil, fmt.Errorf("keymap: key %q bound to both %s and %s", phys, prev, key)
			}
			km.bindings[phys] = key
		}
	}
	return km, nil
}

// DefaultKeyMap returns the built-in bindings
func DefaultKeyMap() *KeyMap {
	km, err := NewKeyMap(DefaultBindings)
	if err != nil {
		panic(err)
	}
	return km
}

// Lookup resolves a physical key name
func (km *KeyMap) Lookup(physical string) (Key, bool) {
	k, ok := km.bindings[normalizePhysical(physical)]
	return k, ok
}

func normalizePhysical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
