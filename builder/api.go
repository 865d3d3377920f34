// SPDX-License-Identifier: MIT
//
// api.go - public entry points of the builder package.
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Constructor applies a deterministic mutation to m using the resolved
// configuration. Constructors validate parameters first and return
// sentinel-wrapped errors; they never panic.
type Constructor func(m *core.BuildingMap, cfg builderConfig) error

// Build creates an empty map with the default configuration and applies cons
// in order.
func Build(cons ...Constructor) (*core.BuildingMap, error) {
	return BuildWith(nil, cons...)
}

// BuildWith is Build with explicit options. The first failing constructor
// aborts the build; the partial map is discarded.
//
// Complexity: O(len(opts)) plus the sum of constructor costs.
func BuildWith(opts []Option, cons ...Constructor) (*core.BuildingMap, error) {
	m := core.NewBuildingMap()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// Apply runs cons against an existing map, e.g. to extend a loaded campus
// with a new wing.
//
// Apply is all or nothing: if any constructor fails, every node added by this
// call is removed again (with its edges) and m holds its previous nodes and
// edges. Handles issued to the removed nodes are not reused.
func Apply(m *core.BuildingMap, opts []Option, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: nil map: %w", ErrConstructFailed)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
	}

	cfg := newBuilderConfig(opts...)
	before := make(map[core.NodeID]struct{}, m.Len())
	for _, id := range m.Nodes() {
		before[id] = struct{}{}
	}
	for _, fn := range cons {
		if err := fn(m, cfg); err != nil {
			rollback(m, before)
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// rollback removes every node of m that is not in keep. Constructors only
// add nodes and edges touching a new node, so this restores m exactly.
func rollback(m *core.BuildingMap, keep map[core.NodeID]struct{}) {
	for _, id := range m.Nodes() {
		if _, ok := keep[id]; !ok {
			m.RemoveNode(id)
		}
	}
}
