// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// impl_wheel.go — wheel Wₙ = Cₙ₋₁ + hub.
//
// Determinism:
//   • Rim built by Cycle(n-1) first, hub allocated last.
//   • Spokes emitted in increasing rim order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
)

// Wheel returns a Constructor that appends a wheel on n vertices (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		// Rim IDs are the next n-1 allocator values.
		first := g.NextID()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		hub := g.AddVertex()
		for i := 0; i < n-1; i++ {
			if err := connect(g, cfg, MethodWheel, hub, first+core.VertexID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
