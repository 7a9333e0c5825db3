// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// impl_cycle.go — canonical cycle Cₙ constructor.
//
// Determinism: ring edges emitted in order (0→1), (1→2), …, (n-1→0).

package builder

import "github.com/katalvlaran/ramsey/core"

// Cycle returns a Constructor that appends a simple cycle Cₙ (n ≥ 3).
// Cycle(3) is the triangle; Cycle(4) is the square used as the default goal.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		ids := addVertices(g, n)
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
