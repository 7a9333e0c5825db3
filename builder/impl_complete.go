// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// impl_complete.go — complete graph Kₙ constructor.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/ramsey/core"

// Complete returns a Constructor that appends Kₙ (n ≥ 2).
// Edges are emitted in lexicographic (i,j), i<j order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		ids := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
