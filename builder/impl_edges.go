// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// impl_edges.go — arbitrary topology from a local edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
)

// FromEdges returns a Constructor that appends n vertices (local indices
// 0..n-1) and the listed edges between them. Any index outside [0,n) or a
// self-loop/duplicate pair yields ErrConstructFailed before g is touched.
func FromEdges(n int, edges [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodFromEdges, n, 1); err != nil {
			return err
		}
		seen := make(map[[2]int]bool, len(edges))
		for _, e := range edges {
			a, b := e[0], e[1]
			if a < 0 || b < 0 || a >= n || b >= n || a == b {
				return fmt.Errorf("%s: edge (%d,%d) outside 0..%d: %w", MethodFromEdges, a, b, n-1, ErrConstructFailed)
			}
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				return fmt.Errorf("%s: duplicate edge (%d,%d): %w", MethodFromEdges, a, b, ErrConstructFailed)
			}
			seen[[2]int{a, b}] = true
		}

		ids := addVertices(g, n)
		for _, e := range edges {
			if err := connect(g, cfg, MethodFromEdges, ids[e[0]], ids[e[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}
