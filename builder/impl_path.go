// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// impl_path.go — simple path Pₙ constructor.

package builder

import "github.com/katalvlaran/ramsey/core"

// Path returns a Constructor that appends a path of n vertices and n-1 edges (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		ids := addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, MethodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
