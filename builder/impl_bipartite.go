// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// impl_bipartite.go — complete bipartite K_{n1,n2} constructor.

package builder

import "github.com/katalvlaran/ramsey/core"

// CompleteBipartite returns a Constructor that appends K_{n1,n2}: the left
// side is allocated first, then the right side, and every left vertex is
// joined to every right vertex. Both sides need at least one vertex.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		left := addVertices(g, n1)
		right := addVertices(g, n2)
		for _, u := range left {
			for _, v := range right {
				if err := connect(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
