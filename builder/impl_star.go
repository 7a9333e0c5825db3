// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// impl_star.go — star Sₙ constructor (hub first, then leaves).

package builder

import "github.com/katalvlaran/ramsey/core"

// Star returns a Constructor that appends a star with n vertices in total:
// the first allocated vertex is the hub, the remaining n-1 are leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		ids := addVertices(g, n)
		for _, leaf := range ids[1:] {
			if err := connect(g, cfg, MethodStar, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
