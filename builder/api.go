// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors append fresh vertices from the graph's allocator, so
//     composing several constructors yields a disjoint union.
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors rather than panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Pattern builds a single named pattern with Neutral edges.
// It is shorthand for BuildGraph(nil, Named(name)).
func Pattern(name string) (*core.Graph, error) {
	return BuildGraph(nil, Named(name))
}

// addVertices allocates n fresh vertices on g and returns them in order.
func addVertices(g *core.Graph, n int) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}

	return ids
}

// connect adds the edge {u,v} with the configured color, tagging errors
// with the calling method.
func connect(g *core.Graph, cfg builderConfig, method string, u, v core.VertexID) error {
	if err := g.AddEdge(u, v, cfg.color); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
