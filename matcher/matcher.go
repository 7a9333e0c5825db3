// File: matcher.go
// Role: Public entry points of the goal matcher.

package matcher

import (
	"context"

	"github.com/katalvlaran/ramsey/core"
)

// Find reports whether pattern embeds into host as a subgraph (not
// necessarily induced) and returns the first mapping found.
// Colors are ignored; callers restrict host beforehand (see Evaluate).
// Nil graphs never match.
func Find(pattern, host *core.Graph) (Mapping, bool) {
	m, ok, _ := FindContext(context.Background(), pattern, host)
	return m, ok
}

// FindContext is Find with cancellation. On cancellation it returns
// (nil, false, ctx.Err()).
//
// Implementation:
//   - Stage 1: index both graphs; reject early on vertex/edge counts.
//   - Stage 2: candidate domains by degree, refined to a fixpoint.
//   - Stage 3: backtrack in DFS order; candidates for a vertex are host
//     neighbors of its parent's image, filtered by adjacency with every
//     mapped neighbor and a one-step lookahead on unmapped neighbors.
//
// Complexity:
//   - Exponential in |V(pattern)| in the worst case; pruning keeps the small
//     goal patterns cheap on game-sized hosts.
func FindContext(ctx context.Context, pattern, host *core.Graph) (Mapping, bool, error) {
	pr, ok, err := compile(ctx, pattern, host)
	if err != nil || !ok {
		return nil, false, err
	}

	var found Mapping
	pr.extend(0, func() bool {
		found = pr.mapping()
		return false
	})
	if pr.err != nil {
		return nil, false, pr.err
	}

	return found, found != nil, nil
}

// Contains reports whether pattern embeds into host.
func Contains(pattern, host *core.Graph) bool {
	_, ok := Find(pattern, host)
	return ok
}

// Count returns the number of distinct mappings of pattern into host,
// stopping at limit when limit > 0. Each copy of the pattern is counted once
// per automorphism (a triangle in host yields 6).
func Count(pattern, host *core.Graph, limit int) int {
	n, _ := CountContext(context.Background(), pattern, host, limit)
	return n
}

// CountContext is Count with cancellation; the partial count is returned
// together with ctx.Err().
func CountContext(ctx context.Context, pattern, host *core.Graph, limit int) (int, error) {
	pr, ok, err := compile(ctx, pattern, host)
	if err != nil || !ok {
		return 0, err
	}

	n := 0
	pr.extend(0, func() bool {
		n++
		return limit <= 0 || n < limit
	})

	return n, pr.err
}

// Evaluate looks for a monochromatic copy of pattern in g: it searches the
// Red color subgraph, then the Blue one. Neutral edges never count.
// It returns the color and host mapping of the first copy found.
func Evaluate(pattern, g *core.Graph) (core.Color, Mapping, bool) {
	c, m, ok, _ := EvaluateContext(context.Background(), pattern, g)
	return c, m, ok
}

// EvaluateContext is Evaluate with cancellation. A color class with fewer
// edges than pattern is skipped without building its subgraph.
func EvaluateContext(ctx context.Context, pattern, g *core.Graph) (core.Color, Mapping, bool, error) {
	if pattern == nil || g == nil {
		return core.Neutral, nil, false, ErrGraphNil
	}
	need := pattern.EdgeCount()
	counts := g.Stats().ColorCounts
	for _, c := range core.PaintColors {
		if counts[c] < need {
			continue
		}
		m, ok, err := FindContext(ctx, pattern, core.ColorSubgraph(g, c))
		if err != nil {
			return core.Neutral, nil, false, err
		}
		if ok {
			return c, m, true, nil
		}
	}

	return core.Neutral, nil, false, nil
}
