package matcher_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/builder"
	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/matcher"
)

func mustPattern(t *testing.T, name string) *core.Graph {
	t.Helper()
	g, err := builder.Pattern(name)
	require.NoError(t, err)

	return g
}

func mustBuild(t *testing.T, color core.Color, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithEdgeColor(color)}, cons...)
	require.NoError(t, err)

	return g
}

// assertValidMapping checks injectivity and edge preservation.
func assertValidMapping(t *testing.T, pattern, host *core.Graph, m matcher.Mapping) {
	t.Helper()
	require.Len(t, m, pattern.VertexCount())
	seen := make(map[core.VertexID]bool)
	for _, hv := range m {
		require.False(t, seen[hv], "mapping must be injective")
		seen[hv] = true
	}
	for _, k := range m.Edges(pattern) {
		require.True(t, host.HasEdge(k.U, k.V), "pattern edge must land on host edge %v", k)
	}
}

func TestFindTriangleInK4(t *testing.T) {
	p := mustPattern(t, "triangle")
	h := mustBuild(t, core.Neutral, builder.Complete(4))

	m, ok := matcher.Find(p, h)
	require.True(t, ok)
	assertValidMapping(t, p, h, m)
	assert.Equal(t, 24, matcher.Count(p, h, 0), "4 triangles × 6 automorphisms")
	assert.Equal(t, 5, matcher.Count(p, h, 5))
}

func TestSquareNotInTriangleStar(t *testing.T) {
	p := mustPattern(t, "c4")
	h := mustBuild(t, core.Neutral, builder.Wheel(4)) // K4 contains C4
	assert.True(t, matcher.Contains(p, h))

	h = mustBuild(t, core.Neutral, builder.Star(6), builder.Cycle(3))
	assert.False(t, matcher.Contains(p, h))
}

func TestSubgraphNotInduced(t *testing.T) {
	// C4 with a chord still contains C4 as a (non-induced) subgraph.
	p := mustPattern(t, "c4")
	h := mustBuild(t, core.Neutral, builder.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}))
	m, ok := matcher.Find(p, h)
	require.True(t, ok)
	assertValidMapping(t, p, h, m)
}

func TestEarlyRejects(t *testing.T) {
	p := mustPattern(t, "k4")
	assert.False(t, matcher.Contains(p, mustBuild(t, core.Neutral, builder.Cycle(3))), "too few vertices")
	assert.False(t, matcher.Contains(p, mustBuild(t, core.Neutral, builder.Cycle(5))), "too few edges")
	assert.False(t, matcher.Contains(p, core.NewGraph()))
}

func TestDisconnectedPattern(t *testing.T) {
	p := mustBuild(t, core.Neutral, builder.Path(2), builder.Path(2)) // matching of size 2
	assert.False(t, matcher.Contains(p, mustBuild(t, core.Neutral, builder.Star(5))))
	assert.True(t, matcher.Contains(p, mustBuild(t, core.Neutral, builder.Path(4))))
}

func TestEmptyPatternAlwaysMatches(t *testing.T) {
	m, ok := matcher.Find(core.NewGraph(), core.NewGraph())
	assert.True(t, ok)
	assert.Empty(t, m)
}

func TestNilGraphs(t *testing.T) {
	_, ok := matcher.Find(nil, core.NewGraph())
	assert.False(t, ok)
	_, _, err := matcher.FindContext(context.Background(), core.NewGraph(), nil)
	assert.ErrorIs(t, err, matcher.ErrGraphNil)
	_, _, _, err = matcher.EvaluateContext(context.Background(), nil, core.NewGraph())
	assert.ErrorIs(t, err, matcher.ErrGraphNil)
}

func TestCancelledSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// A done context stops the pattern walk before any candidate is tried.
	n, err := matcher.CountContext(ctx, mustPattern(t, "k5"), mustBuild(t, core.Neutral, builder.Complete(9)), 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)

	m, ok, err := matcher.FindContext(ctx, mustPattern(t, "c4"), mustBuild(t, core.Neutral, builder.Complete(5)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestEvaluateSkipsSmallColorClasses(t *testing.T) {
	p := mustPattern(t, "triangle")
	g := mustBuild(t, core.Neutral, builder.Complete(4))
	require.NoError(t, g.SetEdgeColor(1, 2, core.Red))
	require.NoError(t, g.SetEdgeColor(3, 4, core.Red))
	require.NoError(t, g.SetEdgeColor(1, 3, core.Blue))

	// Neither class holds three edges, so no search runs and a done
	// context goes unnoticed.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, ok, err := matcher.EvaluateContext(ctx, p, g)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.SetEdgeColor(1, 4, core.Blue))
	require.NoError(t, g.SetEdgeColor(2, 4, core.Blue))
	_, _, _, err = matcher.EvaluateContext(ctx, p, g)
	assert.ErrorIs(t, err, context.Canceled, "the blue class is searched")

	require.NoError(t, g.SetEdgeColor(1, 2, core.Blue))
	c, m, ok := matcher.Evaluate(p, g)
	require.True(t, ok)
	assert.Equal(t, core.Blue, c)
	assertValidMapping(t, p, core.ColorSubgraph(g, core.Blue), m)
}

func TestEvaluate(t *testing.T) {
	p := mustPattern(t, "triangle")

	g := mustBuild(t, core.Neutral, builder.Complete(3))
	_, _, ok := matcher.Evaluate(p, g)
	assert.False(t, ok, "neutral edges never count")

	require.NoError(t, g.SetEdgeColor(1, 2, core.Blue))
	require.NoError(t, g.SetEdgeColor(2, 3, core.Blue))
	require.NoError(t, g.SetEdgeColor(1, 3, core.Red))
	_, _, ok = matcher.Evaluate(p, g)
	assert.False(t, ok, "mixed colors are not monochromatic")

	require.NoError(t, g.SetEdgeColor(1, 3, core.Blue))
	c, m, ok := matcher.Evaluate(p, g)
	require.True(t, ok)
	assert.Equal(t, core.Blue, c)
	assertValidMapping(t, p, g, m)

	// Red is checked first when both colors hold a copy.
	g2 := mustBuild(t, core.Red, builder.Complete(3), builder.Complete(3))
	for _, e := range g2.Edges() {
		if e.U > 3 {
			require.NoError(t, g2.SetEdgeColor(e.U, e.V, core.Blue))
		}
	}
	c, m, ok = matcher.Evaluate(p, g2)
	require.True(t, ok)
	assert.Equal(t, core.Red, c)
	for _, hv := range m {
		assert.LessOrEqual(t, int(hv), 3)
	}
}

// bruteCount enumerates every injective map pattern→host and counts those
// preserving all pattern edges.
func bruteCount(pattern, host *core.Graph) int {
	pv, hv := pattern.Vertices(), host.Vertices()
	edges := pattern.Edges()
	assign := make(map[core.VertexID]core.VertexID, len(pv))
	used := make(map[core.VertexID]bool, len(hv))
	var rec func(int) int
	rec = func(k int) int {
		if k == len(pv) {
			for _, e := range edges {
				if !host.HasEdge(assign[e.U], assign[e.V]) {
					return 0
				}
			}
			return 1
		}
		total := 0
		for _, h := range hv {
			if used[h] {
				continue
			}
			used[h] = true
			assign[pv[k]] = h
			total += rec(k + 1)
			used[h] = false
		}
		return total
	}

	return rec(0)
}

func randomGraph(r *rand.Rand, n int, p float64) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if r.Float64() < p {
				_ = g.AddEdge(core.VertexID(u), core.VertexID(v), core.Neutral)
			}
		}
	}

	return g
}

func TestAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	patterns := []string{"triangle", "c4", "c5", "k4", "p4", "s4", "k2,3", "w5", "c6", "k3,3"}
	for _, name := range patterns {
		p := mustPattern(t, name)
		for trial := 0; trial < 12; trial++ {
			h := randomGraph(r, 7, 0.35+0.05*float64(trial%6))
			want := bruteCount(p, h)
			got := matcher.Count(p, h, 0)
			require.Equal(t, want, got, "pattern %s trial %d", name, trial)

			m, ok := matcher.Find(p, h)
			require.Equal(t, want > 0, ok, "pattern %s trial %d", name, trial)
			if ok {
				assertValidMapping(t, p, h, m)
			}
		}
	}
}

func TestRandomPatternsAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		p := randomGraph(r, 2+r.Intn(5), 0.5)
		h := randomGraph(r, 7, 0.5)
		require.Equal(t, bruteCount(p, h), matcher.Count(p, h, 0), "trial %d", trial)
	}
}
