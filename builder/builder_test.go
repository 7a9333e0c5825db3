// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/builder"
	"github.com/katalvlaran/ramsey/core"
)

func TestConstructorsShape(t *testing.T) {
	cases := []struct {
		name      string
		cons      builder.Constructor
		vertices  int
		edges     int
		maxDegree int
	}{
		{"Cycle5", builder.Cycle(5), 5, 5, 2},
		{"Path4", builder.Path(4), 4, 3, 2},
		{"Star5", builder.Star(5), 5, 4, 4},
		{"Wheel5", builder.Wheel(5), 5, 8, 4},
		{"Complete4", builder.Complete(4), 4, 6, 3},
		{"K2,3", builder.CompleteBipartite(2, 3), 5, 6, 3},
		{"FromEdges", builder.FromEdges(3, [][2]int{{0, 1}, {2, 1}}), 3, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.NoError(t, err)
			st := g.Stats()
			assert.Equal(t, tc.vertices, st.VertexCount)
			assert.Equal(t, tc.edges, st.EdgeCount)
			assert.Equal(t, tc.maxDegree, st.MaxDegree)
			assert.Equal(t, tc.edges, st.ColorCounts[core.Neutral])
		})
	}
}

func TestConstructorsRejectSmallSizes(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"Cycle2":     builder.Cycle(2),
		"Path1":      builder.Path(1),
		"Star1":      builder.Star(1),
		"Wheel3":     builder.Wheel(3),
		"Complete1":  builder.Complete(1),
		"K0,3":       builder.CompleteBipartite(0, 3),
		"FromEdges0": builder.FromEdges(0, nil),
	} {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, cons)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestFromEdgesRejectsMalformed(t *testing.T) {
	for name, edges := range map[string][][2]int{
		"out of range": {{0, 3}},
		"negative":     {{-1, 0}},
		"self loop":    {{1, 1}},
		"duplicate":    {{0, 1}, {1, 0}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, builder.FromEdges(3, edges))
			assert.ErrorIs(t, err, builder.ErrConstructFailed)
		})
	}
}

func TestBuildGraphNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Cycle(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestComposeIsDisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2, 3, 4, 5, 6}, g.Vertices())
	assert.False(t, g.HasEdge(3, 4))
	assert.True(t, g.HasEdge(4, 6))
}

func TestWithEdgeColor(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithEdgeColor(core.Red)}, builder.Complete(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, core.Red, e.Color)
	}
	assert.Panics(t, func() { builder.WithEdgeColor(core.Color(42)) })
}

func TestWheelHubIsLast(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(5))
	require.NoError(t, err)
	nbs, err := g.NeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2, 3, 4}, nbs)
}

func TestNamed(t *testing.T) {
	cases := map[string]struct{ v, e int }{
		"triangle": {3, 3},
		" Square ": {4, 4},
		"c5":       {5, 5},
		"cycle6":   {6, 6},
		"K4":       {4, 6},
		"k2,3":     {5, 6},
		"k3x3":     {6, 9},
		"p3":       {3, 2},
		"s4":       {4, 3},
		"w5":       {5, 8},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := builder.Pattern(name)
			require.NoError(t, err)
			assert.Equal(t, want.v, g.VertexCount())
			assert.Equal(t, want.e, g.EdgeCount())
		})
	}
}

func TestNamedErrors(t *testing.T) {
	for _, name := range []string{"", "hexagon", "c", "kx3", "k2,", "q4"} {
		assert.ErrorIs(t, builder.ValidateName(name), builder.ErrUnknownPattern, name)
	}
	assert.ErrorIs(t, builder.ValidateName("c2"), builder.ErrTooFewVertices)
}

func TestCatalogNamesParse(t *testing.T) {
	for _, entry := range builder.Catalog() {
		assert.NoError(t, builder.ValidateName(entry[0]), entry[0])
	}
}
