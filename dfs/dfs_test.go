package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/builder"
	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/dfs"
)

// buildPath creates the path 1-2-…-n.
func buildPath(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(n))
	require.NoError(t, err)

	return g
}

// forestGraph is a 2-path, a triangle and an isolated vertex: {1,2} {3,4,5} {6}.
func forestGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	g.AddVertex()

	return g
}

func TestForest_NilGraph(t *testing.T) {
	res, err := dfs.Forest(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestForest_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	id := g.AddVertex()

	res, err := dfs.Forest(g)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{id}, res.Preorder)
	assert.Equal(t, [][]core.VertexID{{id}}, res.Trees)
	_, hasParent := res.Parent[id]
	assert.False(t, hasParent, "a root has no parent")
}

func TestForest_PathFromMiddle(t *testing.T) {
	g := buildPath(t, 4)

	res, err := dfs.Forest(g, dfs.WithRoots(2))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{2, 1, 3, 4}, res.Preorder)
	assert.Equal(t, map[core.VertexID]core.VertexID{1: 2, 3: 2, 4: 3}, res.Parent)
}

func TestForest_ParentPrecedesChild(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(6))
	require.NoError(t, err)

	res, err := dfs.Forest(g, dfs.WithRoots(6))
	require.NoError(t, err)
	require.Len(t, res.Preorder, 6)
	require.Len(t, res.Trees, 1)
	for i, v := range res.Preorder[1:] {
		p := res.Parent[v]
		assert.Contains(t, res.Preorder[:i+1], p)
		assert.True(t, g.HasEdge(p, v))
	}
}

func TestForest_AscendingRoots(t *testing.T) {
	res, err := dfs.Forest(forestGraph(t))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2, 3, 4, 5, 6}, res.Preorder)
	assert.Equal(t, [][]core.VertexID{{1, 2}, {3, 4, 5}, {6}}, res.Trees)
}

func TestForest_WithRoots(t *testing.T) {
	g := forestGraph(t)

	// 5 starts the triangle's tree; 3 is reached from 5 and starts nothing.
	res, err := dfs.Forest(g, dfs.WithRoots(6, 5, 3))
	require.NoError(t, err)
	assert.Equal(t, [][]core.VertexID{{6}, {5, 3, 4}, {1, 2}}, res.Trees)

	_, err = dfs.Forest(g, dfs.WithRoots(42))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestForest_Cancelled(t *testing.T) {
	g := buildPath(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.Forest(g, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = dfs.Components(g, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	comps, err := dfs.Components(forestGraph(t))
	require.NoError(t, err)
	assert.Equal(t, [][]core.VertexID{{1, 2}, {3, 4, 5}, {6}}, comps)

	comps, err = dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
