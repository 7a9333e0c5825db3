package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/core"
)

func TestColorSubgraph(t *testing.T) {
	g := core.NewGraph()
	v := make([]core.VertexID, 5)
	for i := range v {
		v[i] = g.AddVertex()
	}
	require.NoError(t, g.AddEdge(v[0], v[1], core.Red))
	require.NoError(t, g.AddEdge(v[1], v[2], core.Red))
	require.NoError(t, g.AddEdge(v[2], v[3], core.Blue))
	require.NoError(t, g.AddEdge(v[3], v[4], core.Neutral))

	red := core.ColorSubgraph(g, core.Red)
	assert.Equal(t, []core.VertexID{v[0], v[1], v[2]}, red.Vertices())
	assert.Equal(t, 2, red.EdgeCount())
	assert.False(t, red.HasVertex(v[4]), "isolated-in-color vertices are excluded")

	blue := core.ColorSubgraph(g, core.Blue)
	assert.Equal(t, []core.VertexID{v[2], v[3]}, blue.Vertices())

	// The view is detached from the source.
	require.NoError(t, red.RemoveEdge(v[0], v[1]))
	assert.True(t, g.HasEdge(v[0], v[1]))
}
