package dfs

import "github.com/katalvlaran/ramsey/core"

// Components returns the connected components of g, each in discovery order
// from its root. Without WithRoots the roots are the smallest vertices, so
// components come out ordered by their smallest vertex. Isolated vertices
// form singletons.
func Components(g *core.Graph, opts ...Option) ([][]core.VertexID, error) {
	res, err := Forest(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Trees, nil
}
