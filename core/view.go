// File: view.go
// Role: Non-mutating graph views (topology filtered by color).
// Determinism:
//   - Preserves vertex IDs and edge colors.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - ColorSubgraph keeps edges of one logical color plus their endpoints only.

package core

import "sort"

// ColorSubgraph returns the graph formed by the edges of g whose logical color
// equals color. Its vertex set is the union of those edges' endpoints, so
// isolated vertices and vertices touched only by other colors are absent.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func ColorSubgraph(g *Graph, color Color) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	out.nextID = g.nextID
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for k, c := range g.edges {
		if c != color {
			continue
		}
		for _, id := range [2]VertexID{k.U, k.V} {
			if _, ok := out.vertices[id]; !ok {
				out.vertices[id] = struct{}{}
				out.adjacency[id] = make(map[VertexID]struct{})
			}
		}
		out.edges[k] = c
		out.adjacency[k.U][k.V] = struct{}{}
		out.adjacency[k.V][k.U] = struct{}{}
	}

	return out
}

// sortIDs sorts a slice of vertex IDs ascending in place.
func sortIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
