// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted ascending.
//   - AdjacencyList() returns per-vertex neighbor slices sorted ascending.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the appropriate write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id VertexID) ([]VertexID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedNeighbors(g.adjacency[id]), nil
}

// AdjacencyList returns a detached map vertex -> sorted neighbor IDs.
// Every vertex is present, isolated ones with an empty slice.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[VertexID][]VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[VertexID][]VertexID, len(g.vertices))
	for id := range g.vertices {
		out[id] = sortedNeighbors(g.adjacency[id])
	}

	return out
}

// sortedNeighbors copies a neighbor bucket into an ascending slice.
func sortedNeighbors(bucket map[VertexID]struct{}) []VertexID {
	out := make([]VertexID, 0, len(bucket))
	for nb := range bucket {
		out = append(out, nb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ensureAdjacency makes sure adjacency[id] exists.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id VertexID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[VertexID]struct{})
	}
}
