// File: methods_clone.go
// Role: Cloning, snapshotting and rebuilding graph instances.
// Determinism:
//   - Clone and FromSnapshot carry nextID so IDs stay monotonic on the copy.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "fmt"

// Clone returns a deep copy of the Graph: allocator, vertices, edges, adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.nextID = g.nextID
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[VertexID]struct{}, len(g.adjacency[id]))
	}
	for k, c := range g.edges {
		clone.edges[k] = c
		clone.adjacency[k.U][k.V] = struct{}{}
		clone.adjacency[k.V][k.U] = struct{}{}
	}

	return clone
}

// Snapshot returns a detached, deterministic copy of the graph state.
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() GraphSnapshot {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	snap := GraphSnapshot{NextID: g.nextID}
	snap.Vertices = make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		snap.Vertices = append(snap.Vertices, id)
	}
	sortIDs(snap.Vertices)

	g.muEdgeAdj.RLock()
	snap.Edges = sortedEdges(g.edges)
	g.muEdgeAdj.RUnlock()

	return snap
}

// FromSnapshot rebuilds a Graph from a snapshot, validating it on the way:
// every vertex must be positive and unique, every edge must join two listed
// vertices without loops or duplicates, and NextID must lie beyond every vertex.
//
// Errors:
//   - Core sentinels (ErrInvalidVertex, ErrVertexExists, ErrInvalidEdge,
//     ErrVertexNotFound, ErrDuplicateEdge, ErrInvalidColor) wrapped with context.
//
// Complexity: O(V + E).
func FromSnapshot(snap GraphSnapshot) (*Graph, error) {
	g := NewGraph()
	for _, id := range snap.Vertices {
		if err := g.RestoreVertex(id); err != nil {
			return nil, fmt.Errorf("FromSnapshot: vertex %d: %w", id, err)
		}
	}
	if snap.NextID < g.nextID {
		return nil, fmt.Errorf("FromSnapshot: next id %d not beyond vertex %d: %w",
			snap.NextID, g.nextID-1, ErrInvalidVertex)
	}
	g.nextID = snap.NextID

	for _, e := range snap.Edges {
		if err := g.AddEdge(e.U, e.V, e.Color); err != nil {
			return nil, fmt.Errorf("FromSnapshot: %w", err)
		}
	}

	return g, nil
}
