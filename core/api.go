// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only summary of catalog sizes and per-color edge counts.
type GraphStats struct {
	VertexCount  int
	EdgeCount    int
	NextID       VertexID
	ColorCounts  map[Color]int
	MaxDegree    int
	IsolatedSize int
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot vertex count and allocator.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges per color and degrees.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
//
// AI-Hints:
//   - Use Stats() for quick admission checks (e.g. a pattern with more edges
//     than a color class cannot match).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		NextID:      g.nextID,
		ColorCounts: make(map[Color]int, 3),
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = len(g.edges)
	for _, c := range g.edges {
		stats.ColorCounts[c]++
	}
	for id := range g.vertices {
		d := len(g.adjacency[id])
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.IsolatedSize++
		}
	}

	return &stats
}
