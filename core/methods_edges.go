// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/SetEdgeColor/EdgeColor/
//       HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U,V) ascending.
// Concurrency:
//   - Endpoint checks under muVert read lock, then mutation under muEdgeAdj.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u,v} with the given initial color.
//
// Steps:
//  1. Reject self-loops (ErrInvalidEdge) and unknown colors (ErrInvalidColor).
//  2. Under muVert read lock, require both endpoints (ErrVertexNotFound).
//  3. Under muEdgeAdj, reject an existing pair (ErrDuplicateEdge), then store
//     the canonical key and mirror the adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID, color Color) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidEdge)
	}
	if !color.Valid() {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidColor)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", u, v, u, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", u, v, v, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	k := Key(u, v)
	if _, exists := g.edges[k]; exists {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}
	g.edges[k] = color
	ensureAdjacency(g, u)
	ensureAdjacency(g, v)
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}

	return nil
}

// RemoveEdge deletes the edge {u,v} and its mirror adjacency.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v VertexID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	k := Key(u, v)
	if _, ok := g.edges[k]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.edges, k)
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// SetEdgeColor overwrites the logical color of {u,v}. It does not check that the
// new color differs from the old one; move legality belongs to the caller.
// Complexity: O(1).
func (g *Graph) SetEdgeColor(u, v VertexID, color Color) error {
	if !color.Valid() {
		return fmt.Errorf("SetEdgeColor(%d,%d): %w", u, v, ErrInvalidColor)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	k := Key(u, v)
	if _, ok := g.edges[k]; !ok {
		return fmt.Errorf("SetEdgeColor(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	g.edges[k] = color

	return nil
}

// EdgeColor returns the logical color of {u,v}.
// Complexity: O(1).
func (g *Graph) EdgeColor(u, v VertexID) (Color, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c, ok := g.edges[Key(u, v)]
	if !ok {
		return Neutral, fmt.Errorf("EdgeColor(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	return c, nil
}

// HasEdge reports whether {u,v} exists (order-insensitive).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[Key(u, v)]

	return ok
}

// Edges returns every edge sorted by (U,V) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedEdges(g.edges)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortedEdges flattens an edge catalog into a deterministic slice.
// Caller must hold muEdgeAdj (read or write).
func sortedEdges(catalog map[EdgeKey]Color) []Edge {
	out := make([]Edge, 0, len(catalog))
	for k, c := range catalog {
		out = append(out, Edge{U: k.U, V: k.V, Color: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
