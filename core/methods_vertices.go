// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//   - AddVertex() hands out strictly increasing IDs; removed IDs are never reissued.
//
// Concurrency:
//   - Vertex catalog and allocator protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import "sort"

// AddVertex allocates the next identifier, inserts the vertex and returns its ID.
//
// Implementation:
//   - Stage 1: Under muVert, take nextID and advance the allocator.
//   - Stage 2: Under muEdgeAdj, bootstrap the adjacency bucket.
//
// Errors:
//   - None; allocation always succeeds.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex() VertexID {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := g.nextID
	g.nextID++
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return id
}

// RestoreVertex re-inserts a vertex with a known ID, as needed when replaying a
// creation (redo) or rebuilding a graph from a snapshot. The allocator is
// advanced past id so later AddVertex calls never collide with it.
//
// Errors:
//   - ErrInvalidVertex: id < FirstVertexID.
//   - ErrVertexExists: id is already present.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) RestoreVertex(id VertexID) error {
	if id < FirstVertexID {
		return ErrInvalidVertex
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrVertexExists
	}
	g.vertices[id] = struct{}{}
	if id >= g.nextID {
		g.nextID = id + 1
	}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and any incident edges.
//
// The game history only removes a vertex after every edge touching it has
// been undone, so in practice the incident-edge sweep finds nothing; it is
// kept so the graph can never hold dangling adjacency.
//
// Errors:
//   - ErrVertexNotFound: the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertex(id VertexID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	for nb := range g.adjacency[id] {
		delete(g.edges, Key(id, nb))
		delete(g.adjacency[nb], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// NextID reports the identifier the next AddVertex call will return.
// Complexity: O(1).
func (g *Graph) NextID() VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.nextID
}

