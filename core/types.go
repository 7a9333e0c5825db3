// SPDX-License-Identifier: MIT
// Package core defines the Graph, VertexID, Edge and Color types of the game
// board, sentinel errors, and the NewGraph constructor.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for the
// vertex catalog and ID allocator, muEdgeAdj for edges and adjacency), so reads
// may run concurrently with each other while writes are exclusive.
//
// Errors:
//
//	ErrInvalidVertex   - vertex ID is not positive.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrVertexExists    - RestoreVertex on an ID that is already present.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrInvalidEdge     - self-loop (u == v).
//	ErrDuplicateEdge   - edge {u,v} already present.
//	ErrInvalidColor    - color outside {Neutral, Red, Blue}.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates a vertex ID below FirstVertexID.
	ErrInvalidVertex = errors.New("core: invalid vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates RestoreVertex was called for an ID already in the graph.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates a self-loop was attempted (u == v).
	ErrInvalidEdge = errors.New("core: invalid edge (self-loop)")

	// ErrDuplicateEdge indicates a parallel edge was attempted on an existing pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrInvalidColor indicates a color value outside the known palette.
	ErrInvalidColor = errors.New("core: invalid color")
)

// FirstVertexID is the identifier handed out by the first AddVertex call.
const FirstVertexID VertexID = 1

// VertexID identifies a vertex. IDs are allocated monotonically and never reused
// within one Graph, even after the vertex is removed.
type VertexID int

// EdgeKey is the canonical form of an unordered vertex pair: U < V always.
type EdgeKey struct {
	U VertexID
	V VertexID
}

// Key returns the canonical EdgeKey for the unordered pair {u, v}.
// Complexity: O(1).
func Key(u, v VertexID) EdgeKey {
	if u > v {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// Edge is a read-only record of one undirected edge and its logical color.
// U < V by construction.
type Edge struct {
	U     VertexID
	V     VertexID
	Color Color
}

// Key returns the canonical key of e.
func (e Edge) Key() EdgeKey { return EdgeKey{U: e.U, V: e.V} }

// Graph is a simple undirected graph with colored edges: no self-loops,
// at most one edge per vertex pair.
//
// muVert protects vertices and nextID; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, nextID
	muEdgeAdj sync.RWMutex // guards edges, adjacency

	nextID   VertexID              // next ID AddVertex will hand out
	vertices map[VertexID]struct{} // vertex catalog
	edges    map[EdgeKey]Color     // edge catalog, canonical keys

	// adjacency[u][v] exists iff edge {u,v} exists; mirrored both ways.
	adjacency map[VertexID]map[VertexID]struct{}
}

// NewGraph creates an empty Graph whose first allocated vertex is FirstVertexID.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nextID:    FirstVertexID,
		vertices:  make(map[VertexID]struct{}),
		edges:     make(map[EdgeKey]Color),
		adjacency: make(map[VertexID]map[VertexID]struct{}),
	}
}

// GraphSnapshot is a detached, read-only copy of a graph's state, ordered
// deterministically (vertices ascending, edges by (U,V) ascending).
type GraphSnapshot struct {
	NextID   VertexID
	Vertices []VertexID
	Edges    []Edge
}
