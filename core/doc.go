// Package core provides the game board: a thread-safe, simple, undirected
// in-memory Graph whose edges carry a logical color.
//
// The Graph G = (V,E) enforces the board's rules directly:
//
//   - Vertices are integers handed out by a monotonic allocator (1, 2, 3, …);
//     an ID is never reissued, even after its vertex is removed.
//   - Edges are unordered pairs {u,v} with u != v, stored canonically (U < V).
//   - At most one edge per pair; no self-loops.
//   - Each edge carries a Color: Neutral (placed, not painted), Red, or Blue.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() VertexID                 // O(1)
//	RestoreVertex(id VertexID) error     // O(1), replays a known ID
//	HasVertex(id VertexID) bool          // O(1)
//	RemoveVertex(id VertexID) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v VertexID, c Color) error        // O(1)
//	RemoveEdge(u, v VertexID) error              // O(1)
//	SetEdgeColor(u, v VertexID, c Color) error   // O(1)
//	EdgeColor(u, v VertexID) (Color, error)      // O(1)
//	HasEdge(u, v VertexID) bool                  // O(1)
//
//	// Query
//	Vertices() []VertexID                        // O(V·log V), ascending
//	Edges() []Edge                               // O(E·log E), by (U,V)
//	NeighborIDs(id VertexID) ([]VertexID, error) // O(d·log d)
//	AdjacencyList() map[VertexID][]VertexID      // O(V+E)
//	Stats() *GraphStats                          // O(V+E)
//
//	// Copies & views
//	Clone() *Graph                               // O(V+E)
//	Snapshot() GraphSnapshot / FromSnapshot(...) // O(V+E)
//	ColorSubgraph(g, c) *Graph                   // O(V+E), one color class
//
// Colors:
//
//	Logical colors are stored; DisplayColor (black/grey, red/pink, blue/cyan)
//	is derived from a logical color and a selection flag and always inverts
//	back through DisplayColor.Logical().
//
// Errors:
//
//	ErrInvalidVertex  – non-positive vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrVertexExists   – RestoreVertex on a present ID
//	ErrEdgeNotFound   – missing edge
//	ErrInvalidEdge    – self-loop
//	ErrDuplicateEdge  – second edge on the same pair
//	ErrInvalidColor   – unknown color value
package core
