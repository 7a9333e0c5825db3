// Package builder constructs the small pattern graphs used as goals and the
// host fixtures used in tests.
//
// Every Constructor appends fresh vertices from the target graph's allocator,
// so BuildGraph(nil, Cycle(3), Cycle(3)) yields two disjoint triangles
// on vertices 1..6. Edges are Neutral unless WithEdgeColor says otherwise.
//
// Topologies:
//
//	Cycle(n)                 Cₙ, n ≥ 3
//	Path(n)                  Pₙ, n ≥ 2
//	Star(n)                  hub + n-1 leaves, n ≥ 2
//	Wheel(n)                 Cₙ₋₁ + hub, n ≥ 4
//	Complete(n)              Kₙ, n ≥ 2
//	CompleteBipartite(m, n)  K_{m,n}, m,n ≥ 1
//	FromEdges(n, edges)      arbitrary edges over local indices 0..n-1
//	Named(name)              textual form: "triangle", "c4", "k2,3", "w5", ...
//
// Errors:
//
//	ErrTooFewVertices   size below the family minimum
//	ErrConstructFailed  nil constructor or malformed edge list
//	ErrUnknownPattern   Named could not parse the name
package builder
