// Package matcher decides whether a small pattern graph occurs as a subgraph
// of a host graph, and whether a colored board holds a monochromatic copy.
//
// The search is a subgraph monomorphism: pattern vertices map injectively to
// host vertices, every pattern edge must land on a host edge, and the host may
// carry extra vertices and edges. It is exact for any pattern and always
// terminates; the worst case is exponential in the pattern size.
//
// Pruning, in order of application:
//
//	counts   more pattern vertices or edges than host ⇒ no match
//	degree   host candidate needs deg ≥ pattern degree
//	refine   Ullmann fixpoint over bitset domains
//	order    DFS preorder, so each vertex extends a mapped neighbor's image
//	adjacency every mapped pattern neighbor must map onto a host neighbor
//	lookahead every unmapped pattern neighbor must keep a free candidate
//
// Evaluate applies the search to the Red, then the Blue color subgraph of a
// board; Neutral edges never count.
package matcher
