// File: types.go
// Role: Public types, sentinels and the compiled problem representation.

package matcher

import (
	"errors"
	"sort"

	"github.com/katalvlaran/ramsey/core"
)

// ErrGraphNil is returned when a nil pattern or host is passed.
var ErrGraphNil = errors.New("matcher: graph is nil")

// Mapping sends each pattern vertex to a distinct host vertex such that
// every pattern edge lands on a host edge.
type Mapping map[core.VertexID]core.VertexID

// Edges returns the host edges covered by the mapping for the given pattern,
// in the pattern's edge order.
func (m Mapping) Edges(pattern *core.Graph) []core.EdgeKey {
	pe := pattern.Edges()
	out := make([]core.EdgeKey, 0, len(pe))
	for _, e := range pe {
		out = append(out, core.Key(m[e.U], m[e.V]))
	}

	return out
}

// indexed is a graph relabelled onto 0..n-1 with bitset adjacency.
type indexed struct {
	ids []core.VertexID       // index -> vertex
	idx map[core.VertexID]int // vertex -> index
	adj []bitset              // adjacency rows
	nbr [][]int               // neighbor indices
	deg []int
	m   int // edge count
}

func index(g *core.Graph) *indexed {
	al := g.AdjacencyList()
	ids := make([]core.VertexID, 0, len(al))
	for id := range al {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	n := len(ids)
	x := &indexed{
		ids: ids,
		idx: make(map[core.VertexID]int, n),
		adj: make([]bitset, n),
		nbr: make([][]int, n),
		deg: make([]int, n),
	}
	for i, id := range ids {
		x.idx[id] = i
		x.adj[i] = newBitset(n)
	}
	for i, id := range ids {
		for _, nb := range al[id] {
			j := x.idx[nb]
			x.adj[i].set(j)
			x.nbr[i] = append(x.nbr[i], j)
		}
		x.deg[i] = len(al[id])
		x.m += x.deg[i]
	}
	x.m /= 2

	return x
}
