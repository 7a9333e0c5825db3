// File: search.go
// Role: Backtracking subgraph-monomorphism search.
// Determinism:
//   - Pattern vertices are mapped in a fixed DFS order and host candidates are
//     tried in ascending vertex order, so the first mapping found is stable.
// Concurrency:
//   - Inputs are indexed once (read locks inside core); the search itself
//     touches only private state, so concurrent calls are safe.

package matcher

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/dfs"
)

// cancelCheckEvery is how many search nodes are expanded between context polls.
const cancelCheckEvery = 256

// problem is one compiled pattern/host pair.
type problem struct {
	p, h   *indexed
	order  []int    // pattern indices in mapping order
	parent []int    // per position: pattern index of an earlier-mapped neighbor, or -1
	back   [][]int  // per position: all earlier-mapped pattern neighbors
	dom    []bitset // candidate host indices per pattern index
	assign []int    // pattern index -> host index, -1 when unmapped
	used   bitset   // host indices already taken
	all    bitset   // every host index
	ctx    context.Context
	steps  int
	err    error
}

// compile indexes both graphs, derives the search order and the refined
// candidate domains. ok=false means no mapping can exist.
func compile(ctx context.Context, pattern, host *core.Graph) (pr *problem, ok bool, err error) {
	if pattern == nil || host == nil {
		return nil, false, ErrGraphNil
	}

	pr = &problem{p: index(pattern), h: index(host), ctx: ctx}
	np, nh := len(pr.p.ids), len(pr.h.ids)
	if np > nh || pr.p.m > pr.h.m {
		return pr, false, nil
	}

	if pr.order, err = searchOrder(ctx, pattern, pr.p); err != nil {
		return nil, false, fmt.Errorf("matcher: order: %w", err)
	}
	pos := make([]int, np)
	for k, i := range pr.order {
		pos[i] = k
	}
	pr.parent = make([]int, np)
	pr.back = make([][]int, np)
	for k, i := range pr.order {
		pr.parent[k] = -1
		for _, n := range pr.p.nbr[i] {
			if pos[n] < k {
				pr.back[k] = append(pr.back[k], n)
				if pr.parent[k] < 0 || pos[n] < pos[pr.parent[k]] {
					pr.parent[k] = n
				}
			}
		}
	}

	pr.all = newBitset(nh)
	for j := 0; j < nh; j++ {
		pr.all.set(j)
	}
	pr.used = newBitset(nh)
	pr.assign = make([]int, np)
	pr.dom = make([]bitset, np)
	for i := 0; i < np; i++ {
		pr.assign[i] = -1
		pr.dom[i] = newBitset(nh)
		for j := 0; j < nh; j++ {
			if pr.h.deg[j] >= pr.p.deg[i] {
				pr.dom[i].set(j)
			}
		}
	}

	return pr, pr.refine(), nil
}

// searchOrder lists pattern indices tree by tree (largest first), each tree
// in DFS preorder from its component's highest-degree vertex (lowest ID on
// ties). Every vertex after a tree's root then has a neighbor mapped before it.
func searchOrder(ctx context.Context, pattern *core.Graph, p *indexed) ([]int, error) {
	roots := make([]core.VertexID, len(p.ids))
	copy(roots, p.ids)
	sort.SliceStable(roots, func(a, b int) bool { return p.deg[p.idx[roots[a]]] > p.deg[p.idx[roots[b]]] })

	trees, err := dfs.Components(pattern, dfs.WithContext(ctx), dfs.WithRoots(roots...))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(trees, func(a, b int) bool { return len(trees[a]) > len(trees[b]) })

	order := make([]int, 0, len(p.ids))
	for _, tree := range trees {
		for _, v := range tree {
			order = append(order, p.idx[v])
		}
	}

	return order, nil
}

// refine removes host j from dom[i] whenever some pattern neighbor k of i has
// no candidate adjacent to j (Ullmann refinement), until a fixpoint.
// It returns false once any domain becomes empty.
func (pr *problem) refine() bool {
	none := newBitset(len(pr.h.ids))
	for changed := true; changed; {
		changed = false
		for i, d := range pr.dom {
			d.each(pr.all, none, func(j int) bool {
				for _, k := range pr.p.nbr[i] {
					if !pr.dom[k].intersects(pr.h.adj[j], none) {
						d.clear(j)
						changed = true
						break
					}
				}
				return true
			})
			if d.empty() {
				return false
			}
		}
	}

	return true
}

// extend maps order[pos:] and calls visit for every complete mapping.
// It returns false when the walk must stop (visit asked to, or ctx is done).
func (pr *problem) extend(pos int, visit func() bool) bool {
	if pos == len(pr.order) {
		return visit()
	}
	if pr.steps++; pr.steps%cancelCheckEvery == 0 {
		if err := pr.ctx.Err(); err != nil {
			pr.err = err
			return false
		}
	}

	i := pr.order[pos]
	filter := pr.all
	if par := pr.parent[pos]; par >= 0 {
		filter = pr.h.adj[pr.assign[par]]
	}

	return pr.dom[i].each(filter, pr.used, func(j int) bool {
		if !pr.consistent(pos, j) {
			return true
		}
		pr.assign[i] = j
		pr.used.set(j)
		cont := true
		if !pr.forwardDead(i, j) {
			cont = pr.extend(pos+1, visit)
		}
		pr.used.clear(j)
		pr.assign[i] = -1
		return cont
	})
}

// consistent reports whether host j is adjacent to the images of all
// earlier-mapped neighbors of the pattern vertex at pos.
func (pr *problem) consistent(pos, j int) bool {
	for _, k := range pr.back[pos] {
		if !pr.h.adj[j].has(pr.assign[k]) {
			return false
		}
	}

	return true
}

// forwardDead reports whether mapping i→j leaves some unmapped pattern
// neighbor of i with no free candidate adjacent to j.
func (pr *problem) forwardDead(i, j int) bool {
	for _, k := range pr.p.nbr[i] {
		if pr.assign[k] < 0 && !pr.dom[k].intersects(pr.h.adj[j], pr.used) {
			return true
		}
	}

	return false
}

// mapping converts the current assignment into vertex IDs.
func (pr *problem) mapping() Mapping {
	m := make(Mapping, len(pr.assign))
	for i, j := range pr.assign {
		m[pr.p.ids[i]] = pr.h.ids[j]
	}

	return m
}
