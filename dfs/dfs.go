// Package dfs implements depth-first traversal on core.Graph: a spanning
// forest with caller-chosen root order, and connected components built on it.
//
// Neighbors are explored in ascending ID order, so results are deterministic.
// The walk keeps an explicit stack instead of recursing.
//
// Complexity:
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted by core).
//   - Memory: O(V) for the stack and the result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if a WithRoots vertex is missing.
//   - ctx.Err()                 once the WithContext context is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
)

// frame is one vertex on the walk stack with its next neighbor to try.
type frame struct {
	id   core.VertexID
	nbs  []core.VertexID
	next int
}

// walker carries the state shared by every tree of one traversal.
type walker struct {
	g       *core.Graph
	opts    options
	res     *Result
	visited map[core.VertexID]bool
}

func newWalker(g *core.Graph, opts []Option) *walker {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := g.VertexCount()

	return &walker{
		g:    g,
		opts: o,
		res: &Result{
			Preorder: make([]core.VertexID, 0, n),
			Parent:   make(map[core.VertexID]core.VertexID, n),
		},
		visited: make(map[core.VertexID]bool, n),
	}
}

// Forest walks every vertex of g, starting a new tree at each unvisited
// root: first the WithRoots order, then the rest in ascending ID order.
func Forest(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, opts)
	for _, r := range w.opts.roots {
		if !g.HasVertex(r) {
			return nil, fmt.Errorf("dfs: root %d: %w", r, ErrStartVertexNotFound)
		}
	}
	for _, roots := range [][]core.VertexID{w.opts.roots, g.Vertices()} {
		for _, r := range roots {
			if w.visited[r] {
				continue
			}
			if err := w.tree(r); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// tree walks everything reachable from root and records it as one tree.
func (w *walker) tree(root core.VertexID) error {
	first := len(w.res.Preorder)
	var stack []frame
	push := func(v core.VertexID) error {
		if err := w.discover(v); err != nil {
			return err
		}
		nbs, err := w.g.NeighborIDs(v)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%d): %w", v, err)
		}
		stack = append(stack, frame{id: v, nbs: nbs})

		return nil
	}

	if err := push(root); err != nil {
		return err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbs) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.nbs[top.next]
		top.next++
		if w.visited[v] {
			continue
		}
		w.res.Parent[v] = top.id
		if err := push(v); err != nil {
			return err
		}
	}
	end := len(w.res.Preorder)
	w.res.Trees = append(w.res.Trees, w.res.Preorder[first:end:end])

	return nil
}

// discover polls the context, then marks v visited.
func (w *walker) discover(v core.VertexID) error {
	if err := w.opts.ctx.Err(); err != nil {
		return err
	}
	w.visited[v] = true
	w.res.Preorder = append(w.res.Preorder, v)

	return nil
}
