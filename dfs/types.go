package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/ramsey/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that a WithRoots vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	ctx   context.Context
	roots []core.VertexID
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRoots sets the order in which Forest and Components try tree roots.
// Vertices not listed are tried afterwards in ascending ID order; a listed
// vertex already reached from an earlier root starts no tree.
func WithRoots(ids ...core.VertexID) Option {
	return func(o *options) {
		o.roots = append([]core.VertexID(nil), ids...)
	}
}

// Result is the outcome of a traversal.
type Result struct {
	// Preorder records vertices in discovery order. Within a tree every
	// vertex after the root has its parent earlier in this slice.
	Preorder []core.VertexID

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots do not appear in this map.
	Parent map[core.VertexID]core.VertexID

	// Trees splits Preorder by tree, one slice per root, in root order.
	Trees [][]core.VertexID
}
