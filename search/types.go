// This file declares the mapping result, sentinel errors, options, and the
// adjacency snapshot shared by the clique searches.
package search

import (
	"context"
	"fmt"

	"github.com/avelty/grava/core"
)

// ErrNilGraph is returned when a required graph is nil.
var ErrNilGraph = fmt.Errorf("search: %w", core.ErrNilGraph)

// Mapping is the outcome of an isomorphism query. Either Found is true with
// a complete pattern→target bijection (injection for the subgraph variant),
// or Found is false with a nil Pairs map.
type Mapping[A, B core.Node] struct {
	Found bool
	Pairs map[A]B
}

// Option adjusts a search run.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext attaches a context checked inside the backtracking loops, so
// exponential searches can be cancelled. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// adjacency is an undirected neighbor-set snapshot with self-loops dropped,
// taken once per search so membership tests are O(1) afterwards.
type adjacency[N core.Node] struct {
	nodes []N
	set   map[N]map[N]bool
}

func snapshot[N core.Node](g core.Undirected[N]) (*adjacency[N], error) {
	adj := &adjacency[N]{nodes: g.Nodes(), set: make(map[N]map[N]bool, g.NodeCount())}
	for _, u := range adj.nodes {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		row := make(map[N]bool, len(nbs))
		for _, v := range nbs {
			if v != u {
				row[v] = true
			}
		}
		adj.set[u] = row
	}

	return adj, nil
}

// connected reports whether u and v are adjacent.
func (a *adjacency[N]) connected(u, v N) bool { return a.set[u][v] }
