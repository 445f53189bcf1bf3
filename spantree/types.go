// This file declares the Result snapshot, sentinel errors, the edge
// harvester, and the disjoint-set union shared by Kruskal and Prim.
package spantree

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/avelty/grava/core"
)

// Sentinel errors for the spanning-tree builders.
var (
	// ErrNilGraph is returned when the graph is nil.
	ErrNilGraph = fmt.Errorf("spantree: %w", core.ErrNilGraph)

	// ErrNilWeights is returned when the weight capability is nil.
	ErrNilWeights = fmt.Errorf("spantree: nil weight capability: %w", core.ErrNilGraph)

	// ErrNoArith is returned when no arithmetic trait is supplied for the
	// weight type.
	ErrNoArith = fmt.Errorf("spantree: %w", core.ErrUnsupportedWeight)

	// ErrRootNotFound is returned by Prim when the root node is absent.
	ErrRootNotFound = fmt.Errorf("spantree: root node: %w", core.ErrNotFound)
)

// Option configures optional builder behavior.
type Option func(*options)

// options holds configurable builder parameters.
type options struct {
	ctx context.Context
}

func buildOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithContext enables cancellation of a build, checked once per considered
// edge. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result is the outcome of a spanning-tree build: the chosen edges in
// canonical From<To form and their total weight. For Kruskal on a
// disconnected graph Edges describes a forest; for Prim it describes the
// tree of the root's component only.
type Result[N core.Node, W any] struct {
	Edges []core.WeightedEdge[N, W]
	Total W
}

// validate runs the shared precondition order: graph, weights, arithmetic.
func validate[N core.Node, W any](g core.Undirected[N], wt core.Weighted[N, W], ar core.Arith[W]) error {
	if g == nil {
		return ErrNilGraph
	}
	if wt == nil {
		return ErrNilWeights
	}
	if ar == nil {
		return ErrNoArith
	}

	return nil
}

// harvestEdges collects every undirected edge exactly once in canonical
// From<To form, sorted by endpoints. Self-loops are skipped: they can never
// belong to a spanning tree.
func harvestEdges[N core.Node, W any](g core.Undirected[N], wt core.Weighted[N, W]) ([]core.WeightedEdge[N, W], error) {
	var edges []core.WeightedEdge[N, W]
	for _, u := range g.Nodes() {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbs {
			if v <= u {
				continue // seen from the other endpoint, or a self-loop
			}
			w, err := edgeWeight(wt, u, v)
			if err != nil {
				return nil, err
			}
			edges = append(edges, core.WeightedEdge[N, W]{From: u, To: v, Weight: w})
		}
	}

	return edges, nil
}

func edgeWeight[N core.Node, W any](wt core.Weighted[N, W], u, v N) (W, error) {
	w, ok := wt.TryEdgeWeight(u, v)
	if !ok {
		var zero W
		return zero, fmt.Errorf("spantree: edge %v-%v weight: %w", u, v, core.ErrNotFound)
	}

	return w, nil
}

// sortEdges orders edges by weight under cmpW, breaking ties by endpoints so
// the chosen tree is deterministic for equal-weight alternatives.
func sortEdges[N core.Node, W any](edges []core.WeightedEdge[N, W], cmpW func(a, b W) int) {
	slices.SortFunc(edges, func(a, b core.WeightedEdge[N, W]) int {
		if c := cmpW(a.Weight, b.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})
}

// dsu is a disjoint-set union with path halving and union by rank.
type dsu[N core.Node] struct {
	parent map[N]N
	rank   map[N]int
}

func newDSU[N core.Node](nodes []N) *dsu[N] {
	d := &dsu[N]{
		parent: make(map[N]N, len(nodes)),
		rank:   make(map[N]int, len(nodes)),
	}
	for _, n := range nodes {
		d.parent[n] = n
	}

	return d
}

func (d *dsu[N]) find(n N) N {
	for d.parent[n] != n {
		d.parent[n] = d.parent[d.parent[n]] // path halving
		n = d.parent[n]
	}

	return n
}

// union merges the sets of a and b, reporting false if they were already one.
func (d *dsu[N]) union(a, b N) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return true
}
