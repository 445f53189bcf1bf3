package spantree

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// Kruskal builds a minimum spanning tree of g by considering edges in
// ascending weight order and keeping each edge that joins two previously
// separate components. On a disconnected graph the result is a minimum
// spanning forest with one tree per component; this is not an error.
//
// Equal-weight edges are tie-broken by endpoints, so the chosen tree is
// deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal[N core.Node, W any](g core.Undirected[N], wt core.Weighted[N, W], ar core.Arith[W], opts ...Option) (Result[N, W], error) {
	return kruskal(g, wt, ar, false, opts)
}

// MaximumSpanningTree is Kruskal with the weight order inverted: edges are
// considered heaviest first, so the kept forest maximizes total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func MaximumSpanningTree[N core.Node, W any](g core.Undirected[N], wt core.Weighted[N, W], ar core.Arith[W], opts ...Option) (Result[N, W], error) {
	return kruskal(g, wt, ar, true, opts)
}

// kruskal runs the forest construction with the weight order optionally
// inverted.
func kruskal[N core.Node, W any](g core.Undirected[N], wt core.Weighted[N, W], ar core.Arith[W], invert bool, opts []Option) (Result[N, W], error) {
	// 1) Preconditions.
	if err := validate(g, wt, ar); err != nil {
		return Result[N, W]{}, err
	}
	opt := buildOptions(opts)
	cmpW := ar.Compare
	if invert {
		cmpW = func(a, b W) int { return ar.Compare(b, a) }
	}

	// 2) Harvest and order the edge set.
	edges, err := harvestEdges(g, wt)
	if err != nil {
		return Result[N, W]{}, err
	}
	sortEdges(edges, cmpW)

	// 3) Greedy forest growth: an edge is kept iff it merges two components.
	d := newDSU(g.Nodes())
	res := Result[N, W]{Total: ar.Zero()}
	want := g.NodeCount() - 1
	for _, e := range edges {
		if err := opt.ctx.Err(); err != nil {
			return Result[N, W]{}, fmt.Errorf("spantree: %w", err)
		}
		if !d.union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total = ar.Add(res.Total, e.Weight)
		if len(res.Edges) == want {
			break // spanning tree complete
		}
	}

	return res, nil
}
