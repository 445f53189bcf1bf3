package flow

import (
	"maps"
	"slices"

	"github.com/avelty/grava/core"
)

// MinCut computes a minimum source/sink cut: it runs EdmondsKarp, then
// partitions nodes by reachability in the final residual graph. Nodes still
// reachable from the source form SourceSide; everything else is SinkSide.
// The cut edges are the original graph edges crossing SourceSide→SinkSide,
// and their total capacity equals the maximum-flow value by duality.
//
// Complexity: O(V*E^2), dominated by the flow computation.
func MinCut[N core.Node, W any](g core.Directed[N], wt core.Weighted[N, W], ar core.FlowArith[W], source, sink N, opts ...Option) (Cut[N, W], error) {
	// 1) Saturate the network.
	res, err := EdmondsKarp(g, wt, ar, source, sink, opts...)
	if err != nil {
		return Cut[N, W]{}, err
	}

	// 2) Residual reachability from the source.
	reach := map[N]bool{source: true}
	queue := []N{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range slices.Sorted(maps.Keys(res.Residual[u])) {
			if reach[v] || ar.Compare(res.Residual[u][v], ar.Zero()) <= 0 {
				continue
			}
			reach[v] = true
			queue = append(queue, v)
		}
	}

	// 3) Partition and collect crossing edges from the original graph.
	cut := Cut[N, W]{Capacity: ar.Zero()}
	for _, n := range g.Nodes() {
		if reach[n] {
			cut.SourceSide = append(cut.SourceSide, n)
		} else {
			cut.SinkSide = append(cut.SinkSide, n)
		}
	}
	for _, u := range cut.SourceSide {
		succ, err := g.OutNeighbors(u)
		if err != nil {
			return Cut[N, W]{}, err
		}
		for _, v := range succ {
			if reach[v] || v == u {
				continue
			}
			w, ok := wt.TryEdgeWeight(u, v)
			if !ok {
				continue
			}
			cut.Edges = append(cut.Edges, core.WeightedEdge[N, W]{From: u, To: v, Weight: w})
			cut.Capacity = ar.Add(cut.Capacity, w)
		}
	}

	return cut, nil
}
