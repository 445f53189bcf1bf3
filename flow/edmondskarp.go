package flow

import (
	"maps"
	"slices"

	"github.com/avelty/grava/core"
)

// EdmondsKarp computes the maximum flow from source to sink with the same
// contract as FordFulkerson, but augments along shortest residual paths
// found by breadth-first search. The returned flow value is always equal to
// FordFulkerson's on the same graph; the flow decomposition may differ.
//
// Complexity: O(V*E^2).
func EdmondsKarp[N core.Node, W any](g core.Directed[N], wt core.Weighted[N, W], ar core.FlowArith[W], source, sink N, opts ...Option) (Result[N, W], error) {
	return run(g, wt, ar, source, sink, opts, (*residualNet[N, W]).bfsPath)
}

// bfsPath finds a shortest source→sink path with positive residual capacity,
// or nil when none exists.
func (net *residualNet[N, W]) bfsPath(source, sink N) []N {
	prev := map[N]N{source: source}
	queue := []N{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range slices.Sorted(maps.Keys(net.cap[u])) {
			if _, seen := prev[v]; seen || !net.positive(u, v) {
				continue
			}
			prev[v] = u
			if v == sink {
				return rebuildPath(prev, source, sink)
			}
			queue = append(queue, v)
		}
	}

	return nil
}
