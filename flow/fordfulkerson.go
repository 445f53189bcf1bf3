package flow

import (
	"fmt"
	"maps"
	"slices"

	"github.com/avelty/grava/core"
)

// FordFulkerson computes the maximum flow from source to sink by repeatedly
// locating an augmenting path in the residual graph with a depth-first
// search and pushing its bottleneck capacity. The flow value is returned
// together with the final residual capacities.
//
// Complexity: O(E*F) augmentations for integral capacities with maximum
// flow F.
func FordFulkerson[N core.Node, W any](g core.Directed[N], wt core.Weighted[N, W], ar core.FlowArith[W], source, sink N, opts ...Option) (Result[N, W], error) {
	return run(g, wt, ar, source, sink, opts, (*residualNet[N, W]).dfsPath)
}

// run is the shared augmenting-path loop; the two solvers differ only in the
// path-finding strategy.
func run[N core.Node, W any](g core.Directed[N], wt core.Weighted[N, W], ar core.FlowArith[W], source, sink N, opts []Option, findPath func(*residualNet[N, W], N, N) []N) (Result[N, W], error) {
	// 1) Preconditions.
	if err := validate(g, wt, ar, source, sink); err != nil {
		return Result[N, W]{}, err
	}
	opt := buildOptions(opts)

	// 2) Materialize residual capacities.
	net, err := buildResidual(g, wt, ar)
	if err != nil {
		return Result[N, W]{}, err
	}

	// 3) Augment until no residual path remains.
	total := ar.Zero()
	for {
		if err := opt.ctx.Err(); err != nil {
			return Result[N, W]{}, fmt.Errorf("flow: %w", err)
		}
		path := findPath(net, source, sink)
		if path == nil {
			break
		}
		b := net.bottleneck(path)
		net.augment(path, b)
		total = ar.Add(total, b)
	}

	return Result[N, W]{Value: total, Residual: net.cap}, nil
}

// dfsPath finds any source→sink path with positive residual capacity using
// an explicit stack, or nil when none exists. Neighbors are probed in sorted
// order so runs are reproducible.
func (net *residualNet[N, W]) dfsPath(source, sink N) []N {
	prev := map[N]N{source: source}
	stack := []N{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == sink {
			return rebuildPath(prev, source, sink)
		}
		for _, v := range slices.Sorted(maps.Keys(net.cap[u])) {
			if _, seen := prev[v]; seen || !net.positive(u, v) {
				continue
			}
			prev[v] = u
			stack = append(stack, v)
		}
	}

	return nil
}

// rebuildPath follows prev links back from sink, returning the forward
// source..sink sequence.
func rebuildPath[N core.Node](prev map[N]N, source, sink N) []N {
	var rev []N
	for cur := sink; cur != source; cur = prev[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, source)
	slices.Reverse(rev)

	return rev
}
