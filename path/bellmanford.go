// This file implements Bellman-Ford: |V|-1 full relaxation passes plus one
// verification pass that converts any further improvement into
// ErrNegativeCycle.
package path

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// BellmanFord computes the minimum-weight path from source to target,
// tolerating negative edge weights. If a cycle of negative total weight is
// reachable from the source, the call fails with ErrNegativeCycle and no
// result is returned.
//
// Complexity: O(V · E) time, O(V + E) memory.
func BellmanFord[N core.Node, W any](
	v core.View[N],
	wt core.Weighted[N, W],
	ar core.Arith[W],
	source, target N,
	opts ...Option,
) (Result[N, W], error) {
	var zero Result[N, W]

	// 1) Validate all inputs up front.
	if err := validate(v, wt, ar, source, target); err != nil {
		return zero, err
	}
	opt := buildOptions(opts)

	// 2) Materialize the edge list once; every pass re-scans it.
	nodes := v.Base().Nodes()
	edges := make([]core.WeightedEdge[N, W], 0, v.Base().EdgeCount())
	for _, u := range nodes {
		succ, err := v.Successors(u)
		if err != nil {
			return zero, fmt.Errorf("path: successors of %v: %w", u, err)
		}
		for _, x := range succ {
			w, werr := wt.EdgeWeight(u, x)
			if werr != nil {
				return zero, fmt.Errorf("path: weight of %v→%v: %w", u, x, werr)
			}
			edges = append(edges, core.WeightedEdge[N, W]{From: u, To: x, Weight: w})
		}
	}

	// 3) |V|-1 relaxation passes. Reachability is tracked by map presence;
	// the weight type has no infinity.
	dist := map[N]W{source: ar.Zero()}
	prev := make(map[N]N, len(nodes))

	relax := func() bool {
		improved := false
		for _, e := range edges {
			du, ok := dist[e.From]
			if !ok {
				continue
			}
			cand := ar.Add(du, e.Weight)
			if cur, seen := dist[e.To]; !seen || ar.Compare(cand, cur) < 0 {
				dist[e.To] = cand
				prev[e.To] = e.From
				improved = true
			}
		}

		return improved
	}

	for i := 1; i < len(nodes); i++ {
		if err := opt.ctx.Err(); err != nil {
			return zero, fmt.Errorf("path: %w", err)
		}
		if !relax() {
			break // fixpoint reached early
		}
	}

	// 4) One more pass still improving a distance proves a negative cycle.
	if relax() {
		return zero, ErrNegativeCycle
	}

	// 5) Assemble the snapshot.
	if d, ok := dist[target]; ok {
		if source == target {
			return Result[N, W]{Found: true, Nodes: []N{source}, Weight: ar.Zero()}, nil
		}

		return Result[N, W]{Found: true, Nodes: rebuild(prev, source, target), Weight: d}, nil
	}

	return zero, nil
}
