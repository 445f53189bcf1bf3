// This file implements the unweighted hop-count solver.
package path

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// BFSDistance computes the minimum-hop path from source to target, treating
// every edge as unit cost. Weight carries the hop count.
//
// Complexity: O(V + E) time, O(V) memory.
func BFSDistance[N core.Node](v core.View[N], source, target N, opts ...Option) (Result[N, int], error) {
	var zero Result[N, int]

	// 1) Validate endpoints before any computation.
	if v.Base() == nil {
		return zero, ErrNilGraph
	}
	if !v.Base().HasNode(source) {
		return zero, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !v.Base().HasNode(target) {
		return zero, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}

	// 2) Trivial same-node query.
	if source == target {
		return Result[N, int]{Found: true, Nodes: []N{source}}, nil
	}

	// 3) Standard parent-tracking BFS.
	opt := buildOptions(opts)
	n := v.Base().NodeCount()
	prev := make(map[N]N, n)
	depth := map[N]int{source: 0}
	queue := []N{source}

	for len(queue) > 0 {
		if err := opt.ctx.Err(); err != nil {
			return zero, fmt.Errorf("path: %w", err)
		}
		u := queue[0]
		queue = queue[1:]

		succ, err := v.Successors(u)
		if err != nil {
			return zero, fmt.Errorf("path: successors of %v: %w", u, err)
		}
		for _, x := range succ {
			if _, seen := depth[x]; seen {
				continue
			}
			depth[x] = depth[u] + 1
			prev[x] = u
			if x == target {
				return Result[N, int]{
					Found:  true,
					Nodes:  rebuild(prev, source, target),
					Weight: depth[x],
				}, nil
			}
			queue = append(queue, x)
		}
	}

	// 4) Unreachable: a complete negative result.
	return zero, nil
}
