// This file implements A* as Dijkstra with a heuristic-biased heap key.
package path

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// AStar computes a minimum-weight path from source to target, ordering the
// frontier by tentative distance plus heuristic(node). With an admissible
// heuristic (never overestimating the true remaining cost) the result is
// optimal; admissibility is never validated, so an inadmissible heuristic
// silently yields a possibly suboptimal path.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func AStar[N core.Node, W any](
	v core.View[N],
	wt core.Weighted[N, W],
	ar core.Arith[W],
	source, target N,
	heuristic func(N) W,
	opts ...Option,
) (Result[N, W], error) {
	if heuristic == nil {
		return Result[N, W]{}, fmt.Errorf("path: nil heuristic: %w", core.ErrNilGraph)
	}

	return dijkstra(v, wt, ar, source, target, heuristic, opts)
}
