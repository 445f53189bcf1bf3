// This file implements Dijkstra's algorithm with a lazy-decrease-key binary
// heap: improvements push duplicate entries, stale pops are skipped via the
// visited set.
package path

import (
	"container/heap"
	"fmt"

	"github.com/avelty/grava/core"
)

// Dijkstra computes the minimum-weight path from source to target. Edge
// weights are assumed non-negative under ar's ordering; this is not
// validated. A same-node query returns a zero-length single-node path
// without probing any edge.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra[N core.Node, W any](
	v core.View[N],
	wt core.Weighted[N, W],
	ar core.Arith[W],
	source, target N,
	opts ...Option,
) (Result[N, W], error) {
	return dijkstra(v, wt, ar, source, target, nil, opts)
}

// dijkstra is the shared relax-and-pop loop; a non-nil heuristic turns it
// into A* by biasing the heap key.
func dijkstra[N core.Node, W any](
	v core.View[N],
	wt core.Weighted[N, W],
	ar core.Arith[W],
	source, target N,
	heuristic func(N) W,
	opts []Option,
) (Result[N, W], error) {
	var zero Result[N, W]

	// 1) Validate all inputs up front.
	if err := validate(v, wt, ar, source, target); err != nil {
		return zero, err
	}
	opt := buildOptions(opts)

	// 2) Same-node short-circuit: no edge is probed.
	if source == target {
		return Result[N, W]{Found: true, Nodes: []N{source}, Weight: ar.Zero()}, nil
	}

	// 3) Prepare state and seed the heap with the source at zero.
	n := v.Base().NodeCount()
	dist := make(map[N]W, n)
	prev := make(map[N]N, n)
	visited := make(map[N]bool, n)

	key := func(node N, d W) W {
		if heuristic == nil {
			return d
		}

		return ar.Add(d, heuristic(node))
	}

	pq := &nodePQ[N, W]{cmp: ar.Compare}
	heap.Init(pq)
	dist[source] = ar.Zero()
	heap.Push(pq, pqItem[N, W]{node: source, dist: ar.Zero(), key: key(source, ar.Zero())})

	// 4) Relax-and-pop until the target is finalized or the heap drains.
	for pq.Len() > 0 {
		if err := opt.ctx.Err(); err != nil {
			return zero, fmt.Errorf("path: %w", err)
		}
		it := heap.Pop(pq).(pqItem[N, W])
		u := it.node
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		if u == target {
			return Result[N, W]{
				Found:  true,
				Nodes:  rebuild(prev, source, target),
				Weight: dist[u],
			}, nil
		}

		succ, err := v.Successors(u)
		if err != nil {
			return zero, fmt.Errorf("path: successors of %v: %w", u, err)
		}
		for _, x := range succ {
			if visited[x] {
				continue
			}
			w, werr := wt.EdgeWeight(u, x)
			if werr != nil {
				return zero, fmt.Errorf("path: weight of %v→%v: %w", u, x, werr)
			}
			cand := ar.Add(dist[u], w)
			if cur, seen := dist[x]; seen && ar.Compare(cand, cur) >= 0 {
				continue
			}
			dist[x] = cand
			prev[x] = u
			heap.Push(pq, pqItem[N, W]{node: x, dist: cand, key: key(x, cand)})
		}
	}

	// 5) Target unreachable.
	return zero, nil
}
