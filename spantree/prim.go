package spantree

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/avelty/grava/core"
)

// primEdge is one frontier entry: a candidate tree edge and the weight it is
// ordered by. Stale entries are skipped on pop via the inTree set.
type primEdge[N core.Node, W any] struct {
	from, to N
	weight   W
}

// primPQ is a min-heap of candidate edges ordered by weight, endpoints as a
// tie-break, following the lazy-decrease-key pattern.
type primPQ[N core.Node, W any] struct {
	items []primEdge[N, W]
	cmp   func(a, b W) int
}

func (pq *primPQ[N, W]) Len() int { return len(pq.items) }
func (pq *primPQ[N, W]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if c := pq.cmp(a.weight, b.weight); c != 0 {
		return c < 0
	}
	if c := cmp.Compare(a.from, b.from); c != 0 {
		return c < 0
	}

	return a.to < b.to
}
func (pq *primPQ[N, W]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *primPQ[N, W]) Push(x any)    { pq.items = append(pq.items, x.(primEdge[N, W])) }
func (pq *primPQ[N, W]) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}

// Prim builds a minimum spanning tree of the component containing root by
// repeatedly attaching the cheapest edge that leaves the tree. On a
// disconnected graph the result spans the root's component only; nodes in
// other components are absent from the result. Callers wanting a full forest
// should use Kruskal.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[N core.Node, W any](g core.Undirected[N], wt core.Weighted[N, W], ar core.Arith[W], root N, opts ...Option) (Result[N, W], error) {
	// 1) Preconditions.
	if err := validate(g, wt, ar); err != nil {
		return Result[N, W]{}, err
	}
	if !g.HasNode(root) {
		return Result[N, W]{}, ErrRootNotFound
	}
	opt := buildOptions(opts)

	// 2) Seed the frontier with the root's incident edges.
	inTree := map[N]bool{root: true}
	pq := &primPQ[N, W]{cmp: ar.Compare}
	res := Result[N, W]{Total: ar.Zero()}
	if err := pushIncident(g, wt, pq, root, inTree); err != nil {
		return Result[N, W]{}, err
	}

	// 3) Attach the cheapest crossing edge until the frontier drains.
	for pq.Len() > 0 {
		if err := opt.ctx.Err(); err != nil {
			return Result[N, W]{}, fmt.Errorf("spantree: %w", err)
		}
		e := heap.Pop(pq).(primEdge[N, W])
		if inTree[e.to] {
			continue // stale: both endpoints absorbed since the push
		}
		inTree[e.to] = true

		u, v := e.from, e.to
		if v < u {
			u, v = v, u // canonical From<To form
		}
		res.Edges = append(res.Edges, core.WeightedEdge[N, W]{From: u, To: v, Weight: e.weight})
		res.Total = ar.Add(res.Total, e.weight)

		if err := pushIncident(g, wt, pq, e.to, inTree); err != nil {
			return Result[N, W]{}, err
		}
	}

	return res, nil
}

// pushIncident queues every edge from n to a node not yet in the tree.
func pushIncident[N core.Node, W any](g core.Undirected[N], wt core.Weighted[N, W], pq *primPQ[N, W], n N, inTree map[N]bool) error {
	nbs, err := g.Neighbors(n)
	if err != nil {
		return err
	}
	for _, v := range nbs {
		if inTree[v] {
			continue // covers self-loops: n itself is already in the tree
		}
		w, err := edgeWeight(wt, n, v)
		if err != nil {
			return err
		}
		heap.Push(pq, primEdge[N, W]{from: n, to: v, weight: w})
	}

	return nil
}
