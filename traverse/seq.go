package traverse

import (
	"iter"

	"github.com/avelty/grava/core"
)

// DepthFirstNodes returns the nodes reachable from start as a lazy pre-order
// depth-first sequence. The sequence is finite and restartable: each ranging
// allocates fresh traversal state. Neighbor order is the store's order.
//
// Returns ErrNilGraph for the zero view and ErrStartNotFound when start is
// absent; both are reported before the sequence is produced.
//
// Complexity per ranging: O(V + E) time, O(V) memory.
func DepthFirstNodes[N core.Node](v core.View[N], start N) (iter.Seq[N], error) {
	if v.Base() == nil {
		return nil, ErrNilGraph
	}
	if !v.Base().HasNode(start) {
		return nil, ErrStartNotFound
	}

	return func(yield func(N) bool) {
		visited := map[N]bool{start: true}
		stack := []N{start}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			succ, err := v.Successors(n)
			if err != nil {
				return
			}
			// Reverse push so the store's first neighbor is walked first.
			for i := len(succ) - 1; i >= 0; i-- {
				if !visited[succ[i]] {
					visited[succ[i]] = true
					stack = append(stack, succ[i])
				}
			}
		}
	}, nil
}

// BreadthFirstNodes returns the nodes reachable from start as a lazy
// breadth-first sequence, in increasing hop distance. The sequence is finite
// and restartable: each ranging allocates fresh traversal state.
//
// Returns ErrNilGraph for the zero view and ErrStartNotFound when start is
// absent; both are reported before the sequence is produced.
//
// Complexity per ranging: O(V + E) time, O(V) memory.
func BreadthFirstNodes[N core.Node](v core.View[N], start N) (iter.Seq[N], error) {
	if v.Base() == nil {
		return nil, ErrNilGraph
	}
	if !v.Base().HasNode(start) {
		return nil, ErrStartNotFound
	}

	return func(yield func(N) bool) {
		visited := map[N]bool{start: true}
		queue := []N{start}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			succ, err := v.Successors(n)
			if err != nil {
				return
			}
			for _, x := range succ {
				if !visited[x] {
					visited[x] = true
					queue = append(queue, x)
				}
			}
		}
	}, nil
}
