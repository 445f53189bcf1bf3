// This file implements cycle detection dispatching on the view's shape:
// three-color walk with gray back edges for directed graphs, parent-tracking
// revisit for undirected graphs. Both walks are iterative.
package components

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// Node visitation states for the directed three-color walk.
const (
	white = iota
	gray
	black
)

// HasCycle reports whether the view contains any cycle. A self-loop is a
// cycle in both shapes.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle[N core.Node](v core.View[N]) (bool, error) {
	cyc, err := FindCycle(v)
	if err != nil {
		return false, err
	}

	return len(cyc) > 0, nil
}

// FindCycle returns the nodes of one cycle in order, such that each
// consecutive pair is joined by an edge and an edge from the last node back
// to the first closes the cycle. An acyclic graph yields an empty slice and
// nil error.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle[N core.Node](v core.View[N]) ([]N, error) {
	if v.Base() == nil {
		return nil, ErrNilGraph
	}

	w := &cycleWalker[N]{
		view:   v,
		state:  make(map[N]int, v.Base().NodeCount()),
		parent: make(map[N]N, v.Base().NodeCount()),
	}
	for _, n := range v.Base().Nodes() {
		if w.state[n] != white {
			continue
		}
		cyc, err := w.walk(n)
		if err != nil {
			return nil, err
		}
		if len(cyc) > 0 {
			return cyc, nil
		}
	}

	return nil, nil
}

// cycleWalker holds the shared forest-walk state.
type cycleWalker[N core.Node] struct {
	view   core.View[N]
	state  map[N]int
	parent map[N]N
}

// cycleFrame is one entry of the explicit walk stack.
type cycleFrame[N core.Node] struct {
	node      N
	par       N
	hasParent bool
	succ      []N
	idx       int
}

// walk runs one rooted walk and returns the first cycle it closes, if any.
func (w *cycleWalker[N]) walk(start N) ([]N, error) {
	stack := make([]cycleFrame[N], 0, 16)

	f, err := w.push(start, cycleFrame[N]{})
	if err != nil {
		return nil, err
	}
	stack = append(stack, f)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.idx >= len(top.succ) {
			w.state[top.node] = black
			stack = stack[:len(stack)-1]
			continue
		}

		x := top.succ[top.idx]
		top.idx++

		// Self-loop closes immediately in either shape.
		if x == top.node {
			return []N{x}, nil
		}

		if w.view.IsDirected() {
			switch w.state[x] {
			case white:
				w.parent[x] = top.node
				child, cerr := w.push(x, cycleFrame[N]{par: top.node, hasParent: true})
				if cerr != nil {
					return nil, cerr
				}
				stack = append(stack, child)
			case gray:
				// Back edge to a gray ancestor: reconstruct x..top.node.
				return w.rebuild(x, top.node), nil
			}
			continue
		}

		// Undirected: skip the tree parent, any other revisit is a cycle.
		if top.hasParent && x == top.par {
			continue
		}
		if w.state[x] == white {
			w.parent[x] = top.node
			child, cerr := w.push(x, cycleFrame[N]{par: top.node, hasParent: true})
			if cerr != nil {
				return nil, cerr
			}
			stack = append(stack, child)
			continue
		}
		if w.state[x] == gray {
			return w.rebuild(x, top.node), nil
		}
	}

	return nil, nil
}

// push marks n gray and builds its frame from the skeleton carrying the
// parent link.
func (w *cycleWalker[N]) push(n N, f cycleFrame[N]) (cycleFrame[N], error) {
	w.state[n] = gray
	succ, err := w.view.Successors(n)
	if err != nil {
		return f, fmt.Errorf("components: successors of %v: %w", n, err)
	}
	f.node = n
	f.succ = succ

	return f, nil
}

// rebuild follows parent back-pointers from last up to first and reverses
// the chain, yielding the cycle first..last in edge order.
func (w *cycleWalker[N]) rebuild(first, last N) []N {
	var rev []N
	for cur := last; cur != first; cur = w.parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, first)

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
