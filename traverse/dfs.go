package traverse

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// dfsFrame is one entry of the explicit DFS stack: a node together with its
// fetched successor list and the probe position within it.
type dfsFrame[N core.Node] struct {
	node      N
	parent    N
	hasParent bool
	succ      []N
	idx       int
}

// dfsWalker holds mutable state for one DFS execution.
type dfsWalker[N core.Node] struct {
	view  core.View[N]
	vis   Visitor[N]
	opts  options
	state map[N]int
	disc  map[N]int
	clock int
}

// DFS walks the view depth-first from start, classifying each probed edge by
// discovery timestamps and notifying vis in traversal order. The walk uses an
// explicit frame stack, so depth is bounded by heap memory only.
//
// Returns ErrNilGraph for the zero view and ErrStartNotFound when start is
// absent. A context installed via WithContext aborts with its error.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS[N core.Node](v core.View[N], start N, vis Visitor[N], opts ...Option) error {
	// 1) Validate inputs.
	if v.Base() == nil {
		return ErrNilGraph
	}
	if !v.Base().HasNode(start) {
		return ErrStartNotFound
	}
	if vis == nil {
		vis = NoVisitor[N]{}
	}

	// 2) Apply options.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3) Run the walk.
	n := v.Base().NodeCount()
	w := &dfsWalker[N]{
		view:  v,
		vis:   vis,
		opts:  o,
		state: make(map[N]int, n),
		disc:  make(map[N]int, n),
	}

	return w.walk(start)
}

// walk drives the frame stack from start until exhaustion or cancellation.
func (w *dfsWalker[N]) walk(start N) error {
	stack := make([]dfsFrame[N], 0, 16)

	top, err := w.discover(start, dfsFrame[N]{})
	if err != nil {
		return err
	}
	stack = append(stack, top)

	for len(stack) > 0 {
		// Cancellation check once per step.
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]

		// Frame exhausted: finish the node and pop.
		if f.idx >= len(f.succ) {
			w.state[f.node] = black
			w.vis.FinishNode(f.node)
			stack = stack[:len(stack)-1]
			continue
		}

		x := f.succ[f.idx]
		f.idx++

		w.vis.ExamineEdge(f.node, x)

		// In undirected walks the edge back to the tree parent is the tree
		// edge seen from the far side; it gets no second classification.
		if !w.view.IsDirected() && f.hasParent && x == f.parent {
			continue
		}

		switch w.state[x] {
		case white:
			w.vis.TreeEdge(f.node, x)
			child, derr := w.discover(x, dfsFrame[N]{parent: f.node, hasParent: true})
			if derr != nil {
				return derr
			}
			stack = append(stack, child)
		case gray:
			w.vis.BackEdge(f.node, x)
		default: // black
			if w.view.IsDirected() && w.disc[x] > w.disc[f.node] {
				w.vis.ForwardEdge(f.node, x)
			} else {
				w.vis.CrossEdge(f.node, x)
			}
		}
	}

	return nil
}

// discover stamps n, fires DiscoverNode, fetches successors, and returns the
// ready-to-push frame. The skeleton frame carries the parent link.
func (w *dfsWalker[N]) discover(n N, f dfsFrame[N]) (dfsFrame[N], error) {
	w.state[n] = gray
	w.disc[n] = w.clock
	w.clock++
	w.vis.DiscoverNode(n)

	succ, err := w.view.Successors(n)
	if err != nil {
		return f, fmt.Errorf("traverse: successors of %v: %w", n, err)
	}
	f.node = n
	f.succ = succ

	return f, nil
}
