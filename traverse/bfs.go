package traverse

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// queueItem pairs a node with its BFS tree parent.
type queueItem[N core.Node] struct {
	node      N
	parent    N
	hasParent bool
}

// BFS walks the view breadth-first from start, classifying probed edges by
// parent tracking and notifying vis in traversal order: an edge to an
// undiscovered node is a tree edge, any other probed edge is a back edge. In
// undirected graphs the edge back to the queue parent is suppressed from
// back-edge classification.
//
// Returns ErrNilGraph for the zero view and ErrStartNotFound when start is
// absent. A context installed via WithContext aborts with its error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[N core.Node](v core.View[N], start N, vis Visitor[N], opts ...Option) error {
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

	// 3) Seed the queue with the start node.
	n := v.Base().NodeCount()
	visited := make(map[N]bool, n)
	queue := make([]queueItem[N], 0, n)

	visited[start] = true
	vis.DiscoverNode(start)
	queue = append(queue, queueItem[N]{node: start})

	// 4) Process until the queue drains.
	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		succ, err := v.Successors(item.node)
		if err != nil {
			return fmt.Errorf("traverse: successors of %v: %w", item.node, err)
		}

		for _, x := range succ {
			vis.ExamineEdge(item.node, x)

			// Undirected parent edge: the tree edge seen from the far
			// side, not a back edge.
			if !v.IsDirected() && item.hasParent && x == item.parent {
				continue
			}

			if !visited[x] {
				visited[x] = true
				vis.TreeEdge(item.node, x)
				vis.DiscoverNode(x)
				queue = append(queue, queueItem[N]{node: x, parent: item.node, hasParent: true})
				continue
			}
			vis.BackEdge(item.node, x)
		}

		vis.FinishNode(item.node)
	}

	return nil
}
