// This file implements strongly connected components with the single-pass
// index/low-link algorithm, driven by an explicit frame stack.
package components

import (
	"fmt"

	"github.com/avelty/grava/core"
)

// sccState carries all bookkeeping of one index/low-link run.
type sccState[N core.Node] struct {
	g       core.Directed[N]
	index   map[N]int
	lowlink map[N]int
	onStack map[N]bool
	stack   []N
	next    int
	sccs    [][]N
}

// sccFrame is one entry of the explicit DFS stack.
type sccFrame[N core.Node] struct {
	node N
	succ []N
	idx  int
}

// StronglyConnectedComponents partitions a directed graph into maximal sets
// of mutually reachable nodes. Isolated nodes form singleton components.
// Components are emitted in reverse discovery order: a component is complete
// before any component that can reach it.
//
// Complexity: O(V + E) time, O(V) memory.
func StronglyConnectedComponents[N core.Node](g core.Directed[N]) ([][]N, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Walk every undiscovered node.
	nodes := g.Nodes()
	s := &sccState[N]{
		g:       g,
		index:   make(map[N]int, len(nodes)),
		lowlink: make(map[N]int, len(nodes)),
		onStack: make(map[N]bool, len(nodes)),
	}
	for _, n := range nodes {
		if _, seen := s.index[n]; !seen {
			if err := s.connect(n); err != nil {
				return nil, err
			}
		}
	}

	return s.sccs, nil
}

// connect runs the low-link walk rooted at start using an explicit stack.
func (s *sccState[N]) connect(start N) error {
	frames := make([]sccFrame[N], 0, 16)

	f, err := s.discover(start)
	if err != nil {
		return err
	}
	frames = append(frames, f)

	for len(frames) > 0 {
		top := &frames[len(frames)-1]

		if top.idx < len(top.succ) {
			w := top.succ[top.idx]
			top.idx++

			if _, seen := s.index[w]; !seen {
				child, cerr := s.discover(w)
				if cerr != nil {
					return cerr
				}
				frames = append(frames, child)
				continue
			}
			if s.onStack[w] {
				// Back or cross edge inside the current component.
				if s.index[w] < s.lowlink[top.node] {
					s.lowlink[top.node] = s.index[w]
				}
			}
			continue
		}

		// top is exhausted: close its component if it is a root, then
		// propagate its low-link to the parent frame.
		v := top.node
		if s.lowlink[v] == s.index[v] {
			var comp []N
			for {
				w := s.stack[len(s.stack)-1]
				s.stack = s.stack[:len(s.stack)-1]
				s.onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			s.sccs = append(s.sccs, comp)
		}
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			parent := frames[len(frames)-1].node
			if s.lowlink[v] < s.lowlink[parent] {
				s.lowlink[parent] = s.lowlink[v]
			}
		}
	}

	return nil
}

// discover stamps n with the next index, pushes it on the component stack,
// and returns its frame.
func (s *sccState[N]) discover(n N) (sccFrame[N], error) {
	s.index[n] = s.next
	s.lowlink[n] = s.next
	s.next++
	s.stack = append(s.stack, n)
	s.onStack[n] = true

	succ, err := s.g.OutNeighbors(n)
	if err != nil {
		return sccFrame[N]{}, fmt.Errorf("components: out-neighbors of %v: %w", n, err)
	}

	return sccFrame[N]{node: n, succ: succ}, nil
}
