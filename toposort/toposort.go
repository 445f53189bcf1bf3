// This file implements one-shot Kahn ordering. The incremental processor
// lives in processor.go.
package toposort

import (
	"fmt"
	"slices"

	"github.com/avelty/grava/core"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = fmt.Errorf("toposort: %w", core.ErrNilGraph)

	// ErrCyclic is returned by NewDagProcessor when the input graph
	// contains a cycle. Sort never returns it: plain cyclicity is data
	// there, reported as Acyclic=false.
	ErrCyclic = fmt.Errorf("toposort: graph is cyclic: %w", core.ErrInvalidState)
)

// Result is the outcome of a one-shot topological sort.
// On cyclic input Acyclic is false and Order is empty, never partial.
type Result[N core.Node] struct {
	// Order lists every node so that each edge u→v has u before v.
	Order []N

	// Acyclic reports whether the graph admitted a topological order.
	Acyclic bool
}

// Sort computes a topological ordering of g using Kahn's algorithm: seed the
// frontier with zero-in-degree nodes, consume in ascending order, decrement
// successors. If fewer nodes are consumed than exist, the graph is cyclic
// and the result is {nil, false} with nil error.
//
// Complexity: O(V + E) time, O(V) memory.
func Sort[N core.Node](g core.Directed[N]) (Result[N], error) {
	// 1) Validate.
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}

	// 2) Collect in-degrees and the initial frontier.
	nodes := g.Nodes()
	remaining := make(map[N]int, len(nodes))
	var frontier []N
	for _, n := range nodes {
		d, err := g.InDegree(n)
		if err != nil {
			return Result[N]{}, fmt.Errorf("toposort: in-degree of %v: %w", n, err)
		}
		remaining[n] = d
		if d == 0 {
			frontier = append(frontier, n)
		}
	}

	// 3) Consume the frontier smallest-first; the frontier stays sorted by
	// inserting each freed node at its position. Nodes() is ascending, so
	// the seed is already sorted.
	order := make([]N, 0, len(nodes))
	for len(frontier) > 0 {
		n := frontier[0]
		frontier = frontier[1:]
		order = append(order, n)

		succ, err := g.OutNeighbors(n)
		if err != nil {
			return Result[N]{}, fmt.Errorf("toposort: out-neighbors of %v: %w", n, err)
		}
		for _, x := range succ {
			remaining[x]--
			if remaining[x] == 0 {
				at, _ := slices.BinarySearch(frontier, x)
				frontier = slices.Insert(frontier, at, x)
			}
		}
	}

	// 4) Fewer consumed than exist means a cycle: data, not an error.
	if len(order) < len(nodes) {
		return Result[N]{Acyclic: false}, nil
	}

	return Result[N]{Order: order, Acyclic: true}, nil
}
